// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by transgrid.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/transgrid/internal/config"
)

// Mode selects where output may go.
type Mode int

const (
	// ModeCLI may write to stderr when no file is configured.
	ModeCLI Mode = iota
	// ModeInteractive owns the terminal: logs go to the file or nowhere.
	ModeInteractive
)

// New builds a production logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool, mode Mode) (*zap.Logger, error) {
	if mode == ModeInteractive && cfg.File == "" {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
		zcfg.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
