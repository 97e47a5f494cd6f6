// SPDX-License-Identifier: MIT

// Package config holds transgrid's runtime configuration, loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/katalvlaran/transgrid/grid"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig controls size validation and generation.
type GridConfig struct {
	MinSize    int   `yaml:"min_size"`    // exclusive lower bound
	MaxSize    int   `yaml:"max_size"`    // inclusive upper bound
	ValueBound int   `yaml:"value_bound"` // values drawn from [0, value_bound)
	Seed       int64 `yaml:"seed"`        // 0 = unseeded
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	FrameInterval string `yaml:"frame_interval"` // delay between animated moves
	ToastDuration string `yaml:"toast_duration"` // lifetime of transient warnings
	CellWidth     int    `yaml:"cell_width"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty: stderr for the CLI, discarded by the TUI
}

const (
	defaultFrameInterval = 120 * time.Millisecond
	defaultToastDuration = 2 * time.Second
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			MinSize:    grid.MinSize,
			MaxSize:    grid.MaxSize,
			ValueBound: grid.DefaultValueBound,
		},
		UI: UIConfig{
			FrameInterval: defaultFrameInterval.String(),
			ToastDuration: defaultToastDuration.String(),
			CellWidth:     4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults; environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("TRANSGRID_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if file := os.Getenv("TRANSGRID_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if s := os.Getenv("TRANSGRID_SEED"); s != "" {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			c.Grid.Seed = seed
		}
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Grid.MinSize < 0 {
		return fmt.Errorf("grid.min_size must be >= 0, got %d", c.Grid.MinSize)
	}
	if c.Grid.MaxSize <= c.Grid.MinSize {
		return fmt.Errorf("grid.max_size (%d) must exceed grid.min_size (%d)", c.Grid.MaxSize, c.Grid.MinSize)
	}
	if c.Grid.ValueBound <= 0 {
		return fmt.Errorf("grid.value_bound must be > 0, got %d", c.Grid.ValueBound)
	}
	if c.UI.CellWidth < 1 {
		return fmt.Errorf("ui.cell_width must be >= 1, got %d", c.UI.CellWidth)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	return nil
}

// FrameInterval returns the animation frame delay.
func (c *Config) FrameInterval() time.Duration {
	d, err := time.ParseDuration(c.UI.FrameInterval)
	if err != nil || d <= 0 {
		return defaultFrameInterval
	}
	return d
}

// ToastDuration returns how long transient warnings stay visible.
func (c *Config) ToastDuration() time.Duration {
	d, err := time.ParseDuration(c.UI.ToastDuration)
	if err != nil || d <= 0 {
		return defaultToastDuration
	}
	return d
}

// GenerateOptions translates the grid section into grid.Generate options.
func (c *Config) GenerateOptions() []grid.Option {
	opts := []grid.Option{grid.WithBound(c.Grid.ValueBound)}
	if c.Grid.Seed != 0 {
		opts = append(opts, grid.WithSeed(c.Grid.Seed))
	}
	return opts
}
