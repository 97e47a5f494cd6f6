// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/transgrid/internal/config"
	"github.com/katalvlaran/transgrid/internal/logging"
	"github.com/katalvlaran/transgrid/internal/screen"
	"github.com/katalvlaran/transgrid/internal/tui"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Resolved by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive grid screen.
var rootCmd = &cobra.Command{
	Use:   "transgrid",
	Short: "Draw an N×N grid of random numbers and transpose it in place",
	Long: `transgrid shows an N×N grid of random integers in [0, 99) and
transposes it in place, animating every swapped pair of cells.

Run without arguments to start the interactive screen.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		mode := logging.ModeCLI
		if cmd == cmd.Root() {
			// The TUI owns the terminal.
			mode = logging.ModeInteractive
		}
		logger, err = logging.New(cfg.Logging, verbose, mode)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.New(newController(), tui.Settings{
			FrameInterval: cfg.FrameInterval(),
			ToastDuration: cfg.ToastDuration(),
			CellWidth:     cfg.UI.CellWidth,
		}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "transgrid.yaml", "Path to YAML config file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(configCmd)
}

// newController wires the screen controller from the resolved config.
func newController() *screen.Controller {
	return screen.New(
		screen.WithBounds(cfg.Grid.MinSize, cfg.Grid.MaxSize),
		screen.WithGenerateOptions(cfg.GenerateOptions()...),
		screen.WithLogger(logger),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
