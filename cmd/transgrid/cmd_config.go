// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceFlag bool

// errConfigExists is returned by "config init" when the target file is
// present and --force was not given.
var errConfigExists = errors.New("config file already exists")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the YAML configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the effective configuration to a YAML file",
	Long: `Writes the configuration currently in effect (defaults, the file named
by --config and TRANSGRID_* environment overrides) to path, or to the
--config path when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceFlag {
		return fmt.Errorf("%w: %s (use --force)", errConfigExists, path)
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	logger.Info("config written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
