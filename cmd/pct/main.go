// SPDX-License-Identifier: MIT

// Command pct learns parsimonious context trees from categorical data.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderodde/pctree/config"
)

type rootCmdConfig struct {
	verbose    bool
	configPath string

	cfg    config.Config
	logger *slog.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rc := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:          "pct",
		Short:        "pct learns parsimonious context trees",
		Long:         `A tool to learn BIC-optimal parsimonious context trees from categorical sequences and tables, inspect them and generate test data`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rc.configPath)
			if err != nil {
				return err
			}
			rc.cfg = cfg
			rc.logger = newLogger(cmd.ErrOrStderr(), cfg, rc.verbose)

			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(rc.verbose), "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVarP(&(rc.configPath), "config", "c", "", "path to a YAML configuration file (PCT_* environment variables override it)")
	rootCmd.AddCommand(versionCmd(), learnCmd(rc), showCmd(rc), generateCmd(rc), partitionsCmd(rc))

	return rootCmd
}
