// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scopos3d inspects plant scene descriptions headlessly: layer
// assignment, object resolution, equipment filters and the effective
// viewer configuration.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/scopos/scopos3d/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "scopos3d",
	Short: "Headless tools for the Scopos plant viewer engine.",
	Long: `scopos3d loads plant scene descriptions without a rendering surface and
runs the interaction engine on them: layer assignment, name resolution,
equipment filters and details, and configuration.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var lv slog.Level
		if err := lv.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		slog.SetLogLoggerLevel(lv)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file in TOML (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "warn", "log level: debug, info, warn, error")
}

// loadConfig returns the config of the --config flag, or the defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.New(), nil
	}
	return config.Open(cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
