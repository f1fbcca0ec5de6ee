// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/scopos/scopos3d/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective configuration as TOML.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if save, _ := cmd.Flags().GetString("save"); save != "" {
			return cfg.Save(save)
		}
		return cfg.Write(cmd.OutOrStdout())
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watches the config file and reports every reload until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return fmt.Errorf("watch needs a config file (--config)")
		}
		if _, err := config.Open(cfgFile); err != nil {
			return err
		}
		cw, err := config.NewWatcher(cfgFile)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "watching %s\n", cfgFile)
		return cw.Run(ctx, func(cfg *config.Config, err error) {
			if err != nil {
				fmt.Fprintf(out, "reload failed: %v\n", err)
				return
			}
			fmt.Fprintf(out, "reloaded: hover %s select %s, filter %s\n",
				cfg.Highlight.HoverColor, cfg.Highlight.SelectColor, cfg.Filter.UnmatchedPolicy)
		})
	},
}

func init() {
	configCmd.Flags().String("save", "", "save the effective configuration to this file instead of printing it")
	rootCmd.AddCommand(configCmd, watchCmd)
}
