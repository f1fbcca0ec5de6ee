// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/scopos/scopos3d/config"
	"github.com/scopos/scopos3d/equipment"
	"github.com/scopos/scopos3d/filter"
	"github.com/scopos/scopos3d/highlight"
	"github.com/scopos/scopos3d/viewer"
	"github.com/scopos/scopos3d/xyz"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter SCENE MODE",
	Short: "Applies an equipment filter (overdue or defective) to a scene and prints the result per object.",
	Long: `Applies an equipment filter to a scene and prints, for every named mesh,
whether the filter highlights or blocks it. The code set is fetched from the
equipment registry of the config unless --codes is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		md, err := filter.ModeFromString(args[1])
		if err != nil {
			return err
		}
		sc, err := openScene(args[0])
		if err != nil {
			return err
		}
		codes, _ := cmd.Flags().GetStringSlice("codes")
		vw := newViewer(cfg, codes)
		defer vw.Close()
		vw.SetScene(sc)

		ctx, cancel := context.WithTimeout(cmd.Context(), config.Millis(cfg.Registry.Timeout))
		defer cancel()
		if err := vw.SetFilter(ctx, md); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "OBJECT\tFILTER")
		vw.Loop.Do(func() {
			sc.WalkDown(func(n *xyz.Node) bool {
				if !n.IsMesh() || n.Name == "" {
					return xyz.Continue
				}
				state := "-"
				switch {
				case vw.Tracker.Has(n, highlight.FilterHighlight):
					state = "highlight"
				case vw.Tracker.Has(n, highlight.FilterBlock):
					state = "block"
				}
				fmt.Fprintf(w, "%s\t%s\n", n.Name, state)
				return xyz.Continue
			})
		})
		return w.Flush()
	},
}

// newViewer returns a headless viewer. With codes, the equipment source is
// the fallback dataset serving codes as both code sets; otherwise it is
// the registry of cfg.
func newViewer(cfg *config.Config, codes []string) *viewer.Viewer {
	if len(codes) == 0 {
		return viewer.NewFromConfig(cfg, nil)
	}
	mm := equipment.NewFallbackMemory()
	mm.SetCodes(codes, codes)
	return viewer.New(cfg, mm, nil)
}

func init() {
	filterCmd.Flags().StringSlice("codes", nil, "model codes to filter by, instead of fetching them from the registry")
	rootCmd.AddCommand(filterCmd)
}
