// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/scopos/scopos3d/layers"
	"github.com/scopos/scopos3d/resolve"
	"github.com/scopos/scopos3d/xyz"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect SCENE",
	Short: "Validates a scene description and prints its layer statistics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := openScene(args[0])
		if err != nil {
			return err
		}
		counts := layers.Counts(sc.Root)
		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "nodes\t%d\n", sc.NumNodes())
		fmt.Fprintf(w, "meshes\t%d\n", len(sc.Meshes()))
		for ly := xyz.LayerPipeline; ly < xyz.LayerN; ly++ {
			fmt.Fprintf(w, "%s\t%d\n", ly, counts[ly])
		}
		w.Flush()

		names, _ := cmd.Flags().GetBool("names")
		if names {
			for _, nm := range layers.PipelineNames(sc.Root) {
				fmt.Fprintln(out, nm)
			}
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve SCENE KEY...",
	Short: "Prints the scene object each key resolves to, and the rule that found it.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := openScene(args[0])
		if err != nil {
			return err
		}
		rs := resolve.New(sc)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tRULE\tOBJECT\tAMBIGUOUS")
		for _, key := range args[1:] {
			n, rule := rs.Lookup(key)
			path := "-"
			if n != nil {
				path = n.Path()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", key, rule, path, rs.Ambiguous(key))
		}
		return w.Flush()
	},
}

// openScene opens and validates a scene description, assigning layers.
func openScene(file string) (*xyz.Scene, error) {
	sc, err := xyz.Open(file)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	layers.Assign(sc.Root)
	return sc, nil
}

func init() {
	inspectCmd.Flags().Bool("names", false, "print the names of the pipeline objects")
	rootCmd.AddCommand(inspectCmd, resolveCmd)
}
