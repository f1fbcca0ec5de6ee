// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/scopos/scopos3d/config"
	"github.com/scopos/scopos3d/details"
	"github.com/scopos/scopos3d/equipment"
	"github.com/scopos/scopos3d/events"
	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details CODE...",
	Short: "Prints the equipment passport for each model code.",
	Long: `Prints the equipment passport for each model code, as the viewer details
panel shows it. Outside production, an unreachable registry is answered from
the fallback dataset.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rc := &cfg.Registry
		cl := equipment.NewClient(rc.BaseURL, config.Millis(rc.Timeout), rc.RetryMax)
		pn := details.NewPanel(equipment.WithFallback(cl, rc.Production), events.NewBus())
		defer pn.Close()

		out := cmd.OutOrStdout()
		for _, code := range args {
			if err := pn.Show(cmd.Context(), code); err != nil {
				fmt.Fprintf(out, "%s: %v\n", code, err)
				continue
			}
			dt := pn.State().Detail
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "model code\t%s\n", dt.ModelCode)
			fmt.Fprintf(w, "code\t%s\n", dt.Code)
			fmt.Fprintf(w, "name\t%s\n", dt.Name)
			fmt.Fprintf(w, "class\t%s\n", dt.ClassName)
			fmt.Fprintf(w, "manufacturer\t%s\n", dt.Manufacturer)
			fmt.Fprintf(w, "inventory number\t%s\n", dt.InventoryNumber)
			fmt.Fprintf(w, "parent\t%s\n", dt.ParentName)
			fmt.Fprintf(w, "location\t%s\n", dt.Location)
			fmt.Fprintf(w, "status\t%s %s\n", dt.UserStatus, dt.SystemStatus)
			w.Flush()
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}
