package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhalbert/cratestow/internal/engine"
	"github.com/dhalbert/cratestow/internal/model"
)

func compareCmd() *cobra.Command {
	var containerKey string
	var cargoPath string
	var supportPct float64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a fixed set of support-ratio and aggregation scenarios and print a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, ok := model.LookupContainer(containerKey)
			if !ok {
				return fmt.Errorf("unknown container %q (choices: %v)", containerKey, model.ContainerPresetKeys())
			}

			cargo, err := loadManifest(cargoPath)
			if err != nil {
				return err
			}

			base := engine.Options{MinSupportPct: &supportPct}
			scenarios := engine.BuildDefaultScenarios(base)
			results := engine.CompareScenarios(scenarios, cargo, container, 0)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCENARIO\tPACKED\tUNPACKED\tSPACE %\tCOG OFFSET")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%.3f\n",
					r.Scenario.Name, r.PackedCount, r.UnpackedCount,
					r.SpaceUtilization, r.CogOffset)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&containerKey, "container", "40HC", "container preset key (40HC, 40GP, 20GP)")
	cmd.Flags().StringVar(&cargoPath, "cargo", "", "path to a JSON cargo manifest (required)")
	cmd.Flags().Float64Var(&supportPct, "support", model.DefaultMinSupportPct, "baseline support ratio percentage for the 'Current Settings' scenario")
	_ = cmd.MarkFlagRequired("cargo")

	return cmd
}
