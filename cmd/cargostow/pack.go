package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhalbert/cratestow/internal/engine"
	"github.com/dhalbert/cratestow/internal/model"
)

func packCmd() *cobra.Command {
	var containerKey string
	var cargoPath string
	var supportPct float64
	var noAggregation bool

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack a cargo manifest into a container and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, ok := model.LookupContainer(containerKey)
			if !ok {
				return fmt.Errorf("unknown container %q (choices: %v)", containerKey, model.ContainerPresetKeys())
			}

			cargo, err := loadManifest(cargoPath)
			if err != nil {
				return err
			}

			opts := engine.Options{
				MinSupportPct:      &supportPct,
				DisableAggregation: noAggregation,
			}

			start := time.Now()
			result, err := engine.Pack(cargo, container, opts, 0)
			result.Stats.CalcTimeSeconds = time.Since(start).Seconds()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&containerKey, "container", "40HC", "container preset key (40HC, 40GP, 20GP)")
	cmd.Flags().StringVar(&cargoPath, "cargo", "", "path to a JSON cargo manifest (required)")
	cmd.Flags().Float64Var(&supportPct, "support", model.DefaultMinSupportPct, "minimum support ratio percentage")
	cmd.Flags().BoolVar(&noAggregation, "no-aggregation", false, "disable super-block aggregation")
	_ = cmd.MarkFlagRequired("cargo")

	return cmd
}

func loadManifest(path string) ([]model.CargoSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cargo manifest: %w", err)
	}
	var cargo []model.CargoSpec
	if err := json.Unmarshal(data, &cargo); err != nil {
		return nil, fmt.Errorf("parse cargo manifest: %w", err)
	}
	return cargo, nil
}
