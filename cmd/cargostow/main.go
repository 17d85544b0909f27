// Command cargostow runs the container load-planning engine from the shell:
// a single pack, an HTTP server, or a side-by-side scenario comparison.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dhalbert/cratestow/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:   "cargostow",
		Short: "Deterministic 3D container load planner",
		Long:  "cargostow packs rectangular cargo into a shipping container using an extreme-point heuristic, with support, stacking, and weight feasibility checks.",
	}

	root.AddCommand(packCmd(), serveCmd(), compareCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func loadConfig(path string) config.AppConfig {
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		cfg = config.DefaultAppConfig()
	}
	return cfg
}
