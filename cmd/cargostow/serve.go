package main

import (
	"github.com/spf13/cobra"

	"github.com/dhalbert/cratestow/internal/httpapi"
)

func serveCmd() *cobra.Command {
	var addrFlag string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP surface for POST /api/pack",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(configPath)
			if addrFlag != "" {
				cfg.BindAddr = addrFlag
			}

			log := newLogger(cfg.LogLevel)
			srv := httpapi.NewServer(cfg, log)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "bind address, overrides config file (default :8080)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	return cmd
}
