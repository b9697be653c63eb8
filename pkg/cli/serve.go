/*
Copyright © 2025 Persefoni
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/blakeblackwell-persefoni/calcd/pkg/api"
	"github.com/blakeblackwell-persefoni/calcd/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the arithmetic HTTP server",
		Description: `Run the calcd HTTP server exposing:
  - POST /add, /subtract, /multiply with {"a":number,"b":number} bodies
  - GET  /health and /ready
  - GET  /metrics (Prometheus)

The server drains in-flight requests on SIGINT/SIGTERM.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				Sources: cli.EnvVars("CALCD_CONFIG"),
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config file)",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var cfg *server.Config
			if path := cmd.String("config"); path != "" {
				loaded, err := server.LoadConfig(path)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				cfg = server.NewConfig()
			}

			if port := cmd.Int("port"); port > 0 {
				cfg.Port = int(port)
			}

			return api.ServeWithConfig(cfg)
		},
	}
}
