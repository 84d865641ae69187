/*
Copyright © 2025 Pulse Metrics Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/pulsemetrics/pulse/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the instrument document server",
		Description: `Run the instrument document daemon in-process. This is the same code
path as the pulsed binary: it serves the instrument document at
GET /v1/instruments alongside /health, /ready, and /metrics, and shuts
down gracefully on SIGINT/SIGTERM.

# Configuration

  PORT             HTTP server port (default: 8080)
  LOG_LEVEL        Logging level (debug, info, warn, error)
  RUNTIME_SECTION  Include the runtime section in documents (default: true)

# Examples

Start the server on the default port:
  pulse serve

Start on a custom port with debug logging:
  PORT=9090 LOG_LEVEL=debug pulse serve`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve()
		},
	}
}
