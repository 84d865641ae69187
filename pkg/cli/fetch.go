/*
Copyright © 2025 Pulse Metrics Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pulsemetrics/pulse/pkg/defaults"
	"github.com/pulsemetrics/pulse/pkg/serializer"
)

// fetchCmdOptions holds parsed options for the fetch command.
type fetchCmdOptions struct {
	url    string
	format serializer.Format
	output string
}

// parseFetchCmdOptions parses and validates command options. A bare
// host:port address gets the http scheme and the document path appended.
func parseFetchCmdOptions(cmd *cli.Command) (*fetchCmdOptions, error) {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}

	addr := strings.TrimSpace(cmd.String("addr"))
	if addr == "" {
		return nil, fmt.Errorf("addr cannot be empty")
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid addr %q: %w", cmd.String("addr"), err)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/v1/instruments"
	}

	return &fetchCmdOptions{
		url:    u.String(),
		format: outFormat,
		output: cmd.String("output"),
	}, nil
}

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fetch",
		EnableShellCompletion: true,
		Usage:                 "Fetch the instrument document from a running server",
		Description: `Fetch the instrument document from a running server, decode it, and
re-render it in the requested format. The address may be a bare
host:port or a full URL; without an explicit path the document endpoint
/v1/instruments is used.

# Examples

Fetch from a local server:
  pulse fetch

Fetch from a remote server as YAML:
  pulse fetch --addr metrics-host:8080 --format yaml

Fetch one group as a table:
  pulse fetch --addr http://metrics-host:8080/v1/instruments?group=runtime --format table

Save the document to a file:
  pulse fetch --output instruments.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Server address (host:port or full URL)",
				Sources: cli.EnvVars("PULSE_ADDR"),
				Value:   "localhost:8080",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseFetchCmdOptions(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIFetchTimeout)
			defer cancel()

			slog.Debug("fetching instrument document", "url", opts.url)

			var doc map[string]any
			if err := serializer.ReadJSON(ctx, nil, opts.url, &doc); err != nil {
				return fmt.Errorf("failed to fetch instrument document: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(opts.format, opts.output)
			defer serializer.CloseQuietly(ser)

			return ser.Serialize(ctx, doc)
		},
	}
}
