/*
Copyright © 2025 Pulse Metrics Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/pulsemetrics/pulse/pkg/api"
	"github.com/pulsemetrics/pulse/pkg/defaults"
	"github.com/pulsemetrics/pulse/pkg/document"
	"github.com/pulsemetrics/pulse/pkg/registry"
	"github.com/pulsemetrics/pulse/pkg/runtimestats"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a one-shot instrument document for this process",
		Description: `Capture a single instrument document for this process and write it as
JSON. The document carries the process gauges (goroutines, gomaxprocs,
cpus, uptime) and, unless disabled, the Go runtime section with memory,
garbage collector, and descriptor statistics.

# Examples

Capture to stdout, indented:
  pulse snapshot --pretty

Capture only the runtime section to a file:
  pulse snapshot --group runtime --output runtime.json

Include per-state goroutine counts:
  pulse snapshot --goroutine-states --pretty

Instruments only, no runtime section:
  pulse snapshot --no-runtime`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "group",
				Usage: "Capture only groups whose dotted name starts with this prefix",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Indent the JSON output",
			},
			&cli.BoolFlag{
				Name:  "full-samples",
				Usage: "Include raw histogram and timer samples",
			},
			&cli.BoolFlag{
				Name:  "goroutine-states",
				Usage: "Include per-state goroutine counts (walks every goroutine stack)",
			},
			&cli.BoolFlag{
				Name:  "no-runtime",
				Usage: "Omit the runtime section",
			},
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.CLISnapshotTimeout)
			defer cancel()

			start := time.Now()
			reg := registry.New()
			api.RegisterProcessGauges(reg, start)

			var genOpts []document.Option
			if !cmd.Bool("no-runtime") {
				genOpts = append(genOpts, document.WithRuntime(runtimestats.NewCollector(
					runtimestats.WithStartTime(start),
					runtimestats.WithGoroutineStates(cmd.Bool("goroutine-states")),
				)))
			}
			gen := document.New(reg, genOpts...)

			req := document.Request{
				GroupPrefix: cmd.String("group"),
				Pretty:      cmd.Bool("pretty"),
				FullSamples: cmd.Bool("full-samples"),
				Runtime:     !cmd.Bool("no-runtime"),
			}

			out, err := openOutput(cmd.String("output"))
			if err != nil {
				return err
			}
			defer func() {
				if cerr := out.Close(); cerr != nil {
					slog.Warn("failed to close output", "error", cerr)
				}
			}()

			if err := gen.Write(ctx, out, req); err != nil {
				return fmt.Errorf("failed to capture instrument document: %w", err)
			}
			_, err = io.WriteString(out, "\n")
			return err
		},
	}
}
