/*
Copyright © 2025 Pulse Metrics Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pulsemetrics/pulse/pkg/serializer"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// parseOutputFormat resolves the format flag into a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	raw := cmd.String("format")
	f, ok := serializer.ParseFormat(raw)
	if !ok {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			raw, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// nopWriteCloser wraps stdout so output handling has one close path.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openOutput opens the output destination for raw document bytes: the
// given file path, or stdout when the path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", trimmed, err)
	}
	return f, nil
}
