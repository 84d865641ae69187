// Package cli implements the command-line interface for the pulse tool.
//
// # Overview
//
// The pulse CLI provides commands for capturing instrument documents,
// running the document server, and fetching documents from a running
// daemon. It is designed for service operators who want the instrument
// state of a Go process as one structured JSON document.
//
// # Commands
//
// serve - Run the instrument document server:
//
//	pulse serve
//
// Runs the same daemon as the pulsed binary: the instrument document at
// GET /v1/instruments plus /health, /ready, and /metrics, with graceful
// shutdown on SIGINT/SIGTERM.
//
// snapshot - Capture a one-shot instrument document:
//
//	pulse snapshot [--group PREFIX] [--pretty] [--full-samples] [--goroutine-states] [--no-runtime] [--output FILE]
//
// Captures a single document for the current process, including the
// process gauges and the Go runtime section. Output defaults to stdout
// as compact JSON.
//
// fetch - Fetch the document from a running server:
//
//	pulse fetch [--addr HOST:PORT] [--format json|yaml|table] [--output FILE]
//
// Retrieves the document from a running daemon, decodes it, and
// re-renders it in the requested format.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default):
//   - Machine-parseable, matches the served document byte for byte
//   - Suitable for programmatic consumption
//
// YAML:
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// Table:
//   - Flattened field/value representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Capture an indented document to a file:
//
//	pulse snapshot --pretty --output instruments.json
//
// Capture only the runtime section with goroutine states:
//
//	pulse snapshot --group runtime --goroutine-states --pretty
//
// Fetch from a remote server as YAML:
//
//	pulse fetch --addr metrics-host:8080 --format yaml
//
// # Environment Variables
//
//	PULSE_LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//	PULSE_ADDR       Default server address for fetch
//	PORT             Server port for serve (default: 8080)
//	RUNTIME_SECTION  Serve-time gate for the runtime section (default: true)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/api - Server wiring and the shared process gauges
//   - pkg/registry - Instrument registration
//   - pkg/document - Document generation
//   - pkg/runtimestats - Go runtime collection
//   - pkg/serializer - Output formatting and HTTP fetch
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pulsemetrics/pulse/pkg/cli.version=1.0.0'"
package cli
