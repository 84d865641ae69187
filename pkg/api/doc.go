// Package api provides the HTTP API layer for the Pulse instrument daemon.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the instrument document routes. It wires together the
// served registry, the runtime collector, and the document generator, and it
// seeds the registry with the daemon's own process gauges and request
// instruments so a fresh server already serves a meaningful document.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/pulsemetrics/pulse/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Building the instrument registry and document generator
//   - Setting up route handlers (e.g., /v1/instruments)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/instruments - Serve the instrument document as JSON
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/instruments)
//
// The /v1/instruments endpoint accepts these query parameters:
//   - group: Serve only groups whose dotted name starts with this prefix
//   - pretty: Indent the JSON output (true/false, bare parameter counts as true)
//   - full-samples: Include raw histogram and timer samples (true/false)
//
// Example curl command:
//
//	curl "http://localhost:8080/v1/instruments?group=pulse.api&pretty"
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - RUNTIME_SECTION: Include the runtime section in documents (default: true)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pulsemetrics/pulse/pkg/api.version=1.0.0'"
package api
