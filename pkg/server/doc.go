// Copyright (c) 2025, Pulse Metrics Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP host for the instrument document API.
//
// It is a generic, handler-driven server: callers register their routes via
// options and the server supplies the operational envelope around them.
//
// # Architecture
//
// The server implements a stateless HTTP host with the following key
// components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - API version negotiation via vendor MIME types
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics exposed on /metrics
//
// # Usage
//
// Basic server startup:
//
//	package main
//
//	import (
//	    "context"
//	    "net/http"
//
//	    "github.com/pulsemetrics/pulse/pkg/server"
//	)
//
//	func main() {
//	    routes := map[string]http.HandlerFunc{
//	        "/v1/instruments": handleInstruments,
//	    }
//
//	    s := server.New(
//	        server.WithName("pulsed"),
//	        server.WithVersion("v1.0.0"),
//	        server.WithHandler(routes),
//	    )
//	    if err := s.Run(context.Background()); err != nil {
//	        panic(err)
//	    }
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200  // 200 requests/sec
//	cfg.RateLimitBurst = 400
//	cfg.Handlers = routes
//
//	s := server.New(server.WithConfig(cfg))
//	if err := s.Run(context.Background()); err != nil {
//	    panic(err)
//	}
//
// # Endpoints
//
// GET / - Route directory
//
//	Lists the server name, version, readiness, and registered routes.
//	Installed automatically unless the caller registers its own root handler.
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// GET /metrics - Prometheus exposition
//
//	Serves the default Prometheus registry, including the server's own
//	pulse_http_* series and any metrics registered by handler packages.
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing. Handlers can read
//	it back with RequestIDFrom.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "unknown query parameter",
//	  "details": {"parameter": "groups"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Handlers produce these responses through WriteError or, for errors from
// the pulse errors package, WriteErrorFromErr which maps error codes to
// HTTP status codes via HTTPStatusFromCode.
//
// # Deployment
//
// Kubernetes deployment example:
//
//	apiVersion: apps/v1
//	kind: Deployment
//	metadata:
//	  name: pulsed
//	spec:
//	  replicas: 1
//	  selector:
//	    matchLabels:
//	      app: pulsed
//	  template:
//	    metadata:
//	      labels:
//	        app: pulsed
//	    spec:
//	      containers:
//	      - name: pulsed
//	        image: pulsed:latest
//	        ports:
//	        - containerPort: 8080
//	        env:
//	        - name: PORT
//	          value: "8080"
//	        livenessProbe:
//	          httpGet:
//	            path: /health
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 10
//	        readinessProbe:
//	          httpGet:
//	            path: /ready
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 5
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - HTTP best practices: https://datatracker.ietf.org/doc/html/rfc7807
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
