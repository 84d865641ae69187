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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/pulsemetrics/pulse/pkg/document"
	"github.com/pulsemetrics/pulse/pkg/logging"
	"github.com/pulsemetrics/pulse/pkg/registry"
	"github.com/pulsemetrics/pulse/pkg/runtimestats"
	"github.com/pulsemetrics/pulse/pkg/server"
)

const (
	name           = "pulsed"
	versionDefault = "dev"

	// envRuntimeSection toggles the runtime section of served documents.
	// The section is on unless this is set to a false value.
	envRuntimeSection = "RUNTIME_SECTION"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/pulsemetrics/pulse/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, builds the served registry seeded with the
// process's own instruments, sets up routes, and handles graceful
// shutdown. Returns an error if the server fails to start or encounters
// a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	start := time.Now()
	reg := registry.New()
	RegisterProcessGauges(reg, start)

	collector := runtimestats.NewCollector(runtimestats.WithStartTime(start))
	gen := document.New(reg, document.WithRuntime(collector))

	h := NewHandler(reg, gen, runtimeSectionEnabled())

	r := map[string]http.HandlerFunc{
		"/v1/instruments": h.HandleInstruments,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// runtimeSectionEnabled reads the RUNTIME_SECTION gate. Unset or
// unparseable values leave the section on.
func runtimeSectionEnabled() bool {
	raw := os.Getenv(envRuntimeSection)
	if raw == "" {
		return true
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid runtime section setting, keeping enabled",
			"value", raw)
		return true
	}
	return enabled
}
