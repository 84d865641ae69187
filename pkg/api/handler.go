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
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pulsemetrics/pulse/pkg/defaults"
	"github.com/pulsemetrics/pulse/pkg/document"
	pulseerrors "github.com/pulsemetrics/pulse/pkg/errors"
	"github.com/pulsemetrics/pulse/pkg/instrument"
	"github.com/pulsemetrics/pulse/pkg/registry"
	"github.com/pulsemetrics/pulse/pkg/server"
)

// Handler serves instrument documents over HTTP.
type Handler struct {
	gen      *document.Generator
	runtime  bool
	requests *instrument.Timer
	errors   *instrument.Meter
}

// NewHandler creates the document handler backed by gen. The handler's
// own request timer and error meter are registered into reg under the
// pulse.api group, so served documents report the API's own traffic.
// The runtime flag controls whether documents carry the runtime section.
func NewHandler(reg *registry.Registry, gen *document.Generator, runtime bool) *Handler {
	return &Handler{
		gen:      gen,
		runtime:  runtime,
		requests: reg.Timer(registry.NewName(selfGroup, "requests")),
		errors:   reg.Meter(registry.NewName(selfGroup, "errors"), "errors"),
	}
}

// HandleInstruments handles GET /v1/instruments. Query parameters:
//
//	group        - serve only groups with this dotted-name prefix
//	pretty       - indent the JSON output
//	full-samples - include raw histogram and timer samples
//
// Boolean parameters accept the usual strconv forms; a bare parameter
// counts as true.
func (h *Handler) HandleInstruments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.DocumentHandlerTimeout)
	defer cancel()

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, pulseerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	start := time.Now()
	defer func() {
		h.requests.UpdateSince(start)
	}()

	req, err := parseDocumentRequest(r)
	if err != nil {
		h.errors.Mark(1)
		server.WriteError(w, r, http.StatusBadRequest, pulseerrors.ErrCodeInvalidRequest,
			"Invalid document request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}
	req.Runtime = h.runtime

	slog.Debug("document request",
		"group", req.GroupPrefix,
		"pretty", req.Pretty,
		"fullSamples", req.FullSamples,
		"runtime", req.Runtime,
		"requestID", server.RequestIDFrom(r.Context()),
	)

	// Generate into a buffer first so a failing collector still gets a
	// proper error response instead of a truncated document.
	var buf bytes.Buffer
	if err := h.gen.Write(ctx, &buf, req); err != nil {
		h.errors.Mark(1)
		server.WriteErrorFromErr(w, r, err, "Failed to generate instrument document", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("failed to write document response",
			"error", err,
			"requestID", server.RequestIDFrom(r.Context()),
		)
	}
}

// parseDocumentRequest extracts document options from the query string.
func parseDocumentRequest(r *http.Request) (document.Request, error) {
	q := r.URL.Query()

	req := document.Request{
		GroupPrefix: q.Get("group"),
	}

	var err error
	if req.Pretty, err = queryBool(q, "pretty"); err != nil {
		return document.Request{}, err
	}
	if req.FullSamples, err = queryBool(q, "full-samples"); err != nil {
		return document.Request{}, err
	}

	return req, nil
}

// queryBool reads an optional boolean query parameter. A parameter
// present without a value counts as true.
func queryBool(q url.Values, key string) (bool, error) {
	if !q.Has(key) {
		return false, nil
	}

	raw := q.Get(key)
	if raw == "" {
		return true, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parameter %q must be a boolean, got %q", key, raw)
	}
	return v, nil
}
