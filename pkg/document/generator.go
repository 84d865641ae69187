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

package document

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pulsemetrics/pulse/pkg/errors"
	"github.com/pulsemetrics/pulse/pkg/registry"
	"github.com/pulsemetrics/pulse/pkg/runtimestats"
	"github.com/pulsemetrics/pulse/pkg/serializer"
)

// RuntimeGroup is the reserved group selector for the runtime section.
// Instrument group keys never match it; requesting it yields only the
// runtime data.
const RuntimeGroup = "runtime"

// RegistryView is the read-only registry surface the generator consumes.
// *registry.Registry satisfies it.
type RegistryView interface {
	GroupedView() []registry.Group
}

// RuntimeCollector produces the process/VM snapshot for the runtime
// section. *runtimestats.Collector satisfies it.
type RuntimeCollector interface {
	Collect(ctx context.Context) (*runtimestats.Snapshot, error)
}

// Clock supplies the document's current_time field. Injected so tests
// and replay tooling can pin it.
type Clock func() time.Time

// Option configures a Generator.
type Option func(*Generator)

// WithRuntime attaches the collector backing the runtime section. Without
// one the section is omitted regardless of the request.
func WithRuntime(rc RuntimeCollector) Option {
	return func(g *Generator) {
		g.runtime = rc
	}
}

// WithClock overrides the wall clock.
func WithClock(clock Clock) Option {
	return func(g *Generator) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithLogger overrides the logger used for per-instrument failure reports.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator walks a registry view and serializes one JSON document per
// Write call. It never mutates the registry; a quiescent registry yields
// byte-identical documents on consecutive calls.
type Generator struct {
	view    RegistryView
	runtime RuntimeCollector
	clock   Clock
	logger  *slog.Logger
	proc    Processor
}

// New creates a Generator over the given registry view.
func New(view RegistryView, opts ...Option) *Generator {
	g := &Generator{
		view:   view,
		clock:  time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.proc = newRecordProcessor(g.logger)
	return g
}

// Request selects what a single document contains.
type Request struct {
	GroupPrefix string // "" selects every group
	FullSamples bool   // include raw sample arrays in histogram and timer records
	Runtime     bool   // include the runtime section
	Pretty      bool   // two-space indented output
}

// Write serializes one document to w. Failing instruments are logged,
// counted, and dropped record-by-record; the document stays well-formed.
// Only a broken sink or a canceled context makes Write return an error,
// and by then partial bytes may already be written.
func (g *Generator) Write(ctx context.Context, w io.Writer, req Request) error {
	start := time.Now()
	defer func() {
		documentGenerationDuration.Observe(time.Since(start).Seconds())
	}()

	var opts []serializer.StreamOption
	if req.Pretty {
		opts = append(opts, serializer.WithPretty(true))
	}
	s := serializer.NewStream(w, opts...)
	s.BeginObject()

	if req.Runtime && g.runtime != nil && (req.GroupPrefix == "" || req.GroupPrefix == RuntimeGroup) {
		g.writeRuntime(ctx, s)
	}

	records := 0
	if req.GroupPrefix != RuntimeGroup {
		for _, group := range g.view.GroupedView() {
			if !strings.HasPrefix(group.Name, req.GroupPrefix) {
				continue
			}
			if s.Err() != nil || ctx.Err() != nil {
				break
			}
			records += g.writeGroup(s, group, req)
		}
	}

	s.EndObject()
	err := s.Close()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		documentGenerationTotal.WithLabelValues("error").Inc()
		return errors.Wrap(errors.ErrCodeInternal, "failed to write instrument document", err)
	}

	documentGenerationTotal.WithLabelValues("success").Inc()
	documentInstrumentCount.Set(float64(records))
	return nil
}

// writeGroup emits one group object. Each record is serialized into its
// own fragment first so a mid-record failure never leaves partial bytes
// in the document; failed entries are skipped.
func (g *Generator) writeGroup(s *serializer.Stream, group registry.Group, req Request) int {
	s.Name(group.Name)
	s.BeginObject()
	base := s.Depth()

	written := 0
	for _, entry := range group.Entries {
		if s.Err() != nil {
			break
		}
		frag, err := g.recordFragment(entry, req, base)
		if err != nil {
			documentInstrumentFailures.WithLabelValues(entry.Instrument.Kind().String()).Inc()
			g.logger.Error("error writing instrument",
				slog.String("instrument", entry.Name.String()),
				slog.String("error", err.Error()))
			continue
		}
		s.Name(entry.Name.Name)
		s.Raw(frag)
		written++
	}

	s.EndObject()
	return written
}

func (g *Generator) recordFragment(entry registry.Entry, req Request, depth int) ([]byte, error) {
	var buf bytes.Buffer
	opts := []serializer.StreamOption{serializer.WithBaseIndent(depth)}
	if req.Pretty {
		opts = append(opts, serializer.WithPretty(true))
	}
	fs := serializer.NewStream(&buf, opts...)

	sc := &Scope{Stream: fs, FullSamples: req.FullSamples}
	if err := Dispatch(entry.Name, entry.Instrument, g.proc, sc); err != nil {
		return nil, err
	}
	if err := fs.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeRuntime collects and writes the runtime section. A collector
// failure degrades to an absent section; the instrument groups still
// follow.
func (g *Generator) writeRuntime(ctx context.Context, s *serializer.Stream) {
	snap, err := g.runtime.Collect(ctx)
	if err != nil {
		documentRuntimeFailures.Inc()
		g.logger.Error("error collecting runtime statistics",
			slog.String("error", err.Error()))
		return
	}
	writeRuntimeSection(s, snap, g.clock())
}
