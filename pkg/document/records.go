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
	"log/slog"

	"github.com/pulsemetrics/pulse/pkg/instrument"
	"github.com/pulsemetrics/pulse/pkg/registry"
	"github.com/pulsemetrics/pulse/pkg/serializer"
)

// recordProcessor writes the canonical JSON record for each instrument
// kind. Every record opens with the "type" field; the remaining field
// order is fixed per kind and is part of the wire contract.
type recordProcessor struct {
	logger *slog.Logger
}

func newRecordProcessor(logger *slog.Logger) *recordProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &recordProcessor{logger: logger}
}

func (p *recordProcessor) ProcessCounter(name registry.Name, c *instrument.Counter, sc *Scope) error {
	s := sc.Stream
	s.BeginObject()
	s.Name("type")
	s.String(instrument.KindCounter.String())
	s.Name("count")
	s.Int(c.Count())
	s.EndObject()
	return s.Err()
}

// ProcessGauge serializes the gauge's value with encoding/json. A read
// failure degrades to an error string in the value position so the
// record itself survives; the failure is logged and counted, never
// propagated.
func (p *recordProcessor) ProcessGauge(name registry.Name, g *instrument.Gauge, sc *Scope) error {
	s := sc.Stream
	s.BeginObject()
	s.Name("type")
	s.String(instrument.KindGauge.String())
	s.Name("value")
	v, err := g.Value()
	if err != nil {
		documentGaugeReadFailures.Inc()
		p.logger.Warn("error reading gauge",
			slog.String("instrument", name.String()),
			slog.String("error", err.Error()))
		s.String("error reading gauge: " + err.Error())
	} else {
		s.Any(v)
	}
	s.EndObject()
	return s.Err()
}

func (p *recordProcessor) ProcessHistogram(name registry.Name, h *instrument.Histogram, sc *Scope) error {
	s := sc.Stream
	s.BeginObject()
	s.Name("type")
	s.String(instrument.KindHistogram.String())
	s.Name("count")
	s.Int(h.Count())
	writeSummarized(s, h)
	// One snapshot serves both the quantile fields and the sample array.
	snap := h.Snapshot()
	writeQuantiles(s, snap)
	if sc.FullSamples {
		writeSampleValues(s, snap)
	}
	s.EndObject()
	return s.Err()
}

func (p *recordProcessor) ProcessMeter(name registry.Name, m *instrument.Meter, sc *Scope) error {
	s := sc.Stream
	s.BeginObject()
	s.Name("type")
	s.String(instrument.KindMeter.String())
	s.Name("event_type")
	s.String(m.EventType())
	s.Name("unit")
	s.String(m.RateUnit().String())
	writeMetered(s, m)
	s.EndObject()
	return s.Err()
}

// ProcessTimer writes two nested blocks: "duration" carries the summary
// and quantiles converted to the timer's duration unit, "rate" carries
// the metered fields without an event type.
func (p *recordProcessor) ProcessTimer(name registry.Name, t *instrument.Timer, sc *Scope) error {
	s := sc.Stream
	s.BeginObject()
	s.Name("type")
	s.String(instrument.KindTimer.String())

	s.Name("duration")
	s.BeginObject()
	s.Name("unit")
	s.String(t.DurationUnit().String())
	writeSummarized(s, t)
	snap := t.Snapshot()
	writeQuantiles(s, snap)
	if sc.FullSamples {
		writeSampleValues(s, snap)
	}
	s.EndObject()

	s.Name("rate")
	s.BeginObject()
	s.Name("unit")
	s.String(t.RateUnit().String())
	writeMetered(s, t)
	s.EndObject()

	s.EndObject()
	return s.Err()
}

func writeSummarized(s *serializer.Stream, v instrument.Summarized) {
	s.Name("min")
	s.Float(v.Min())
	s.Name("max")
	s.Float(v.Max())
	s.Name("mean")
	s.Float(v.Mean())
	s.Name("std_dev")
	s.Float(v.StdDev())
}

func writeQuantiles(s *serializer.Stream, snap *instrument.Snapshot) {
	s.Name("median")
	s.Float(snap.Median())
	s.Name("p75")
	s.Float(snap.P75())
	s.Name("p95")
	s.Float(snap.P95())
	s.Name("p98")
	s.Float(snap.P98())
	s.Name("p99")
	s.Float(snap.P99())
	s.Name("p999")
	s.Float(snap.P999())
}

// writeSampleValues emits the raw reservoir in ascending order. Only
// called when the request enables full samples.
func writeSampleValues(s *serializer.Stream, snap *instrument.Snapshot) {
	s.Name("values")
	s.BeginArray()
	for _, v := range snap.Values() {
		s.Float(v)
	}
	s.EndArray()
}

func writeMetered(s *serializer.Stream, m instrument.Metered) {
	s.Name("count")
	s.Int(m.Count())
	s.Name("mean")
	s.Float(m.MeanRate())
	s.Name("m1")
	s.Float(m.Rate1())
	s.Name("m5")
	s.Float(m.Rate5())
	s.Name("m15")
	s.Float(m.Rate15())
}
