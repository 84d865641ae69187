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
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/pulsemetrics/pulse/pkg/instrument"
	"github.com/pulsemetrics/pulse/pkg/registry"
	"github.com/pulsemetrics/pulse/pkg/serializer"
)

func renderRecord(t *testing.T, inst instrument.Instrument, fullSamples bool) string {
	t.Helper()
	var buf bytes.Buffer
	s := serializer.NewStream(&buf)
	sc := &Scope{Stream: s, FullSamples: fullSamples}
	p := newRecordProcessor(slog.New(slog.DiscardHandler))
	if err := Dispatch(registry.NewName("test.group", "inst"), inst, p, sc); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return buf.String()
}

// decodeKeys consumes one JSON object from dec and returns its field
// names in document order.
func decodeKeys(t *testing.T, dec *json.Decoder) []string {
	t.Helper()
	tok, err := dec.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		t.Fatalf("expected object start, got %v", tok)
	}
	var keys []string
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			t.Fatalf("Token() error = %v", err)
		}
		key, ok := tok.(string)
		if !ok {
			t.Fatalf("expected field name, got %v", tok)
		}
		keys = append(keys, key)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
	}
	if _, err = dec.Token(); err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	return keys
}

func recordKeys(t *testing.T, doc string) []string {
	t.Helper()
	return decodeKeys(t, json.NewDecoder(strings.NewReader(doc)))
}

func TestCounterRecord(t *testing.T) {
	c := instrument.NewCounter()
	c.Inc(5)

	got := renderRecord(t, c, false)
	want := `{"type":"counter","count":5}`
	if got != want {
		t.Errorf("counter record = %s, want %s", got, want)
	}
}

func TestGaugeRecordValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, `{"type":"gauge","value":42}`},
		{"float", 2.5, `{"type":"gauge","value":2.5}`},
		{"string", "ok", `{"type":"gauge","value":"ok"}`},
		{"bool", true, `{"type":"gauge","value":true}`},
		{"nil", nil, `{"type":"gauge","value":null}`},
		{"map", map[string]any{"used": 7}, `{"type":"gauge","value":{"used":7}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := instrument.NewGauge(func() (any, error) { return tt.value, nil })
			if got := renderRecord(t, g, false); got != tt.want {
				t.Errorf("gauge record = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGaugeRecordReadFailure(t *testing.T) {
	g := instrument.NewGauge(func() (any, error) { return nil, fmt.Errorf("boom") })

	got := renderRecord(t, g, false)
	want := `{"type":"gauge","value":"error reading gauge: boom"}`
	if got != want {
		t.Errorf("gauge record = %s, want %s", got, want)
	}
}

func TestGaugeRecordPanicDegrades(t *testing.T) {
	g := instrument.NewGauge(func() (any, error) { panic("broken probe") })

	got := renderRecord(t, g, false)
	if !strings.Contains(got, `"value":"error reading gauge: `) {
		t.Errorf("gauge record = %s, want degraded error value", got)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("gauge record is not valid JSON: %s", got)
	}
}

// A gauge value encoding/json cannot represent fails the whole record;
// the caller is expected to drop the fragment.
func TestGaugeRecordUnserializableValue(t *testing.T) {
	g := instrument.NewGauge(func() (any, error) { return make(chan int), nil })

	var buf bytes.Buffer
	s := serializer.NewStream(&buf)
	sc := &Scope{Stream: s, FullSamples: false}
	p := newRecordProcessor(slog.New(slog.DiscardHandler))

	err := Dispatch(registry.NewName("test.group", "inst"), g, p, sc)
	if err == nil {
		t.Fatal("Dispatch() expected error for unserializable gauge value")
	}
}

func TestHistogramRecordFieldOrder(t *testing.T) {
	h := instrument.NewHistogram()
	for _, v := range []int64{3, 1, 5, 2, 4} {
		h.Update(v)
	}

	got := renderRecord(t, h, false)
	wantKeys := []string{"type", "count", "min", "max", "mean", "std_dev", "median", "p75", "p95", "p98", "p99", "p999"}
	if keys := recordKeys(t, got); !slices.Equal(keys, wantKeys) {
		t.Errorf("histogram keys = %v, want %v", keys, wantKeys)
	}
	if strings.Contains(got, `"values"`) {
		t.Errorf("histogram record carries values without full samples: %s", got)
	}
}

func TestHistogramRecordFullSamples(t *testing.T) {
	h := instrument.NewHistogram()
	for _, v := range []int64{3, 1, 5, 2, 4} {
		h.Update(v)
	}

	got := renderRecord(t, h, true)
	wantKeys := []string{"type", "count", "min", "max", "mean", "std_dev", "median", "p75", "p95", "p98", "p99", "p999", "values"}
	if keys := recordKeys(t, got); !slices.Equal(keys, wantKeys) {
		t.Errorf("histogram keys = %v, want %v", keys, wantKeys)
	}
	if !strings.Contains(got, `"values":[1,2,3,4,5]`) {
		t.Errorf("histogram record = %s, want ascending values", got)
	}
}

func TestMeterRecordFieldOrder(t *testing.T) {
	m := instrument.NewMeter("req")
	m.Mark(10)

	got := renderRecord(t, m, false)
	wantKeys := []string{"type", "event_type", "unit", "count", "mean", "m1", "m5", "m15"}
	if keys := recordKeys(t, got); !slices.Equal(keys, wantKeys) {
		t.Errorf("meter keys = %v, want %v", keys, wantKeys)
	}
	if !strings.Contains(got, `"event_type":"req"`) {
		t.Errorf("meter record = %s, want event_type req", got)
	}
	if !strings.Contains(got, `"unit":"seconds"`) {
		t.Errorf("meter record = %s, want unit seconds", got)
	}
}

func TestTimerRecordShape(t *testing.T) {
	tm := instrument.NewTimer()
	tm.Update(25 * time.Millisecond)
	tm.Update(75 * time.Millisecond)

	got := renderRecord(t, tm, false)
	if keys := recordKeys(t, got); !slices.Equal(keys, []string{"type", "duration", "rate"}) {
		t.Fatalf("timer keys = %v, want [type duration rate]", keys)
	}

	var rec struct {
		Duration json.RawMessage `json:"duration"`
		Rate     json.RawMessage `json:"rate"`
	}
	if err := json.Unmarshal([]byte(got), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	durationKeys := decodeKeys(t, json.NewDecoder(bytes.NewReader(rec.Duration)))
	wantDuration := []string{"unit", "min", "max", "mean", "std_dev", "median", "p75", "p95", "p98", "p99", "p999"}
	if !slices.Equal(durationKeys, wantDuration) {
		t.Errorf("duration keys = %v, want %v", durationKeys, wantDuration)
	}

	rateKeys := decodeKeys(t, json.NewDecoder(bytes.NewReader(rec.Rate)))
	wantRate := []string{"unit", "count", "mean", "m1", "m5", "m15"}
	if !slices.Equal(rateKeys, wantRate) {
		t.Errorf("rate keys = %v, want %v", rateKeys, wantRate)
	}

	if !strings.Contains(got, `"unit":"milliseconds"`) {
		t.Errorf("timer record = %s, want duration unit milliseconds", got)
	}
}

func TestTimerRecordFullSamples(t *testing.T) {
	tm := instrument.NewTimer()
	tm.Update(10 * time.Millisecond)
	tm.Update(30 * time.Millisecond)

	got := renderRecord(t, tm, true)

	var rec struct {
		Duration struct {
			Values []float64 `json:"values"`
		} `json:"duration"`
		Rate map[string]any `json:"rate"`
	}
	if err := json.Unmarshal([]byte(got), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	// Millisecond duration unit scales the nanosecond samples to 10 and 30.
	if want := []float64{10, 30}; !slices.Equal(rec.Duration.Values, want) {
		t.Errorf("duration values = %v, want %v", rec.Duration.Values, want)
	}
	if _, ok := rec.Rate["values"]; ok {
		t.Error("rate block must not carry sample values")
	}
}
