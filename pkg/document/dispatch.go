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
	"fmt"

	"github.com/pulsemetrics/pulse/pkg/errors"
	"github.com/pulsemetrics/pulse/pkg/instrument"
	"github.com/pulsemetrics/pulse/pkg/registry"
	"github.com/pulsemetrics/pulse/pkg/serializer"
)

// Scope carries the serialization context for a single record: the stream
// the record is written to and the request's sample gating.
type Scope struct {
	Stream      *serializer.Stream
	FullSamples bool
}

// Processor receives exactly one call per dispatched instrument, on the
// method matching the instrument's concrete type.
type Processor interface {
	ProcessCounter(name registry.Name, c *instrument.Counter, sc *Scope) error
	ProcessGauge(name registry.Name, g *instrument.Gauge, sc *Scope) error
	ProcessHistogram(name registry.Name, h *instrument.Histogram, sc *Scope) error
	ProcessMeter(name registry.Name, m *instrument.Meter, sc *Scope) error
	ProcessTimer(name registry.Name, t *instrument.Timer, sc *Scope) error
}

// UnsupportedKindError reports an instrument whose concrete type has no
// dispatch branch. The instrument set is closed, so reaching it means a
// variant was added without extending Processor.
type UnsupportedKindError struct {
	Name registry.Name
	Kind instrument.Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported instrument kind %q for %s", e.Kind, e.Name)
}

// Unwrap exposes the structured classification so callers can route on
// errors.CodeOf.
func (e *UnsupportedKindError) Unwrap() error {
	return errors.NewWithContext(errors.ErrCodeUnsupportedKind, e.Error(), map[string]any{
		"instrument": e.Name.String(),
		"kind":       e.Kind.String(),
	})
}

// Dispatch routes inst to the Processor method matching its concrete type.
// The switch is total over the five instrument variants; anything else
// returns *UnsupportedKindError. Dispatch never panics and never skips an
// instrument silently.
func Dispatch(name registry.Name, inst instrument.Instrument, p Processor, sc *Scope) error {
	switch v := inst.(type) {
	case *instrument.Counter:
		return p.ProcessCounter(name, v, sc)
	case *instrument.Gauge:
		return p.ProcessGauge(name, v, sc)
	case *instrument.Histogram:
		return p.ProcessHistogram(name, v, sc)
	case *instrument.Meter:
		return p.ProcessMeter(name, v, sc)
	case *instrument.Timer:
		return p.ProcessTimer(name, v, sc)
	default:
		return &UnsupportedKindError{Name: name, Kind: inst.Kind()}
	}
}
