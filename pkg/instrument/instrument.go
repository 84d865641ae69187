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

package instrument

// Kind represents the category of an instrument (e.g., counter, gauge, histogram).
type Kind string

// String returns the string representation of the instrument Kind.
func (k Kind) String() string {
	return string(k)
}

const (
	KindCounter   Kind = "counter"
	KindGauge     Kind = "gauge"
	KindHistogram Kind = "histogram"
	KindMeter     Kind = "meter"
	KindTimer     Kind = "timer"
)

// Kinds is the list of all supported instrument kinds.
var Kinds = []Kind{
	KindCounter,
	KindGauge,
	KindHistogram,
	KindMeter,
	KindTimer,
}

// ParseKind parses a string into an instrument Kind.
// Returns the Kind and true if parsing succeeds, or empty Kind and false if the string is invalid.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Instrument is the closed set of instrument variants. Only the five
// concrete types in this package implement it; the unexported marker
// method keeps the set closed so dispatch sites can treat an unknown
// implementation as a hard error rather than a silent omission.
type Instrument interface {
	Kind() Kind

	instrument()
}

// Summarized is implemented by instruments that keep running summary
// statistics over every recorded value.
type Summarized interface {
	Min() float64
	Max() float64
	Mean() float64
	StdDev() float64
}

// Sampled is implemented by instruments that keep a reservoir of
// recorded values for quantile estimation.
type Sampled interface {
	Snapshot() *Snapshot
}

// Metered is implemented by instruments that track event throughput.
type Metered interface {
	RateUnit() Unit
	Count() int64
	MeanRate() float64
	Rate1() float64
	Rate5() float64
	Rate15() float64
}

var (
	_ Instrument = (*Counter)(nil)
	_ Instrument = (*Gauge)(nil)
	_ Instrument = (*Histogram)(nil)
	_ Instrument = (*Meter)(nil)
	_ Instrument = (*Timer)(nil)

	_ Summarized = (*Histogram)(nil)
	_ Summarized = (*Timer)(nil)
	_ Sampled    = (*Histogram)(nil)
	_ Sampled    = (*Timer)(nil)
	_ Metered    = (*Meter)(nil)
	_ Metered    = (*Timer)(nil)
)
