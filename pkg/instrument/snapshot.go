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

import (
	"fmt"
	"math"
	"sort"
)

// Snapshot is an immutable, sorted view of sampled values used for
// quantile estimation. Once constructed it is safe for concurrent use.
type Snapshot struct {
	values []float64
}

// NewSnapshot copies and sorts values into a snapshot.
func NewSnapshot(values []float64) *Snapshot {
	vs := make([]float64, len(values))
	copy(vs, values)
	sort.Float64s(vs)
	return &Snapshot{values: vs}
}

// NewSnapshotInt64 copies and sorts int64 observations into a snapshot.
func NewSnapshotInt64(values []int64) *Snapshot {
	vs := make([]float64, len(values))
	for i, v := range values {
		vs[i] = float64(v)
	}
	sort.Float64s(vs)
	return &Snapshot{values: vs}
}

// Value returns the estimated value at quantile q in [0, 1], using linear
// interpolation between the two nearest ranks. An empty snapshot reports 0
// for every quantile.
func (s *Snapshot) Value(q float64) float64 {
	if q < 0 || q > 1 || math.IsNaN(q) {
		panic(fmt.Sprintf("quantile %v is not in [0, 1]", q))
	}
	n := len(s.values)
	if n == 0 {
		return 0
	}
	pos := q * float64(n+1)
	if pos < 1 {
		return s.values[0]
	}
	if pos >= float64(n) {
		return s.values[n-1]
	}
	lower := s.values[int(pos)-1]
	upper := s.values[int(pos)]
	return lower + (pos-math.Floor(pos))*(upper-lower)
}

// Median returns the value at the 50th percentile.
func (s *Snapshot) Median() float64 { return s.Value(0.5) }

// P75 returns the value at the 75th percentile.
func (s *Snapshot) P75() float64 { return s.Value(0.75) }

// P95 returns the value at the 95th percentile.
func (s *Snapshot) P95() float64 { return s.Value(0.95) }

// P98 returns the value at the 98th percentile.
func (s *Snapshot) P98() float64 { return s.Value(0.98) }

// P99 returns the value at the 99th percentile.
func (s *Snapshot) P99() float64 { return s.Value(0.99) }

// P999 returns the value at the 99.9th percentile.
func (s *Snapshot) P999() float64 { return s.Value(0.999) }

// Size returns the number of sampled values.
func (s *Snapshot) Size() int { return len(s.values) }

// Values returns the sampled values in ascending order. The returned
// slice is a copy.
func (s *Snapshot) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Scaled returns a new snapshot with every value multiplied by factor.
// The factor must be positive so ordering is preserved.
func (s *Snapshot) Scaled(factor float64) *Snapshot {
	vs := make([]float64, len(s.values))
	for i, v := range s.values {
		vs[i] = v * factor
	}
	return &Snapshot{values: vs}
}
