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
	"math"
	"sync"
)

// Histogram records the distribution of int64 observations. Summary
// statistics (min, max, mean, standard deviation) cover every recorded
// value; quantiles come from a uniform reservoir sample.
type Histogram struct {
	sample *UniformSample

	mu    sync.Mutex
	count int64
	sum   int64
	min   int64
	max   int64
	// Welford accumulators for a numerically stable running variance.
	welfordM float64
	welfordS float64
}

// HistogramOption configures a Histogram.
type HistogramOption func(*Histogram)

// WithSampleSize sets the reservoir size used for quantile estimation.
func WithSampleSize(size int) HistogramOption {
	return func(h *Histogram) {
		h.sample = NewUniformSample(size)
	}
}

// NewHistogram creates an empty histogram with a uniform reservoir of
// DefaultSampleSize values.
func NewHistogram(opts ...HistogramOption) *Histogram {
	h := &Histogram{
		sample: NewUniformSample(DefaultSampleSize),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Kind returns KindHistogram.
func (h *Histogram) Kind() Kind { return KindHistogram }

func (h *Histogram) instrument() {}

// Update records a new observation.
func (h *Histogram) Update(v int64) {
	h.sample.Update(v)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += v
	if h.count == 1 {
		h.min = v
		h.max = v
		h.welfordM = float64(v)
		h.welfordS = 0
		return
	}
	if v < h.min {
		h.min = v
	}
	if v > h.max {
		h.max = v
	}
	fv := float64(v)
	nm := h.welfordM + (fv-h.welfordM)/float64(h.count)
	h.welfordS += (fv - h.welfordM) * (fv - nm)
	h.welfordM = nm
}

// Clear resets all statistics and the reservoir.
func (h *Histogram) Clear() {
	h.sample.Clear()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.count = 0
	h.sum = 0
	h.min = 0
	h.max = 0
	h.welfordM = 0
	h.welfordS = 0
}

// Count returns the number of recorded observations.
func (h *Histogram) Count() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Min returns the smallest recorded value, or 0 before any update.
func (h *Histogram) Min() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 {
		return 0
	}
	return float64(h.min)
}

// Max returns the largest recorded value, or 0 before any update.
func (h *Histogram) Max() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 {
		return 0
	}
	return float64(h.max)
}

// Mean returns the arithmetic mean of every recorded value.
func (h *Histogram) Mean() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 {
		return 0
	}
	return float64(h.sum) / float64(h.count)
}

// StdDev returns the sample standard deviation of every recorded value,
// or 0 with fewer than two observations.
func (h *Histogram) StdDev() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count < 2 {
		return 0
	}
	return math.Sqrt(h.welfordS / float64(h.count-1))
}

// Snapshot captures the reservoir for quantile estimation.
func (h *Histogram) Snapshot() *Snapshot {
	return h.sample.Snapshot()
}
