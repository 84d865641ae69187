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

import "time"

// Timer measures call durations and call throughput: a histogram of
// durations (kept internally in nanoseconds) combined with a meter of
// completion events. Duration statistics are reported in the timer's
// duration unit; rates in its rate unit.
type Timer struct {
	durationUnit Unit
	rateUnit     Unit
	clock        func() time.Time

	histogram *Histogram
	meter     *Meter
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithDurationUnit sets the unit durations are reported in. Unknown
// units are ignored and the default of milliseconds is kept.
func WithDurationUnit(u Unit) TimerOption {
	return func(t *Timer) {
		if !u.IsUnknown() {
			t.durationUnit = u
		}
	}
}

// WithTimerRateUnit sets the unit call rates are reported in.
func WithTimerRateUnit(u Unit) TimerOption {
	return func(t *Timer) {
		if !u.IsUnknown() {
			t.rateUnit = u
		}
	}
}

// WithTimerClock replaces the wall clock, for deterministic tests.
func WithTimerClock(clock func() time.Time) TimerOption {
	return func(t *Timer) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// NewTimer creates a timer reporting durations in milliseconds and rates
// per second.
func NewTimer(opts ...TimerOption) *Timer {
	t := &Timer{
		durationUnit: UnitMilliseconds,
		rateUnit:     UnitSeconds,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.histogram = NewHistogram()
	t.meter = NewMeter("calls", WithRateUnit(t.rateUnit), WithMeterClock(t.clock))
	return t
}

// Kind returns KindTimer.
func (t *Timer) Kind() Kind { return KindTimer }

func (t *Timer) instrument() {}

// DurationUnit returns the unit durations are reported in.
func (t *Timer) DurationUnit() Unit { return t.durationUnit }

// RateUnit returns the unit call rates are reported in.
func (t *Timer) RateUnit() Unit { return t.meter.RateUnit() }

// Update records a completed call. Negative durations are discarded.
func (t *Timer) Update(d time.Duration) {
	if d < 0 {
		return
	}
	t.histogram.Update(d.Nanoseconds())
	t.meter.Mark(1)
}

// UpdateSince records a call that started at the given instant.
func (t *Timer) UpdateSince(start time.Time) {
	t.Update(t.clock().Sub(start))
}

// Time runs fn and records its duration, including when fn panics.
func (t *Timer) Time(fn func()) {
	start := t.clock()
	defer t.UpdateSince(start)
	fn()
}

// Clear resets the duration distribution. The embedded meter keeps its
// start time so rates remain meaningful.
func (t *Timer) Clear() {
	t.histogram.Clear()
}

// Count returns the number of recorded calls.
func (t *Timer) Count() int64 { return t.meter.Count() }

// MeanRate returns the average call rate per rate unit since creation.
func (t *Timer) MeanRate() float64 { return t.meter.MeanRate() }

// Rate1 returns the one-minute moving average call rate.
func (t *Timer) Rate1() float64 { return t.meter.Rate1() }

// Rate5 returns the five-minute moving average call rate.
func (t *Timer) Rate5() float64 { return t.meter.Rate5() }

// Rate15 returns the fifteen-minute moving average call rate.
func (t *Timer) Rate15() float64 { return t.meter.Rate15() }

// Min returns the shortest recorded duration in the duration unit.
func (t *Timer) Min() float64 { return t.fromNanos(t.histogram.Min()) }

// Max returns the longest recorded duration in the duration unit.
func (t *Timer) Max() float64 { return t.fromNanos(t.histogram.Max()) }

// Mean returns the mean recorded duration in the duration unit.
func (t *Timer) Mean() float64 { return t.fromNanos(t.histogram.Mean()) }

// StdDev returns the standard deviation of recorded durations in the
// duration unit.
func (t *Timer) StdDev() float64 { return t.fromNanos(t.histogram.StdDev()) }

// Snapshot captures the sampled durations converted to the duration unit.
func (t *Timer) Snapshot() *Snapshot {
	return t.histogram.Snapshot().Scaled(1 / float64(t.durationUnit.Duration().Nanoseconds()))
}

func (t *Timer) fromNanos(ns float64) float64 {
	return ns / float64(t.durationUnit.Duration().Nanoseconds())
}
