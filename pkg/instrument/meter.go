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
	"sync"
	"time"
)

// Meter measures the throughput of a named event type: total count, mean
// rate since creation, and 1/5/15-minute exponentially weighted moving
// averages. Averages tick lazily on access, so an idle meter costs
// nothing and no background goroutine exists.
type Meter struct {
	eventType string
	rateUnit  Unit
	clock     func() time.Time

	mu        sync.Mutex
	count     int64
	startTime time.Time
	lastTick  time.Time
	m1        *ewma
	m5        *ewma
	m15       *ewma
}

// MeterOption configures a Meter.
type MeterOption func(*Meter)

// WithRateUnit sets the unit rates are reported in. Unknown units are
// ignored and the default of seconds is kept.
func WithRateUnit(u Unit) MeterOption {
	return func(m *Meter) {
		if !u.IsUnknown() {
			m.rateUnit = u
		}
	}
}

// WithMeterClock replaces the wall clock, for deterministic tests.
func WithMeterClock(clock func() time.Time) MeterOption {
	return func(m *Meter) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// NewMeter creates a meter for the given event type reporting rates per
// second.
func NewMeter(eventType string, opts ...MeterOption) *Meter {
	m := &Meter{
		eventType: eventType,
		rateUnit:  UnitSeconds,
		clock:     time.Now,
		m1:        newEWMA(1),
		m5:        newEWMA(5),
		m15:       newEWMA(15),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.startTime = m.clock()
	m.lastTick = m.startTime
	return m
}

// Kind returns KindMeter.
func (m *Meter) Kind() Kind { return KindMeter }

func (m *Meter) instrument() {}

// EventType returns the name of the event being measured.
func (m *Meter) EventType() string { return m.eventType }

// RateUnit returns the unit rates are reported in.
func (m *Meter) RateUnit() Unit { return m.rateUnit }

// Mark records n occurrences of the event.
func (m *Meter) Mark(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNeeded()
	m.count += n
	m.m1.update(n)
	m.m5.update(n)
	m.m15.update(n)
}

// Count returns the total number of recorded events.
func (m *Meter) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// MeanRate returns the average rate per rate unit since the meter was
// created, or 0 before any event.
func (m *Meter) MeanRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count == 0 {
		return 0
	}
	elapsed := m.clock().Sub(m.startTime)
	if elapsed <= 0 {
		return 0
	}
	perNano := float64(m.count) / float64(elapsed.Nanoseconds())
	return perNano * float64(m.rateUnit.Duration().Nanoseconds())
}

// Rate1 returns the one-minute moving average rate per rate unit.
func (m *Meter) Rate1() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNeeded()
	return m.m1.rateIn(m.rateUnit)
}

// Rate5 returns the five-minute moving average rate per rate unit.
func (m *Meter) Rate5() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNeeded()
	return m.m5.rateIn(m.rateUnit)
}

// Rate15 returns the fifteen-minute moving average rate per rate unit.
func (m *Meter) Rate15() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNeeded()
	return m.m15.rateIn(m.rateUnit)
}

// tickIfNeeded folds every whole elapsed tick interval into the moving
// averages. Callers must hold m.mu.
func (m *Meter) tickIfNeeded() {
	elapsed := m.clock().Sub(m.lastTick)
	if elapsed < ewmaInterval {
		return
	}
	ticks := int64(elapsed / ewmaInterval)
	for i := int64(0); i < ticks; i++ {
		m.m1.tick()
		m.m5.tick()
		m.m15.tick()
	}
	m.lastTick = m.lastTick.Add(time.Duration(ticks) * ewmaInterval)
}
