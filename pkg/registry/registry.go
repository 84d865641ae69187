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

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pulsemetrics/pulse/pkg/errors"
	"github.com/pulsemetrics/pulse/pkg/instrument"
)

// displayKey is the uniqueness domain for serialized output: one entry
// per (group key, display name) pair, regardless of scope.
type displayKey struct {
	group string
	name  string
}

// Registry holds named instruments and produces the deterministic
// grouped view that document generation walks. Safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	instruments map[Name]instrument.Instrument
	byDisplay   map[displayKey]Name
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		instruments: make(map[Name]instrument.Instrument),
		byDisplay:   make(map[displayKey]Name),
	}
}

// Register adds an instrument under the given name. It fails with a
// CONFLICT error when another registration already claims the same
// (group key, name) pair; allowing that would put duplicate field names
// into serialized documents.
func (r *Registry) Register(n Name, inst instrument.Instrument) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if inst == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "instrument cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dk := displayKey{group: n.GroupKey(), name: n.Name}
	if existing, ok := r.byDisplay[dk]; ok {
		return errors.NewWithContext(errors.ErrCodeConflict, "instrument already registered",
			map[string]any{
				"group":    dk.group,
				"name":     dk.name,
				"existing": existing.String(),
			})
	}

	r.instruments[n] = inst
	r.byDisplay[dk] = n
	return nil
}

// Get returns the instrument registered under the exact name.
func (r *Registry) Get(n Name) (instrument.Instrument, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instruments[n]
	return inst, ok
}

// Unregister removes the instrument registered under the exact name.
// Removing an unknown name is a no-op.
func (r *Registry) Unregister(n Name) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instruments[n]; !ok {
		return
	}
	delete(r.instruments, n)
	delete(r.byDisplay, displayKey{group: n.GroupKey(), name: n.Name})
}

// Size returns the number of registered instruments.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instruments)
}

// Each calls fn for every registered instrument. The iteration runs over
// a point-in-time copy, so fn may itself use the registry.
func (r *Registry) Each(fn func(Name, instrument.Instrument)) {
	r.mu.RLock()
	snapshot := make(map[Name]instrument.Instrument, len(r.instruments))
	for n, inst := range r.instruments {
		snapshot[n] = inst
	}
	r.mu.RUnlock()

	for n, inst := range snapshot {
		fn(n, inst)
	}
}

// Entry is one instrument with its full structured name within a group.
type Entry struct {
	Name       Name
	Instrument instrument.Instrument
}

// Group is a named set of instruments, sorted by display name.
type Group struct {
	Name    string
	Entries []Entry
}

// GroupedView returns every registered instrument organized by group
// key, with groups and entries in lexicographic order. The slice is a
// point-in-time copy; the instruments themselves stay live. Identical
// registry contents always yield the identical ordering.
func (r *Registry) GroupedView() []Group {
	r.mu.RLock()
	byGroup := make(map[string][]Entry)
	for n, inst := range r.instruments {
		gk := n.GroupKey()
		byGroup[gk] = append(byGroup[gk], Entry{Name: n, Instrument: inst})
	}
	r.mu.RUnlock()

	groups := make([]Group, 0, len(byGroup))
	for gk, entries := range byGroup {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name.Name < entries[j].Name.Name })
		groups = append(groups, Group{Name: gk, Entries: entries})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}

// Counter returns the counter registered under n, creating and
// registering one if needed. It panics if the name is invalid or held by
// a different instrument kind.
func (r *Registry) Counter(n Name) *instrument.Counter {
	if inst, ok := r.Get(n); ok {
		return mustKind[*instrument.Counter](n, inst)
	}
	c := instrument.NewCounter()
	return getOrRegister(r, n, c)
}

// Gauge returns the gauge registered under n, creating one backed by fn
// if needed. It panics if the name is invalid or held by a different
// instrument kind.
func (r *Registry) Gauge(n Name, fn func() (any, error)) *instrument.Gauge {
	if inst, ok := r.Get(n); ok {
		return mustKind[*instrument.Gauge](n, inst)
	}
	g := instrument.NewGauge(fn)
	return getOrRegister(r, n, g)
}

// Histogram returns the histogram registered under n, creating one if
// needed. It panics if the name is invalid or held by a different
// instrument kind.
func (r *Registry) Histogram(n Name, opts ...instrument.HistogramOption) *instrument.Histogram {
	if inst, ok := r.Get(n); ok {
		return mustKind[*instrument.Histogram](n, inst)
	}
	h := instrument.NewHistogram(opts...)
	return getOrRegister(r, n, h)
}

// Meter returns the meter registered under n, creating one for the given
// event type if needed. It panics if the name is invalid or held by a
// different instrument kind.
func (r *Registry) Meter(n Name, eventType string, opts ...instrument.MeterOption) *instrument.Meter {
	if inst, ok := r.Get(n); ok {
		return mustKind[*instrument.Meter](n, inst)
	}
	m := instrument.NewMeter(eventType, opts...)
	return getOrRegister(r, n, m)
}

// Timer returns the timer registered under n, creating one if needed. It
// panics if the name is invalid or held by a different instrument kind.
func (r *Registry) Timer(n Name, opts ...instrument.TimerOption) *instrument.Timer {
	if inst, ok := r.Get(n); ok {
		return mustKind[*instrument.Timer](n, inst)
	}
	t := instrument.NewTimer(opts...)
	return getOrRegister(r, n, t)
}

// getOrRegister registers fresh, and on a lost race returns the winner
// when it has the expected kind. Any other failure panics, matching the
// convenience-constructor convention of instrumentation libraries.
func getOrRegister[T instrument.Instrument](r *Registry, n Name, fresh T) T {
	err := r.Register(n, fresh)
	if err == nil {
		return fresh
	}
	if inst, ok := r.Get(n); ok {
		return mustKind[T](n, inst)
	}
	panic(err)
}

func mustKind[T instrument.Instrument](n Name, inst instrument.Instrument) T {
	typed, ok := inst.(T)
	if !ok {
		panic(fmt.Sprintf("instrument %s is already registered as a %s", n, inst.Kind()))
	}
	return typed
}
