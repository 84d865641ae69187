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
	"errors"
	"fmt"
)

// Gauge reports an instantaneous value computed on demand by a
// caller-supplied function. The value may be any JSON-encodable type.
type Gauge struct {
	fn func() (any, error)
}

// NewGauge creates a gauge backed by fn. The function runs on every read,
// so it should be cheap; expensive probes belong behind their own caching.
func NewGauge(fn func() (any, error)) *Gauge {
	return &Gauge{fn: fn}
}

// Kind returns KindGauge.
func (g *Gauge) Kind() Kind { return KindGauge }

func (g *Gauge) instrument() {}

// Value evaluates the gauge function. The function is arbitrary caller
// code: a panic inside it is converted into an error return so a single
// broken gauge cannot take down a collection pass.
func (g *Gauge) Value() (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("gauge panicked: %v", r)
		}
	}()
	if g.fn == nil {
		return nil, errors.New("gauge has no value function")
	}
	return g.fn()
}
