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
	"time"
)

// ewmaInterval is the fixed tick interval of the moving averages. The
// smoothing constants below assume this value.
const ewmaInterval = 5 * time.Second

// ewma is an exponentially weighted moving average over a fixed tick
// interval. It is not safe for concurrent use; the owning meter
// serializes access.
type ewma struct {
	alpha       float64
	rate        float64 // events per nanosecond
	uncounted   int64
	initialized bool
}

// newEWMA creates an average weighted over a window of the given number
// of minutes, alpha = 1 - exp(-interval/window).
func newEWMA(minutes float64) *ewma {
	return &ewma{
		alpha: 1 - math.Exp(-ewmaInterval.Seconds()/60.0/minutes),
	}
}

// update adds n occurrences to the current interval.
func (e *ewma) update(n int64) {
	e.uncounted += n
}

// tick closes the current interval and folds it into the average. The
// first tick seeds the average with the interval's instantaneous rate.
func (e *ewma) tick() {
	count := e.uncounted
	e.uncounted = 0
	instant := float64(count) / float64(ewmaInterval.Nanoseconds())
	if e.initialized {
		e.rate += e.alpha * (instant - e.rate)
		return
	}
	e.rate = instant
	e.initialized = true
}

// rateIn converts the per-nanosecond average into events per unit.
func (e *ewma) rateIn(u Unit) float64 {
	return e.rate * float64(u.Duration().Nanoseconds())
}
