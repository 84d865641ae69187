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

import "sync/atomic"

// Counter is an incrementing and decrementing event count.
type Counter struct {
	n atomic.Int64
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Kind returns KindCounter.
func (c *Counter) Kind() Kind { return KindCounter }

func (c *Counter) instrument() {}

// Inc increments the counter by delta.
func (c *Counter) Inc(delta int64) {
	c.n.Add(delta)
}

// Dec decrements the counter by delta.
func (c *Counter) Dec(delta int64) {
	c.n.Add(-delta)
}

// Clear resets the counter to zero.
func (c *Counter) Clear() {
	c.n.Store(0)
}

// Count returns the current value.
func (c *Counter) Count() int64 {
	return c.n.Load()
}
