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

package api

import (
	"runtime"
	"time"

	"github.com/pulsemetrics/pulse/pkg/registry"
)

const (
	// selfGroup holds the API's own request instruments.
	selfGroup = "pulse.api"

	// processGroup holds cheap process-level gauges.
	processGroup = "pulse.process"
)

// RegisterProcessGauges installs process-level gauges into reg so a
// fresh registry already yields a meaningful document before any
// application instruments exist. Both the daemon and one-shot captures
// use it. Every gauge here must be cheap enough to evaluate on each
// scrape.
func RegisterProcessGauges(reg *registry.Registry, start time.Time) {
	reg.Gauge(registry.NewName(processGroup, "goroutines"), func() (any, error) {
		return runtime.NumGoroutine(), nil
	})
	reg.Gauge(registry.NewName(processGroup, "gomaxprocs"), func() (any, error) {
		return runtime.GOMAXPROCS(0), nil
	})
	reg.Gauge(registry.NewName(processGroup, "cpus"), func() (any, error) {
		return runtime.NumCPU(), nil
	})
	reg.Gauge(registry.NewName(processGroup, "uptime_ms"), func() (any, error) {
		return time.Since(start).Milliseconds(), nil
	})
}
