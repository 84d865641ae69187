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

package runtimestats

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Option defines a configuration option for Collector.
type Option func(*Collector)

// WithGoroutineStates enables goroutine state sampling. Sampling dumps every
// goroutine's stack header, which briefly stops the world; it is off by
// default.
func WithGoroutineStates(enabled bool) Option {
	return func(c *Collector) {
		c.goroutineStates = enabled
	}
}

// WithBufferPool registers a buffer pool statistics source under name.
// Registering the same name again replaces the earlier source.
func WithBufferPool(name string, fn BufferPoolFunc) Option {
	return func(c *Collector) {
		if name != "" && fn != nil {
			c.bufferPools[name] = fn
		}
	}
}

// WithStartTime sets the instant uptime is measured against.
// Defaults to collector construction time.
func WithStartTime(t time.Time) Option {
	return func(c *Collector) {
		c.startTime = t
	}
}

// WithLogger sets the logger for sub-collection failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Collector produces runtime Snapshots for the current process.
type Collector struct {
	startTime       time.Time
	logger          *slog.Logger
	goroutineStates bool
	bufferPools     map[string]BufferPoolFunc
}

// NewCollector creates a Collector with the specified options.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		startTime:   time.Now(),
		logger:      slog.Default(),
		bufferPools: make(map[string]BufferPoolFunc),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect gathers a Snapshot of the current process. Probes that can fail on
// a given platform (file descriptors, goroutine states) degrade to zero or
// omitted fields and are logged at debug level; Collect itself fails only on
// context cancellation.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("runtime collection aborted: %w", err)
	}

	snap := &Snapshot{
		Go: GoInfo{
			Name:    runtime.Compiler,
			Version: runtime.Version(),
		},
	}

	var mu sync.Mutex
	var g errgroup.Group

	// Memory and garbage collector statistics.
	g.Go(func() error {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)

		mu.Lock()
		snap.Memory = memoryStats(&ms)
		snap.Collectors = map[string]CollectorStats{
			"gc": {
				Runs: uint64(ms.NumGC),
				Time: time.Duration(ms.PauseTotalNs),
			},
		}
		mu.Unlock()
		return nil
	})

	// Scheduler counts.
	g.Go(func() error {
		goroutines := runtime.NumGoroutine()
		threads := threadCount()

		mu.Lock()
		snap.GoroutineCount = goroutines
		snap.ThreadCount = threads
		mu.Unlock()
		return nil
	})

	// File descriptor usage.
	g.Go(func() error {
		usage, err := fdUsage()
		if err != nil {
			c.logger.Debug("file descriptor probe unavailable", "error", err)
			return nil
		}
		mu.Lock()
		snap.FDUsage = usage
		mu.Unlock()
		return nil
	})

	if c.goroutineStates {
		g.Go(func() error {
			states := sampleGoroutineStates()

			mu.Lock()
			snap.GoroutineStates = states
			mu.Unlock()
			return nil
		})
	}

	if len(c.bufferPools) > 0 {
		g.Go(func() error {
			pools := make(map[string]BufferPoolStats, len(c.bufferPools))
			for name, fn := range c.bufferPools {
				pools[name] = fn()
			}

			mu.Lock()
			snap.BufferPools = pools
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("runtime collection aborted: %w", err)
	}

	snap.Uptime = time.Since(c.startTime)
	return snap, nil
}

// memoryStats converts raw MemStats into the snapshot memory block.
func memoryStats(ms *runtime.MemStats) MemoryStats {
	return MemoryStats{
		Alloc:         ms.Alloc,
		TotalAlloc:    ms.TotalAlloc,
		Sys:           ms.Sys,
		HeapAlloc:     ms.HeapAlloc,
		HeapSys:       ms.HeapSys,
		HeapInuse:     ms.HeapInuse,
		HeapIdle:      ms.HeapIdle,
		HeapReleased:  ms.HeapReleased,
		HeapObjects:   ms.HeapObjects,
		HeapUsage:     ratio(ms.HeapInuse, ms.HeapSys),
		GCCPUFraction: ms.GCCPUFraction,
		PoolUsages: map[string]float64{
			"stack":  ratio(ms.StackInuse, ms.StackSys),
			"mspan":  ratio(ms.MSpanInuse, ms.MSpanSys),
			"mcache": ratio(ms.MCacheInuse, ms.MCacheSys),
			"gc":     ratio(ms.GCSys, ms.Sys),
		},
	}
}

func ratio(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}

// threadCount reports OS threads created by the process, from the
// threadcreate profile.
func threadCount() int {
	p := pprof.Lookup("threadcreate")
	if p == nil {
		return 0
	}
	return p.Count()
}

// sampleGoroutineStates dumps all goroutine stack headers and buckets them
// by scheduler state. The dump stops the world, which is why state sampling
// is opt-in.
func sampleGoroutineStates() map[string]float64 {
	buf := make([]byte, 1<<20)
	n := runtime.Stack(buf, true)
	for n == len(buf) {
		buf = make([]byte, 2*len(buf))
		n = runtime.Stack(buf, true)
	}
	return parseGoroutineStates(buf[:n])
}
