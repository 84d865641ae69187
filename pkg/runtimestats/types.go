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

import "time"

// GoInfo identifies the Go runtime the process runs on.
type GoInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// MemoryStats is the memory block of a runtime snapshot. Sizes are bytes;
// HeapUsage, GCCPUFraction, and the pool usages are fractions in [0, 1].
type MemoryStats struct {
	Alloc         uint64             `json:"alloc" yaml:"alloc"`
	TotalAlloc    uint64             `json:"total_alloc" yaml:"total_alloc"`
	Sys           uint64             `json:"sys" yaml:"sys"`
	HeapAlloc     uint64             `json:"heap_alloc" yaml:"heap_alloc"`
	HeapSys       uint64             `json:"heap_sys" yaml:"heap_sys"`
	HeapInuse     uint64             `json:"heap_inuse" yaml:"heap_inuse"`
	HeapIdle      uint64             `json:"heap_idle" yaml:"heap_idle"`
	HeapReleased  uint64             `json:"heap_released" yaml:"heap_released"`
	HeapObjects   uint64             `json:"heap_objects" yaml:"heap_objects"`
	HeapUsage     float64            `json:"heap_usage" yaml:"heap_usage"`
	GCCPUFraction float64            `json:"gc_cpu_fraction" yaml:"gc_cpu_fraction"`
	PoolUsages    map[string]float64 `json:"memory_pool_usages" yaml:"memory_pool_usages"`
}

// BufferPoolStats describes one caller-registered buffer pool.
type BufferPoolStats struct {
	Count         int64 `json:"count" yaml:"count"`
	MemoryUsed    int64 `json:"memory_used" yaml:"memory_used"`
	TotalCapacity int64 `json:"total_capacity" yaml:"total_capacity"`
}

// BufferPoolFunc reports current statistics for one buffer pool.
// Implementations must be safe for concurrent use; the collector may call
// them from its own goroutines.
type BufferPoolFunc func() BufferPoolStats

// CollectorStats describes one garbage collector: completed runs and the
// cumulative time spent in them.
type CollectorStats struct {
	Runs uint64        `json:"runs" yaml:"runs"`
	Time time.Duration `json:"time" yaml:"time"`
}

// Snapshot is a point-in-time view of the Go process and its runtime.
// It is a passive carrier; Collector produces it.
type Snapshot struct {
	Go              GoInfo                     `json:"go" yaml:"go"`
	Memory          MemoryStats                `json:"memory" yaml:"memory"`
	BufferPools     map[string]BufferPoolStats `json:"buffers,omitempty" yaml:"buffers,omitempty"`
	GoroutineCount  int                        `json:"goroutine_count" yaml:"goroutine_count"`
	ThreadCount     int                        `json:"thread_count" yaml:"thread_count"`
	Uptime          time.Duration              `json:"uptime" yaml:"uptime"`
	FDUsage         float64                    `json:"fd_usage" yaml:"fd_usage"`
	GoroutineStates map[string]float64         `json:"goroutine-states,omitempty" yaml:"goroutine-states,omitempty"`
	Collectors      map[string]CollectorStats  `json:"garbage-collectors" yaml:"garbage-collectors"`
}
