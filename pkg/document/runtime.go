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

package document

import (
	"maps"
	"slices"
	"time"

	"github.com/pulsemetrics/pulse/pkg/runtimestats"
	"github.com/pulsemetrics/pulse/pkg/serializer"
)

// writeRuntimeSection emits the "runtime" member with a fixed field
// order. Durations and timestamps are milliseconds; maps iterate in
// sorted key order so repeated generations stay byte-identical.
func writeRuntimeSection(s *serializer.Stream, snap *runtimestats.Snapshot, now time.Time) {
	s.Name(RuntimeGroup)
	s.BeginObject()

	s.Name("go")
	s.BeginObject()
	s.Name("name")
	s.String(snap.Go.Name)
	s.Name("version")
	s.String(snap.Go.Version)
	s.EndObject()

	s.Name("memory")
	s.BeginObject()
	s.Name("alloc")
	s.Uint(snap.Memory.Alloc)
	s.Name("total_alloc")
	s.Uint(snap.Memory.TotalAlloc)
	s.Name("sys")
	s.Uint(snap.Memory.Sys)
	s.Name("heap_alloc")
	s.Uint(snap.Memory.HeapAlloc)
	s.Name("heap_sys")
	s.Uint(snap.Memory.HeapSys)
	s.Name("heap_inuse")
	s.Uint(snap.Memory.HeapInuse)
	s.Name("heap_idle")
	s.Uint(snap.Memory.HeapIdle)
	s.Name("heap_released")
	s.Uint(snap.Memory.HeapReleased)
	s.Name("heap_objects")
	s.Uint(snap.Memory.HeapObjects)
	s.Name("heap_usage")
	s.Float(snap.Memory.HeapUsage)
	s.Name("gc_cpu_fraction")
	s.Float(snap.Memory.GCCPUFraction)
	s.Name("memory_pool_usages")
	writeFloatMap(s, snap.Memory.PoolUsages)
	s.EndObject()

	if len(snap.BufferPools) > 0 {
		s.Name("buffers")
		s.BeginObject()
		for _, name := range sortedKeys(snap.BufferPools) {
			pool := snap.BufferPools[name]
			s.Name(name)
			s.BeginObject()
			s.Name("count")
			s.Int(pool.Count)
			s.Name("memory_used")
			s.Int(pool.MemoryUsed)
			s.Name("total_capacity")
			s.Int(pool.TotalCapacity)
			s.EndObject()
		}
		s.EndObject()
	}

	s.Name("goroutine_count")
	s.Int(int64(snap.GoroutineCount))
	s.Name("thread_count")
	s.Int(int64(snap.ThreadCount))
	s.Name("current_time")
	s.Int(now.UnixMilli())
	s.Name("uptime")
	s.Int(snap.Uptime.Milliseconds())
	s.Name("fd_usage")
	s.Float(snap.FDUsage)

	if len(snap.GoroutineStates) > 0 {
		s.Name("goroutine-states")
		writeFloatMap(s, snap.GoroutineStates)
	}

	s.Name("garbage-collectors")
	s.BeginObject()
	for _, name := range sortedKeys(snap.Collectors) {
		gc := snap.Collectors[name]
		s.Name(name)
		s.BeginObject()
		s.Name("runs")
		s.Uint(gc.Runs)
		s.Name("time")
		s.Int(gc.Time.Milliseconds())
		s.EndObject()
	}
	s.EndObject()

	s.EndObject()
}

func writeFloatMap(s *serializer.Stream, m map[string]float64) {
	s.BeginObject()
	for _, k := range sortedKeys(m) {
		s.Name(k)
		s.Float(m[k])
	}
	s.EndObject()
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
