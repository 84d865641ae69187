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

// Package runtimestats captures point-in-time views of the Go process.
//
// # Overview
//
// Collector gathers one Snapshot per call: memory statistics and pool
// usages from runtime.ReadMemStats, goroutine and OS thread counts,
// process uptime, file descriptor usage, garbage collector totals, and
// optionally goroutine scheduler states and caller-registered buffer pool
// statistics. The document generator renders the Snapshot as the document's
// runtime section.
//
// # Usage
//
//	collector := runtimestats.NewCollector(
//	    runtimestats.WithStartTime(startTime),
//	    runtimestats.WithGoroutineStates(true),
//	)
//
//	snap, err := collector.Collect(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(snap.GoroutineCount)
//
// # Parallel Collection
//
// Collect fans sub-collections out with errgroup. Probes that depend on the
// platform (file descriptors via /proc and RLIMIT_NOFILE) or on stopping the
// world (goroutine states) degrade to zero or omitted fields when they fail
// or are disabled; only context cancellation fails the whole collection.
//
// # Buffer Pools
//
// Applications that maintain reusable buffer pools can surface them:
//
//	collector := runtimestats.NewCollector(
//	    runtimestats.WithBufferPool("wire", func() runtimestats.BufferPoolStats {
//	        return runtimestats.BufferPoolStats{Count: pool.Len(), ...}
//	    }),
//	)
package runtimestats
