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

// Package document turns a live instrument registry into one structured
// JSON document per request.
//
// # Overview
//
// A Generator walks a registry.GroupedView and serializes every
// instrument into its canonical record shape: counters and gauges as
// small objects, histograms with summary statistics and quantiles,
// meters with throughput rates, timers with a duration and a rate block.
// Every record opens with a "type" field so consumers can decode without
// knowing the registry contents in advance. An optional "runtime" section
// describes the Go process itself (memory, goroutines, file descriptors,
// garbage collection).
//
// # Failure Isolation
//
// Each record is serialized into its own fragment before being spliced
// into the document. An instrument that fails to serialize is logged,
// counted, and dropped; the surrounding document stays parseable with
// every other record present. A failing gauge read degrades further, to
// an error string in the record's value position. Only a broken sink
// aborts generation.
//
// # Usage
//
//	reg := registry.New()
//	reg.Counter(registry.NewName("api.example.Service", "requests")).Inc(1)
//
//	gen := document.New(reg,
//	    document.WithRuntime(runtimestats.NewCollector()),
//	)
//
//	var buf bytes.Buffer
//	err := gen.Write(ctx, &buf, document.Request{Runtime: true, Pretty: true})
//
// The Request selects a group prefix, raw sample gating, the runtime
// section, and pretty printing. The reserved prefix "runtime" yields
// only the runtime section.
package document
