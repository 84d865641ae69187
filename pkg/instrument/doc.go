// Package instrument provides the closed set of measurement primitives
// that pulse serializes: counters, gauges, histograms, meters, and timers.
//
// # Overview
//
// Every instrument is an independent, concurrency-safe value holder. The
// package deliberately contains no registry, no naming, and no output
// concerns; those live in pkg/registry and pkg/document. The Instrument
// interface is sealed so the set of variants a serializer must handle is
// closed and checkable at dispatch time.
//
// # Variants
//
//   - Counter: incrementing/decrementing event count on an atomic int64
//   - Gauge: instantaneous value computed on demand by caller code;
//     panics inside the value function surface as error returns
//   - Histogram: distribution summary over all updates plus a uniform
//     reservoir sample for quantile estimation
//   - Meter: event throughput with mean and 1/5/15-minute moving rates,
//     ticked lazily so idle meters need no background goroutine
//   - Timer: histogram of call durations combined with a meter of calls
//
// # Capability facets
//
// Serialization code works against three small facets instead of the
// concrete types: Summarized (min/max/mean/stddev), Sampled (reservoir
// snapshots), and Metered (count and rates). Histogram and Timer are
// Summarized and Sampled; Meter and Timer are Metered.
//
// # Usage
//
//	requests := instrument.NewCounter()
//	requests.Inc(1)
//
//	latency := instrument.NewTimer()
//	latency.Time(func() { handle(req) })
//
//	depth := instrument.NewGauge(func() (any, error) {
//	    return queue.Len(), nil
//	})
//
// Snapshots are immutable copies, safe to hold across later updates:
//
//	snap := latency.Snapshot()
//	p99 := snap.P99()
//
// # Units
//
// Rates and durations are expressed in Unit values whose lower-case
// plural names ("milliseconds", "seconds") are the serialized form.
package instrument
