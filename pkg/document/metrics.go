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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Document generation metrics
	documentGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pulse_document_generation_duration_seconds",
			Help:    "Time taken to generate a complete instrument document",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	documentGenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_document_generation_total",
			Help: "Total number of document generation attempts",
		},
		[]string{"status"}, // success or error
	)

	documentInstrumentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_document_instrument_failures_total",
			Help: "Instrument records dropped from a document after a serialization failure",
		},
		[]string{"kind"}, // counter, gauge, histogram, meter, timer
	)

	documentGaugeReadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulse_document_gauge_read_failures_total",
			Help: "Gauge reads that failed and were serialized as error strings",
		},
	)

	documentRuntimeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulse_document_runtime_failures_total",
			Help: "Runtime snapshot collections that failed and were omitted from a document",
		},
	)

	documentInstrumentCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pulse_document_instruments",
			Help: "Number of instrument records in the last generated document",
		},
	)
)
