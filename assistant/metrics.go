// Copyright 2025 FinBot
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

package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics
var (
	promRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finbot_requests_total",
			Help: "Total number of chat requests processed",
		},
		[]string{"status"},
	)
	promRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "finbot_request_duration_milliseconds",
			Help:    "End-to-end chat request duration in milliseconds",
			Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 30000},
		},
	)
	promRoundDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "finbot_llm_round_duration_milliseconds",
			Help:    "Single LLM round-trip duration in milliseconds",
			Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000},
		},
	)
	promLLMCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finbot_llm_calls_total",
			Help: "Total number of LLM API calls",
		},
		[]string{"status"},
	)
	promToolDispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finbot_tool_dispatches_total",
			Help: "Total number of tool dispatches, by tool name",
		},
		[]string{"tool"},
	)
)

func init() {
	// Register Prometheus metrics
	prometheus.MustRegister(promRequestsTotal)
	prometheus.MustRegister(promRequestDuration)
	prometheus.MustRegister(promRoundDuration)
	prometheus.MustRegister(promLLMCalls)
	prometheus.MustRegister(promToolDispatches)
}
