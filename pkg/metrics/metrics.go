// Copyright 2026 the vertx-tracing authors
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

package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// DefaultRegistry collects the bridge metrics; embedders may expose it on
// their own metrics endpoint.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(
		SpansStarted, SpansFinished, FailuresRecorded, ScopesAttached,
	)
}

// SpansStarted counts spans started by the lifecycle bridges, by direction.
var SpansStarted = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vertx_tracing_spans_started_total",
		Help: "Spans started by the lifecycle bridges",
	},
	[]string{"direction"}, // inbound | outbound
)

// SpansFinished counts spans finished by the lifecycle bridges, by direction.
var SpansFinished = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vertx_tracing_spans_finished_total",
		Help: "Spans finished by the lifecycle bridges",
	},
	[]string{"direction"}, // inbound | outbound
)

// FailuresRecorded counts request/response failures recorded onto spans.
var FailuresRecorded = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "vertx_tracing_failures_recorded_total",
		Help: "Failures recorded onto spans",
	},
)

// ScopesAttached counts context-storage attaches, by backing store.
var ScopesAttached = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vertx_tracing_scopes_attached_total",
		Help: "Context storage attaches",
	},
	[]string{"storage"}, // context | default
)

// WritePrometheus writes the registry in Prometheus text format.
func WritePrometheus(w io.Writer) error {
	mfs, err := DefaultRegistry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
