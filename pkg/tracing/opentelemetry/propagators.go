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

package opentelemetry

import (
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/contrib/propagators/ot"
	"go.opentelemetry.io/otel/propagation"

	"vertx-tracing/pkg/errors"
)

// NewPropagator composes the wire propagators named in names. Supported:
// tracecontext, baggage, b3, ot. An empty list selects tracecontext+baggage.
func NewPropagator(names []string) (propagation.TextMapPropagator, error) {
	if len(names) == 0 {
		names = []string{"tracecontext", "baggage"}
	}
	props := make([]propagation.TextMapPropagator, 0, len(names))
	for _, name := range names {
		switch name {
		case "tracecontext":
			props = append(props, propagation.TraceContext{})
		case "baggage":
			props = append(props, propagation.Baggage{})
		case "b3":
			props = append(props, b3.New())
		case "ot":
			props = append(props, ot.OT{})
		default:
			return nil, errors.Wrapf(errors.ErrInvalidArg, "unknown propagator %q", name)
		}
	}
	return propagation.NewCompositeTextMapPropagator(props...), nil
}
