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
	"context"
	"iter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"vertx-tracing/pkg/core"
	"vertx-tracing/pkg/core/tracing"
	"vertx-tracing/pkg/metrics"
)

// instrumentationName is the scope name the bridge's spans are created under.
const instrumentationName = "vertx-tracing"

// Tracer implements tracing.Tracer over an OpenTelemetry TracerProvider.
// Attribute names pass through verbatim: the runtime already emits the
// semantic conventions OpenTelemetry expects, so no normalization applies on
// this side.
type Tracer struct {
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator

	// shutdown is set when the bridge built and therefore owns the provider.
	shutdown func(context.Context) error
}

var _ tracing.Tracer[trace.Span, trace.Span] = (*Tracer)(nil)

// New wraps an externally built provider. A nil propagator selects the global
// one.
func New(tp trace.TracerProvider, propagator propagation.TextMapPropagator) *Tracer {
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}
	return &Tracer{tracer: tp.Tracer(instrumentationName), propagator: propagator}
}

// ReceiveRequest extracts a remote parent from the headers and, when one is
// present or the policy is always, starts a server/consumer span. The
// telemetry context carrying the span is stored as the context's active
// context and the span returned.
func (t *Tracer) ReceiveRequest(c *core.Context, kind tracing.SpanKind, policy tracing.TracingPolicy, request any, operation string, headers iter.Seq2[string, string], extractor tracing.TagExtractor) trace.Span {
	if policy == tracing.PolicyIgnore {
		return nil
	}
	parent := context.Background()
	if headers != nil {
		parent = t.propagator.Extract(parent, newReadCarrier(headers))
	}
	if !trace.SpanContextFromContext(parent).IsValid() && policy != tracing.PolicyAlways {
		return nil
	}
	ctx, span := t.tracer.Start(parent, operation,
		trace.WithSpanKind(serverSpanKind(kind)),
		trace.WithAttributes(extractAttributes(request, extractor)...),
	)
	c.PutLocal(activeContext, core.AccessModeConcurrent, ctx)
	metrics.SpansStarted.WithLabelValues("inbound").Inc()
	return span
}

// SendResponse clears the active-context slot, records the failure and
// response attributes when present, and ends the span exactly once. Nil span
// is a no-op.
func (t *Tracer) SendResponse(c *core.Context, response any, span trace.Span, failure error, extractor tracing.TagExtractor) {
	if span == nil {
		return
	}
	c.RemoveLocal(activeContext, core.AccessModeConcurrent)
	if failure != nil {
		reportError(span, failure)
	}
	if response != nil {
		span.SetAttributes(extractAttributes(response, extractor)...)
	}
	span.End()
	metrics.SpansFinished.WithLabelValues("inbound").Inc()
}

// SendRequest starts a client/producer span under the context's active
// telemetry context (root if none under an always policy) and injects its
// propagation context into the headers consumer when supplied. The
// active-context slot is never mutated here.
func (t *Tracer) SendRequest(c *core.Context, kind tracing.SpanKind, policy tracing.TracingPolicy, request any, operation string, headers func(key, value string), extractor tracing.TagExtractor) trace.Span {
	if policy == tracing.PolicyIgnore {
		return nil
	}
	parent, _ := c.GetLocal(activeContext).(context.Context)
	if parent == nil {
		if policy != tracing.PolicyAlways {
			return nil
		}
		parent = context.Background()
	}
	ctx, span := t.tracer.Start(parent, operation,
		trace.WithSpanKind(clientSpanKind(kind)),
		trace.WithAttributes(extractAttributes(request, extractor)...),
	)
	if headers != nil {
		t.propagator.Inject(ctx, writeCarrier(headers))
	}
	metrics.SpansStarted.WithLabelValues("outbound").Inc()
	return span
}

// ReceiveResponse ends an outbound span; same contract as SendResponse minus
// the slot removal.
func (t *Tracer) ReceiveResponse(c *core.Context, response any, span trace.Span, failure error, extractor tracing.TagExtractor) {
	if span == nil {
		return
	}
	if failure != nil {
		reportError(span, failure)
	}
	if response != nil {
		span.SetAttributes(extractAttributes(response, extractor)...)
	}
	span.End()
	metrics.SpansFinished.WithLabelValues("outbound").Inc()
}

// Close shuts the provider down when this bridge owns it; otherwise a no-op.
func (t *Tracer) Close() error {
	if t.shutdown != nil {
		return t.shutdown(context.Background())
	}
	return nil
}

func reportError(span trace.Span, failure error) {
	span.RecordError(failure)
	span.SetStatus(codes.Error, failure.Error())
	metrics.FailuresRecorded.Inc()
}

func extractAttributes(obj any, extractor tracing.TagExtractor) []attribute.KeyValue {
	if extractor == nil {
		return nil
	}
	n := extractor.Len(obj)
	attrs := make([]attribute.KeyValue, 0, n)
	for i := 0; i < n; i++ {
		attrs = append(attrs, attribute.String(extractor.Name(obj, i), extractor.Value(obj, i)))
	}
	return attrs
}

func serverSpanKind(kind tracing.SpanKind) trace.SpanKind {
	if kind == tracing.SpanKindRPC {
		return trace.SpanKindServer
	}
	return trace.SpanKindConsumer
}

func clientSpanKind(kind tracing.SpanKind) trace.SpanKind {
	if kind == tracing.SpanKindRPC {
		return trace.SpanKindClient
	}
	return trace.SpanKindProducer
}
