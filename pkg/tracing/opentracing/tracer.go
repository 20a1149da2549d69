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

// Package opentracing bridges the runtime tracing SPI onto an OpenTracing
// tracer. The bridge is purely translational: span creation, sampling and
// export all belong to the injected tracer. Parent/child and client/server
// relationships are inferred from the tracing policy plus the active-span
// slot the bridge keeps in the execution context.
package opentracing

import (
	"io"
	"iter"

	ot "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"vertx-tracing/pkg/core"
	"vertx-tracing/pkg/core/tracing"
	"vertx-tracing/pkg/log"
	"vertx-tracing/pkg/metrics"
)

// activeSpan is the one reserved slot holding the inbound span of a context.
var activeSpan = core.RegisterLocal("opentracing.span")

// Tracer implements tracing.Tracer over an OpenTracing tracer.
type Tracer struct {
	tracer      ot.Tracer
	closer      io.Closer
	closeTracer bool
}

var _ tracing.Tracer[ot.Span, ot.Span] = (*Tracer)(nil)

// New wraps an externally built tracer. When closeTracer is true and the
// tracer exposes io.Closer, Close will shut it down; otherwise ownership
// stays with the caller.
func New(tracer ot.Tracer, closeTracer bool) *Tracer {
	t := &Tracer{tracer: tracer, closeTracer: closeTracer}
	if c, ok := tracer.(io.Closer); ok {
		t.closer = c
	}
	return t
}

// ReceiveRequest handles the inbound-request hook. Unless the policy is
// ignore, it extracts a parent span context from the headers; a parent, or an
// always policy, starts a server/consumer span which is stored as the
// context's active span and returned. Any externally tracked "current" span
// of the tracer itself is never consulted: activity is managed through the
// execution context alone.
func (t *Tracer) ReceiveRequest(c *core.Context, kind tracing.SpanKind, policy tracing.TracingPolicy, request any, operation string, headers iter.Seq2[string, string], extractor tracing.TagExtractor) ot.Span {
	if policy == tracing.PolicyIgnore {
		return nil
	}
	var parent ot.SpanContext
	if headers != nil {
		sc, err := t.tracer.Extract(ot.HTTPHeaders, headerReader(headers))
		switch {
		case err == nil:
			parent = sc
		case err == ot.ErrSpanContextNotFound:
			// normal absence, not an error
		default:
			log.Default().Debug("parent span context extraction failed", "context", c.ID(), "err", err)
		}
	}
	if parent == nil && policy != tracing.PolicyAlways {
		return nil
	}
	opts := []ot.StartSpanOption{ot.Tags{
		string(ext.SpanKind):  serverKind(kind),
		string(ext.Component): componentName,
	}}
	if parent != nil {
		opts = append(opts, ot.ChildOf(parent))
	}
	span := t.tracer.StartSpan(operation, opts...)
	applyTags(span, request, extractor)
	c.PutLocal(activeSpan, core.AccessModeConcurrent, span)
	metrics.SpansStarted.WithLabelValues("inbound").Inc()
	return span
}

// SendResponse handles the inbound-response hook: clears the active-span
// slot, records the failure and response tags when present, and finishes the
// span exactly once. A nil span (no span was started) is a no-op.
func (t *Tracer) SendResponse(c *core.Context, response any, span ot.Span, failure error, extractor tracing.TagExtractor) {
	if span == nil {
		return
	}
	c.RemoveLocal(activeSpan, core.AccessModeConcurrent)
	if failure != nil {
		reportFailure(span, failure)
	}
	if response != nil {
		applyTags(span, response, extractor)
	}
	span.Finish()
	metrics.SpansFinished.WithLabelValues("inbound").Inc()
}

// SendRequest handles the outbound-request hook. A client/producer span is
// started as a child of the context's active span (root if none under an
// always policy), and its propagation context is injected into the headers
// consumer when one is supplied. Outbound spans are transient: the
// active-span slot is never mutated here.
func (t *Tracer) SendRequest(c *core.Context, kind tracing.SpanKind, policy tracing.TracingPolicy, request any, operation string, headers func(key, value string), extractor tracing.TagExtractor) ot.Span {
	if policy == tracing.PolicyIgnore {
		return nil
	}
	active, _ := c.GetLocal(activeSpan).(ot.Span)
	if active == nil && policy != tracing.PolicyAlways {
		return nil
	}
	opts := []ot.StartSpanOption{ot.Tags{
		string(ext.SpanKind):  clientKind(kind),
		string(ext.Component): componentName,
	}}
	if active != nil {
		opts = append(opts, ot.ChildOf(active.Context()))
	}
	span := t.tracer.StartSpan(operation, opts...)
	applyTags(span, request, extractor)
	if headers != nil {
		if err := t.tracer.Inject(span.Context(), ot.HTTPHeaders, headerWriter(headers)); err != nil {
			log.Default().Debug("span context injection failed", "context", c.ID(), "err", err)
		}
	}
	metrics.SpansStarted.WithLabelValues("outbound").Inc()
	return span
}

// ReceiveResponse handles the outbound-response hook; same contract as
// SendResponse except the active-span slot is left alone, since outbound
// spans were never stored there.
func (t *Tracer) ReceiveResponse(c *core.Context, response any, span ot.Span, failure error, extractor tracing.TagExtractor) {
	if span == nil {
		return
	}
	if failure != nil {
		reportFailure(span, failure)
	}
	if response != nil {
		applyTags(span, response, extractor)
	}
	span.Finish()
	metrics.SpansFinished.WithLabelValues("outbound").Inc()
}

// Close shuts the tracer down when this bridge owns it; otherwise a no-op.
func (t *Tracer) Close() error {
	if t.closeTracer && t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

// ActiveSpan returns the span stored by ReceiveRequest for c, nil if none.
func ActiveSpan(c *core.Context) ot.Span {
	span, _ := c.GetLocal(activeSpan).(ot.Span)
	return span
}

func serverKind(kind tracing.SpanKind) string {
	if kind == tracing.SpanKindRPC {
		return "server"
	}
	return "consumer"
}

func clientKind(kind tracing.SpanKind) string {
	if kind == tracing.SpanKindRPC {
		return "client"
	}
	return "producer"
}
