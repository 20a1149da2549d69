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

// Package tracing defines the runtime's tracing extension point. A Tracer
// implementation receives the four request/response lifecycle hooks and is
// free to map them onto any external tracing system; the runtime itself knows
// nothing about spans beyond the opaque payloads it threads back into the
// response hooks.
package tracing

import (
	"iter"

	"vertx-tracing/pkg/core"
)

// SpanKind distinguishes request/reply exchanges from one-way messaging.
type SpanKind int

const (
	// SpanKindRPC is a request that expects a response (HTTP, RPC).
	SpanKindRPC SpanKind = iota
	// SpanKindMessaging is a one-way message exchange (queues, event bus).
	SpanKindMessaging
)

// TracingPolicy controls whether a lifecycle hook produces a span.
type TracingPolicy int

const (
	// PolicyPropagate traces only when a trace is already in progress: an
	// extractable parent on inbound calls, an active span on outbound calls.
	// It is the zero value and the default.
	PolicyPropagate TracingPolicy = iota
	// PolicyIgnore never traces.
	PolicyIgnore
	// PolicyAlways traces unconditionally, starting a new root if needed.
	PolicyAlways
)

// TagExtractor yields the ordered (name, value) tag pairs describing one
// request or response payload. The bridge knows nothing about payload types;
// callers supply an extractor per payload shape.
type TagExtractor interface {
	Len(obj any) int
	Name(obj any, idx int) string
	Value(obj any, idx int) string
}

// Tracer is the runtime tracing SPI. I is the payload returned by
// ReceiveRequest and threaded into SendResponse; O likewise pairs SendRequest
// with ReceiveResponse. Implementations return the zero value to signal that
// no span was started, and every hook runs synchronously on the runtime's
// dispatching goroutine.
//
// Inbound headers are an opaque ordered sequence of pairs and are read-only;
// the outbound headers consumer is write-only and exists solely to receive
// injected propagation pairs.
type Tracer[I, O any] interface {
	ReceiveRequest(c *core.Context, kind SpanKind, policy TracingPolicy, request any, operation string, headers iter.Seq2[string, string], extractor TagExtractor) I

	SendResponse(c *core.Context, response any, payload I, failure error, extractor TagExtractor)

	SendRequest(c *core.Context, kind SpanKind, policy TracingPolicy, request any, operation string, headers func(key, value string), extractor TagExtractor) O

	ReceiveResponse(c *core.Context, response any, payload O, failure error, extractor TagExtractor)

	// Close releases the external tracer if this instance owns it.
	Close() error
}
