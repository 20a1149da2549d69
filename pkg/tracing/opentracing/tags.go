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

package opentracing

import (
	ot "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"

	"vertx-tracing/pkg/core/tracing"
	"vertx-tracing/pkg/metrics"
)

// componentName identifies the runtime on every span the bridge creates.
const componentName = "vertx"

// tagMapping translates the modern semantic-convention attribute names the
// runtime's instrumentation emits into the legacy vocabulary OpenTracing
// tracers expect. Matching is exact and case-sensitive; unmapped names pass
// through verbatim.
var tagMapping = map[string]string{
	"server.address":             "peer.address",
	"network.peer.address":       "peer.address",
	"server.port":                "peer.port",
	"network.peer.port":          "peer.port",
	"messaging.destination.name": "message_bus.destination",
	"messaging.system":           "message_bus.system",
	"messaging.operation":        "message_bus.operation",
	"db.namespace":               "db.instance",
	"db.query.text":              "db.statement",
	"db.operation.name":          "db.statement",
	"db.system":                  "db.type",
	"http.request.method":        "http.method",
	"http.response.status_code":  "http.status_code",
	"url.full":                   "http.url",
	"url.scheme":                 "http.scheme",
	"url.path":                   "http.path",
	"url.query":                  "http.query",
}

// applyTags sets every pair the extractor yields for obj onto span, with
// names run through tagMapping.
func applyTags(span ot.Span, obj any, extractor tracing.TagExtractor) {
	if extractor == nil {
		return
	}
	n := extractor.Len(obj)
	for i := 0; i < n; i++ {
		name := extractor.Name(obj, i)
		if mapped, ok := tagMapping[name]; ok {
			name = mapped
		}
		span.SetTag(name, extractor.Value(obj, i))
	}
}

// reportFailure marks span as errored and emits a single structured log
// entry. The error kind stays the fixed "Exception" literal; the failure
// value itself is preserved opaquely under error.object.
func reportFailure(span ot.Span, failure error) {
	ext.Error.Set(span, true)
	span.LogFields(
		otlog.String("event", "error"),
		otlog.String("message", failure.Error()),
		otlog.String("error.kind", "Exception"),
		otlog.Object("error.object", failure),
	)
	metrics.FailuresRecorded.Inc()
}
