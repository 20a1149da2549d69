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
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"vertx-tracing/pkg/errors"
	"vertx-tracing/pkg/log"
)

// NewFromEnv is the convenience constructor: it builds a Jaeger tracer from
// process environment variables (JAEGER_SERVICE_NAME etc.) using the client
// library's own configuration loader, and returns a bridge that owns it. No
// parsing happens here.
func NewFromEnv() (*Tracer, error) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "load jaeger configuration from environment")
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "build jaeger tracer")
	}
	log.Default().Debug("jaeger tracer built from environment", "service", cfg.ServiceName)
	return &Tracer{tracer: tracer, closer: closer, closeTracer: true}, nil
}
