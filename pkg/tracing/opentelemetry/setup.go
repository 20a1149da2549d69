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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"vertx-tracing/pkg/config"
	"vertx-tracing/pkg/errors"
	"vertx-tracing/pkg/log"
)

// Setup is the convenience constructor: it builds an OTLP/http-backed tracer
// provider from cfg, installs the provider and the configured propagator
// globally, and returns a bridge that owns the provider (Close shuts it
// down).
func Setup(ctx context.Context, cfg config.Tracing) (*Tracer, error) {
	opts := []otlptracehttp.Option{}
	if cfg.ExportEndpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.ExportEndpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, errors.Wrap(err, "create otlp exporter")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create resource")
	}

	sampler := sdktrace.AlwaysSample()
	if cfg.SampleRatio > 0 && cfg.SampleRatio < 1 {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	propagator, err := NewPropagator(cfg.Propagators)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagator)
	log.Default().Debug("otel tracer provider installed",
		"service", cfg.ServiceName, "endpoint", cfg.ExportEndpoint)

	t := New(tp, propagator)
	t.shutdown = tp.Shutdown
	return t, nil
}
