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

// Package opentelemetry bridges the runtime onto OpenTelemetry: a context
// storage implementation that keeps the "current" telemetry context in a
// reserved execution-context slot, and a span lifecycle bridge over a
// TracerProvider. Sampling, export and span data all belong to the injected
// provider.
package opentelemetry

import (
	"context"
	"sync/atomic"

	"vertx-tracing/pkg/core"
	"vertx-tracing/pkg/metrics"
)

// activeContext is the one reserved slot holding a context's active telemetry
// context.
var activeContext = core.RegisterLocal("opentelemetry.context")

// Scope undoes exactly the attach that produced it. Scopes must be closed in
// reverse order of attachment within one execution context; enforcing that
// order is the caller's contract, not the storage's.
type Scope interface {
	Close()
}

// ContextStorage is the propagation API's current-context contract.
type ContextStorage interface {
	// Attach makes ctx current and returns the scope restoring the previous
	// value on Close.
	Attach(ctx context.Context) Scope
	// Current returns the attached context, nil if none.
	Current() context.Context
}

// StorageProvider implements the propagation API's service-provider contract.
type StorageProvider struct{}

// Get returns the process-wide storage singleton.
func (StorageProvider) Get() ContextStorage { return Storage() }

// Storage returns the singleton context storage backed by the runtime's
// execution contexts, with a process-wide fallback for goroutines running
// outside any dispatch.
func Storage() ContextStorage { return vertxStorage{} }

type vertxStorage struct{}

func (vertxStorage) Current() context.Context {
	vc := core.Current()
	if vc == nil {
		return defaultStore.current()
	}
	ctx, _ := vc.GetLocal(activeContext).(context.Context)
	return ctx
}

func (vertxStorage) Attach(toAttach context.Context) Scope {
	vc := core.Current()
	if vc == nil {
		return defaultStore.attach(toAttach)
	}
	return AttachTo(vc, toAttach)
}

// AttachTo attaches toAttach as the active telemetry context of vc. Attaching
// the value that is already current returns a no-op scope, so closing it
// cannot perturb the restore chain.
func AttachTo(vc *core.Context, toAttach context.Context) Scope {
	prev, _ := vc.GetLocal(activeContext).(context.Context)
	if prev == toAttach {
		return noopScope{}
	}
	vc.PutLocal(activeContext, core.AccessModeConcurrent, toAttach)
	metrics.ScopesAttached.WithLabelValues("context").Inc()
	if prev == nil {
		return scopeFunc(func() {
			vc.RemoveLocal(activeContext, core.AccessModeConcurrent)
		})
	}
	return scopeFunc(func() {
		vc.PutLocal(activeContext, core.AccessModeConcurrent, prev)
	})
}

// ActiveContext returns the telemetry context attached to vc, nil if none.
func ActiveContext(vc *core.Context) context.Context {
	ctx, _ := vc.GetLocal(activeContext).(context.Context)
	return ctx
}

type scopeFunc func()

func (f scopeFunc) Close() { f() }

type noopScope struct{}

func (noopScope) Close() {}

// defaultStore is the process-wide fallback used when no execution context is
// active on the calling goroutine.
var defaultStore fallbackStorage

type fallbackStorage struct {
	cell atomic.Pointer[context.Context]
}

func (s *fallbackStorage) current() context.Context {
	if p := s.cell.Load(); p != nil {
		return *p
	}
	return nil
}

func (s *fallbackStorage) attach(toAttach context.Context) Scope {
	prev := s.current()
	if prev == toAttach {
		return noopScope{}
	}
	s.set(toAttach)
	metrics.ScopesAttached.WithLabelValues("default").Inc()
	return scopeFunc(func() { s.set(prev) })
}

func (s *fallbackStorage) set(ctx context.Context) {
	if ctx == nil {
		s.cell.Store(nil)
		return
	}
	s.cell.Store(&ctx)
}
