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

// Package core holds the runtime-side abstractions the tracing bridges are
// written against: the per-request execution context with its reserved local
// slots, and the goroutine dispatch binding that makes a context "current".
package core

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// AccessMode declares how a context-local slot is shared.
type AccessMode int

const (
	// AccessModeLocal marks slots only touched from the context's own dispatch.
	AccessModeLocal AccessMode = iota
	// AccessModeConcurrent marks slots that may be read and written from
	// several worker goroutines sharing one logical context.
	AccessModeConcurrent
)

// LocalKey identifies one reserved context-local slot. Keys index a fixed cell
// table inside every Context, so they must be registered during package
// initialization, before any context exists.
type LocalKey struct {
	name  string
	index int
}

func (k *LocalKey) String() string { return k.name }

var (
	localMu   sync.Mutex
	localKeys []*LocalKey
)

// RegisterLocal reserves a context-local slot under the given name.
// Call it from a package init function only.
func RegisterLocal(name string) *LocalKey {
	localMu.Lock()
	defer localMu.Unlock()
	k := &LocalKey{name: name, index: len(localKeys)}
	localKeys = append(localKeys, k)
	return k
}

// Context is one logical execution context: created per request or per task by
// the runtime, handed to every callback belonging to that request. The tracing
// bridges never create or destroy contexts themselves; they only read and
// write their reserved slots.
type Context struct {
	id     string
	locals []atomic.Pointer[any]
}

// NewContext allocates an execution context with cells for every registered
// local key.
func NewContext() *Context {
	localMu.Lock()
	n := len(localKeys)
	localMu.Unlock()
	return &Context{
		id:     uuid.NewString(),
		locals: make([]atomic.Pointer[any], n),
	}
}

// ID returns the context's identifier, used for correlation in logs.
func (c *Context) ID() string { return c.id }

// GetLocal returns the value stored under k, nil if the slot is unset.
func (c *Context) GetLocal(k *LocalKey) any {
	if k.index >= len(c.locals) {
		return nil
	}
	p := c.locals[k.index].Load()
	if p == nil {
		return nil
	}
	return *p
}

// PutLocal stores v under k. The slot is a single atomically-swappable cell:
// last write wins, and AccessModeConcurrent writes are safe against readers on
// other goroutines. AccessModeLocal is accepted as a caller declaration that
// the slot is dispatch-confined; this implementation keeps the atomic cell
// either way.
func (c *Context) PutLocal(k *LocalKey, _ AccessMode, v any) {
	if k.index >= len(c.locals) {
		panic("core: local key registered after context creation: " + k.name)
	}
	c.locals[k.index].Store(&v)
}

// RemoveLocal clears the slot under k.
func (c *Context) RemoveLocal(k *LocalKey, _ AccessMode) {
	if k.index >= len(c.locals) {
		return
	}
	c.locals[k.index].Store(nil)
}
