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

package core

import (
	"sync"

	"github.com/petermattis/goid"
)

// dispatched maps a goroutine id to the context currently dispatching on it.
var dispatched sync.Map

// Dispatch runs fn on the calling goroutine with c bound as the current
// context. Bindings nest: after fn returns, the previous binding (if any) is
// restored.
func (c *Context) Dispatch(fn func()) {
	gid := goid.Get()
	prev, nested := dispatched.Load(gid)
	dispatched.Store(gid, c)
	defer func() {
		if nested {
			dispatched.Store(gid, prev)
		} else {
			dispatched.Delete(gid)
		}
	}()
	fn()
}

// Current returns the context dispatching on the calling goroutine, or nil
// when the goroutine is not running inside a dispatch. Code running outside
// the runtime's managed callbacks sees nil and must fall back accordingly.
func Current() *Context {
	if v, ok := dispatched.Load(goid.Get()); ok {
		return v.(*Context)
	}
	return nil
}
