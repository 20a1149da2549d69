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
	"testing"
)

var testKey = RegisterLocal("test.slot")

func TestContextLocals(t *testing.T) {
	c := NewContext()
	if c.ID() == "" {
		t.Error("context should have an id")
	}
	if got := c.GetLocal(testKey); got != nil {
		t.Errorf("unset slot should be nil, got %v", got)
	}
	c.PutLocal(testKey, AccessModeConcurrent, "a")
	if got := c.GetLocal(testKey); got != "a" {
		t.Errorf("GetLocal = %v, want a", got)
	}
	// last write wins
	c.PutLocal(testKey, AccessModeConcurrent, "b")
	if got := c.GetLocal(testKey); got != "b" {
		t.Errorf("GetLocal = %v, want b", got)
	}
	c.RemoveLocal(testKey, AccessModeConcurrent)
	if got := c.GetLocal(testKey); got != nil {
		t.Errorf("removed slot should be nil, got %v", got)
	}
}

func TestContextLocalsIndependent(t *testing.T) {
	c1 := NewContext()
	c2 := NewContext()
	c1.PutLocal(testKey, AccessModeLocal, 1)
	if got := c2.GetLocal(testKey); got != nil {
		t.Errorf("slot of another context should be untouched, got %v", got)
	}
}

func TestContextLocalsConcurrent(t *testing.T) {
	c := NewContext()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.PutLocal(testKey, AccessModeConcurrent, n)
				_ = c.GetLocal(testKey)
				c.RemoveLocal(testKey, AccessModeConcurrent)
			}
		}(i)
	}
	wg.Wait()
}

func TestPutLocalLateKeyPanics(t *testing.T) {
	c := NewContext()
	late := RegisterLocal("test.late")
	defer func() {
		if recover() == nil {
			t.Error("PutLocal with a key registered after context creation should panic")
		}
	}()
	c.PutLocal(late, AccessModeConcurrent, "x")
}
