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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertx-tracing/pkg/core"
)

type ctxKey string

func namedCtx(name string) context.Context {
	return context.WithValue(context.Background(), ctxKey("name"), name)
}

func TestAttachToRestoreChain(t *testing.T) {
	vc := core.NewContext()
	x := namedCtx("x")
	y := namedCtx("y")

	require.Nil(t, ActiveContext(vc))

	sx := AttachTo(vc, x)
	assert.Equal(t, x, ActiveContext(vc))

	sy := AttachTo(vc, y)
	assert.Equal(t, y, ActiveContext(vc))

	sy.Close()
	assert.Equal(t, x, ActiveContext(vc), "closing the inner scope restores x")

	sx.Close()
	assert.Nil(t, ActiveContext(vc), "closing the outer scope empties the slot")
}

func TestAttachToIdentityIsNoop(t *testing.T) {
	vc := core.NewContext()
	x := namedCtx("x")

	outer := AttachTo(vc, x)
	inner := AttachTo(vc, x)
	assert.Equal(t, x, ActiveContext(vc))

	inner.Close()
	assert.Equal(t, x, ActiveContext(vc), "closing the identity scope must change nothing")

	outer.Close()
	assert.Nil(t, ActiveContext(vc))
}

func TestStorageUsesCurrentDispatch(t *testing.T) {
	vc := core.NewContext()
	x := namedCtx("x")
	s := Storage()

	vc.Dispatch(func() {
		scope := s.Attach(x)
		assert.Equal(t, x, s.Current())
		assert.Equal(t, x, ActiveContext(vc), "attach inside a dispatch lands in the execution context")
		scope.Close()
		assert.Nil(t, s.Current())
	})
	assert.Nil(t, ActiveContext(vc))
}

func TestStorageFallsBackWithoutDispatch(t *testing.T) {
	s := Storage()
	require.Nil(t, core.Current(), "test must run outside any dispatch")
	require.Nil(t, s.Current())

	x := namedCtx("x")
	scope := s.Attach(x)
	assert.Equal(t, x, s.Current())

	scope.Close()
	assert.Nil(t, s.Current())
}

func TestStorageFallbackRestoreChain(t *testing.T) {
	s := Storage()
	x := namedCtx("x")
	y := namedCtx("y")

	sx := s.Attach(x)
	sy := s.Attach(y)
	assert.Equal(t, y, s.Current())
	sy.Close()
	assert.Equal(t, x, s.Current())
	sx.Close()
	assert.Nil(t, s.Current())
}

func TestStorageProviderSingleton(t *testing.T) {
	assert.Equal(t, Storage(), StorageProvider{}.Get())
}
