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
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"

	"vertx-tracing/pkg/errors"
)

func orderedPairs(pairs [][2]string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range pairs {
			if !yield(p[0], p[1]) {
				return
			}
		}
	}
}

func TestReadCarrier(t *testing.T) {
	c := newReadCarrier(orderedPairs([][2]string{
		{"traceparent", sampleTraceparent},
		{"accept", "text/html"},
		{"accept", "ignored"}, // first value wins on repeats
	}))
	assert.Equal(t, []string{"traceparent", "accept"}, c.Keys())
	assert.Equal(t, sampleTraceparent, c.Get("traceparent"))
	assert.Equal(t, "text/html", c.Get("accept"))
	assert.Equal(t, "", c.Get("missing"))
}

func TestReadCarrierWriteFailsLoud(t *testing.T) {
	c := newReadCarrier(orderedPairs(nil))
	assert.PanicsWithValue(t, errors.ErrUnsupportedCarrierOp, func() {
		c.Set("k", "v")
	})
}

func TestWriteCarrier(t *testing.T) {
	got := map[string]string{}
	w := writeCarrier(func(k, v string) { got[k] = v })
	w.Set("traceparent", sampleTraceparent)
	assert.Equal(t, map[string]string{"traceparent": sampleTraceparent}, got)

	assert.PanicsWithValue(t, errors.ErrUnsupportedCarrierOp, func() { w.Get("k") })
	assert.PanicsWithValue(t, errors.ErrUnsupportedCarrierOp, func() { w.Keys() })
}
