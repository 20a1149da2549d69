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

	"vertx-tracing/pkg/errors"
)

// readCarrier is the read-only TextMapCarrier view over inbound headers.
// Propagators look values up by key, so the ordered pair sequence is
// materialized once; the first value wins for repeated keys, matching HTTP
// header lookup. Writing panics.
type readCarrier struct {
	keys []string
	vals map[string]string
}

func newReadCarrier(headers iter.Seq2[string, string]) *readCarrier {
	c := &readCarrier{vals: make(map[string]string)}
	for k, v := range headers {
		if _, seen := c.vals[k]; !seen {
			c.keys = append(c.keys, k)
			c.vals[k] = v
		}
	}
	return c
}

func (c *readCarrier) Get(key string) string { return c.vals[key] }

func (c *readCarrier) Keys() []string { return c.keys }

func (c *readCarrier) Set(key, value string) {
	panic(errors.ErrUnsupportedCarrierOp)
}

// writeCarrier is the write-only TextMapCarrier view over an outbound header
// consumer. Reading panics.
type writeCarrier func(key, value string)

func (w writeCarrier) Set(key, value string) { w(key, value) }

func (w writeCarrier) Get(string) string {
	panic(errors.ErrUnsupportedCarrierOp)
}

func (w writeCarrier) Keys() []string {
	panic(errors.ErrUnsupportedCarrierOp)
}
