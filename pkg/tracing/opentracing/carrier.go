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
	"iter"

	"vertx-tracing/pkg/errors"
)

// headerReader is the read-only carrier view over inbound headers, used for
// extraction. Writing through it panics: the view exists only to be iterated.
type headerReader iter.Seq2[string, string]

func (r headerReader) ForeachKey(handler func(key, val string) error) error {
	for k, v := range iter.Seq2[string, string](r) {
		if err := handler(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (r headerReader) Set(key, val string) {
	panic(errors.ErrUnsupportedCarrierOp)
}

// headerWriter is the write-only carrier view over an outbound header
// consumer, used for injection. Iterating it panics: the view exists only to
// receive pairs.
type headerWriter func(key, value string)

func (w headerWriter) Set(key, val string) { w(key, val) }

func (w headerWriter) ForeachKey(func(key, val string) error) error {
	panic(errors.ErrUnsupportedCarrierOp)
}
