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

package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	if Wrap(nil, "msg") != nil {
		t.Error("Wrap(nil, msg) should return nil")
	}
	err := Wrap(ErrNotFound, "lookup failed")
	if err == nil || !errors.Is(err, ErrNotFound) {
		t.Errorf("wrapped error should match the sentinel: %v", err)
	}
	if err.Error() != "lookup failed: not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "msg %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	err := Wrapf(ErrInvalidArg, "field %q", "name")
	if !errors.Is(err, ErrInvalidArg) {
		t.Errorf("wrapped error should match the sentinel: %v", err)
	}
	if err.Error() != `field "name": invalid argument` {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	if !Is(Wrap(ErrUnsupportedCarrierOp, "iterate"), ErrUnsupportedCarrierOp) {
		t.Error("Is should unwrap")
	}
}
