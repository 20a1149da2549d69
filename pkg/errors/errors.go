// Package errors provides shared error helpers and sentinels; it depends on
// nothing else in the module.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across packages.
var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidArg = errors.New("invalid argument")

	// ErrUnsupportedCarrierOp is raised (as a panic) when a read-only carrier
	// view is written to or a write-only carrier view is iterated. Either one
	// is a bridge wiring bug, never a runtime condition, so it is deliberately
	// loud.
	ErrUnsupportedCarrierOp = errors.New("unsupported carrier operation")

	// ErrNoTracer is returned when a bridge is constructed without a tracer.
	ErrNoTracer = errors.New("no tracer supplied")
)

// Wrap annotates err with msg, returning nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }
