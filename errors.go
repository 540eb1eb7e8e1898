package bigbuf

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidInput is returned when a decode or in-place encode is handed
	// a nil byte sequence or a nil integer. Malformed input is rejected, not
	// coerced into a silently wrong value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidArgument is returned for malformed widths: negative for the
	// codec surface, non-positive for the bounds surface.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is the sentinel wrapped by RangeError.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnavailableBackend is the sentinel wrapped by
	// UnavailableBackendError.
	ErrUnavailableBackend = errors.New("backend unavailable")
)

// RangeError reports a value outside the representable range for the
// requested width and signedness. It carries the offending value and the
// computed bounds for diagnostics.
type RangeError struct {
	Value *big.Int
	Min   *big.Int
	Max   *big.Int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s out of range [%s, %s]", e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// UnavailableBackendError reports an explicit backend selection that cannot
// be satisfied in the current environment. Implicit resolution never
// produces it: auto-detection falls back to the portable backend silently.
type UnavailableBackendError struct {
	Name string
}

func (e *UnavailableBackendError) Error() string {
	return fmt.Sprintf("backend %q unavailable on this platform", e.Name)
}

func (e *UnavailableBackendError) Unwrap() error { return ErrUnavailableBackend }
