package bigbuf

import (
	"fmt"

	"github.com/vekexasia/bigint-swissknife-sub000/internal/codec"
)

// CurrentBackendName reports which backend backs the package-level
// functions: "accelerated" or "portable". Calling it resolves the backend if
// that has not happened yet.
func CurrentBackendName() string {
	return codec.ActiveBackend().String()
}

// SelectBackend forces a specific backend ("accelerated" or "portable") for
// the package-level functions, replacing any earlier resolution.
//
// Unlike implicit resolution, which falls back silently, an explicit request
// that cannot be satisfied is reported: the error wraps
// ErrUnavailableBackend when the backend exists but is unsupported on this
// platform, and ErrInvalidArgument for unknown names.
func SelectBackend(name string) error {
	b, ok := codec.ParseBackend(name)
	if !ok {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidArgument, name)
	}
	if !codec.Available(b) {
		return &UnavailableBackendError{Name: name}
	}
	codec.Force(b)
	return nil
}
