package codec

import (
	"os"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// resolved is the published backend handle. It is written at most once per
// resolution and read lock-free on every conversion afterwards.
type resolved struct {
	backend Backend
	codec   Codec
}

var (
	active       atomic.Pointer[resolved]
	resolveGroup singleflight.Group
)

// Active returns the codec for the currently selected backend, resolving it
// on first use.
func Active() Codec { return resolve().codec }

// ActiveBackend reports which backend backs Active.
func ActiveBackend() Backend { return resolve().backend }

func resolve() *resolved {
	if r := active.Load(); r != nil {
		return r
	}
	// Concurrent first callers share a single resolution and observe the
	// same eventual backend.
	v, _, _ := resolveGroup.Do("resolve", func() (any, error) {
		if r := active.Load(); r != nil {
			return r, nil
		}
		r := autodetect()
		active.Store(r)
		return r, nil
	})
	return v.(*resolved)
}

// autodetect picks the best available backend, honoring the BIGBUF_BACKEND
// override. Auto-detection never fails: anything short of a usable word
// engine falls back to the portable codec.
func autodetect() *resolved {
	if s := os.Getenv(BackendEnv); s != "" {
		if b, ok := ParseBackend(s); ok && Available(b) {
			return newResolved(b)
		}
		// Unusable override - fall through to auto-detection.
	}
	if hasWordEngine {
		return newResolved(Accelerated)
	}
	return newResolved(Portable)
}

func newResolved(b Backend) *resolved {
	return &resolved{backend: b, codec: codecFor(b)}
}

// Force pins the given backend, replacing any earlier resolution. The caller
// must check Available first; forcing an unavailable backend is a
// programming error.
func Force(b Backend) {
	active.Store(newResolved(b))
}

// Reset drops the resolved handle so the next access re-resolves. Intended
// for tests.
func Reset() {
	active.Store(nil)
}
