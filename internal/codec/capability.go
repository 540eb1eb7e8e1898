package codec

import "strings"

// Backend identifies a codec implementation.
type Backend uint8

const (
	// Portable is the pure math/big implementation, available everywhere.
	Portable Backend = iota
	// Accelerated is the word-engine implementation. It requires 64-bit
	// big.Int limbs and cheap unaligned 8-byte access, so it only exists on
	// a fixed set of architectures.
	Accelerated
)

// String returns the stable name of a backend.
func (b Backend) String() string {
	switch b {
	case Portable:
		return "portable"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portable":
		return Portable, true
	case "accelerated":
		return Accelerated, true
	default:
		return Portable, false
	}
}

// BackendEnv is the environment variable consulted during auto-detection.
// Setting it to a backend name pins that backend for the process, provided
// it is available; unusable values fall through to auto-detection.
const BackendEnv = "BIGBUF_BACKEND"

// hasWordEngine is set by the per-architecture init below. No mutex needed:
// Go guarantees init() runs before any other code.
var hasWordEngine bool

// Available reports whether a backend can be used in this environment.
func Available(b Backend) bool {
	switch b {
	case Portable:
		return true
	case Accelerated:
		return hasWordEngine
	default:
		return false
	}
}
