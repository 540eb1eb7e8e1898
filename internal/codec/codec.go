// Package codec implements the integer/byte-sequence conversion core: the
// portable and accelerated unsigned codecs, the two's-complement signed layer
// on top of them, and the backend selector that publishes one of the two as
// the process-wide implementation.
//
// Both backends are drop-in interchangeable and must produce byte-identical
// output for every (value, width) pair. Truncation and padding policy lives
// in the unsigned codecs so the signed layer never duplicates byte-order
// logic.
package codec

import "math/big"

// Codec converts between non-negative big integers and fixed-width byte
// sequences. Implementations must be stateless and safe for concurrent use.
//
// Put* writes the value into dst, keeping only the low-order len(dst) bytes
// when the magnitude does not fit and zero-padding on the high-order side
// when it does. A zero-length dst is a no-op. The value must be
// non-negative; signs are resolved by the signed layer before a codec is
// invoked.
type Codec interface {
	// PutUintBE writes value into dst most significant byte first.
	PutUintBE(dst []byte, value *big.Int)

	// PutUintLE writes value into dst least significant byte first.
	PutUintLE(dst []byte, value *big.Int)

	// UintBE decodes a big-endian unsigned magnitude. Insignificant leading
	// zero bytes do not affect the result.
	UintBE(src []byte) *big.Int

	// UintLE decodes a little-endian unsigned magnitude. Insignificant
	// trailing zero bytes do not affect the result.
	UintLE(src []byte) *big.Int

	// Name returns the stable backend name.
	Name() string
}

// ByName returns the codec for a backend name, if that backend is available
// in the current environment.
func ByName(name string) (Codec, bool) {
	b, ok := ParseBackend(name)
	if !ok || !Available(b) {
		return nil, false
	}
	return codecFor(b), true
}

// ByBackend returns the codec for a backend. The caller must check
// Available first; unavailable backends have no codec.
func ByBackend(b Backend) Codec {
	if !Available(b) {
		return nil
	}
	return codecFor(b)
}

func codecFor(b Backend) Codec {
	if b == Accelerated {
		return newWordCodec()
	}
	return portableCodec{}
}
