//go:build !amd64 && !arm64

package codec

// The word engine needs 64-bit limbs and cheap unaligned 8-byte access; on
// other architectures only the portable codec exists. Selection is gated on
// hasWordEngine, so this constructor is never reached.
func newWordCodec() Codec { return nil }
