// Package bigbuf converts between arbitrary-precision integers and
// fixed-width byte sequences, in both big-endian and little-endian order,
// for both unsigned and signed (two's-complement) representations.
//
// It replaces ad-hoc integer-to-bytes codecs that commonly mishandle the
// edge cases: zero-length buffers, values wider than the requested byte
// width, negative numbers, and multi-hundred-bit magnitudes.
//
// # Quick Start
//
//	b, _ := bigbuf.EncodeUnsignedBE(big.NewInt(16909060), 4)
//	// b == []byte{0x01, 0x02, 0x03, 0x04}
//
//	v, _ := bigbuf.DecodeSignedBE([]byte{0xFF})
//	// v == -1
//
// In-place variants infer the width from the destination and avoid the
// allocation:
//
//	dst := make([]byte, 32)
//	_ = bigbuf.EncodeUnsignedBEInto(dst, value)
//
// # Width Policy
//
// Encoding always returns exactly width bytes. A magnitude that needs fewer
// bytes is zero-padded on the high-order side; one that needs more is
// silently truncated to its low-order width bytes. Truncation is a
// deliberate part of the contract, not an error: callers who need range
// enforcement gate their values through AssertSignedInRange /
// AssertUnsignedInRange, or carry them in a Checked.
//
// Width 0 is legal: any value encodes to the empty sequence, and the empty
// sequence decodes to 0.
//
// # Backends
//
// Two interchangeable backends implement the conversion core: an accelerated
// word-engine backend that moves eight bytes per load/store on 64-bit
// architectures, and a portable backend that runs everywhere. The best
// available backend is resolved once, on first use; unsupported platforms
// fall back to the portable backend transparently. SelectBackend pins a
// specific one, and the BIGBUF_BACKEND environment variable overrides
// auto-detection. Both backends produce byte-identical output.
//
// # Signed Encoding
//
// Negative values encode as exact two's complement: -1 in one byte is 0xFF,
// -128 is 0x80. This intentionally diverges from legacy sign-and-magnitude
// codecs; byte compatibility with those is only given for non-negative
// values.
package bigbuf
