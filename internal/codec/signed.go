package codec

import "math/big"

var intOne = big.NewInt(1)

// PutIntBE writes value into dst big-endian as two's complement. Negative
// values encode their representative value mod 2^(8·len(dst)), so oversized
// negative magnitudes truncate from the low end exactly like unsigned ones.
// Non-negative values pass straight through to the unsigned codec.
func PutIntBE(c Codec, dst []byte, value *big.Int) {
	c.PutUintBE(dst, signedRepresentative(value, len(dst)))
}

// PutIntLE is PutIntBE with the byte order reversed.
func PutIntLE(c Codec, dst []byte, value *big.Int) {
	c.PutUintLE(dst, signedRepresentative(value, len(dst)))
}

// IntBE decodes a big-endian two's-complement value. Zero-length input
// decodes to 0; the midpoint is undefined there.
func IntBE(c Codec, src []byte) *big.Int {
	u := c.UintBE(src)
	if len(src) == 0 || src[0] < 0x80 {
		return u
	}
	return signedFromUint(u, len(src))
}

// IntLE decodes a little-endian two's-complement value.
func IntLE(c Codec, src []byte) *big.Int {
	u := c.UintLE(src)
	if len(src) == 0 || src[len(src)-1] < 0x80 {
		return u
	}
	return signedFromUint(u, len(src))
}

// signedRepresentative maps value onto its non-negative two's-complement
// representative for the given width. Euclidean reduction keeps it correct
// even when |value| exceeds the modulus.
func signedRepresentative(value *big.Int, width int) *big.Int {
	if value.Sign() >= 0 || width == 0 {
		return value
	}
	mod := new(big.Int).Lsh(intOne, uint(width)*8)
	return new(big.Int).Mod(value, mod)
}

// signedFromUint converts an unsigned magnitude at or above the midpoint to
// its negative two's-complement value u - 2^(8·length).
func signedFromUint(u *big.Int, length int) *big.Int {
	mod := new(big.Int).Lsh(intOne, uint(length)*8)
	return u.Sub(u, mod)
}
