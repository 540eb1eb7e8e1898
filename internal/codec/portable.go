package codec

import "math/big"

// portableCodec is the pure math/big implementation. It runs on every
// platform and is the reference the accelerated backend is tested against.
type portableCodec struct{}

func (portableCodec) Name() string { return "portable" }

func (portableCodec) PutUintBE(dst []byte, value *big.Int) {
	if len(dst) == 0 {
		return
	}
	b := value.Bytes()
	if len(b) > len(dst) {
		// Keep the low-order bytes: oversized magnitudes truncate, they do
		// not error.
		copy(dst, b[len(b)-len(dst):])
		return
	}
	pad := len(dst) - len(b)
	clear(dst[:pad])
	copy(dst[pad:], b)
}

func (portableCodec) PutUintLE(dst []byte, value *big.Int) {
	if len(dst) == 0 {
		return
	}
	b := value.Bytes()
	if len(b) > len(dst) {
		b = b[len(b)-len(dst):]
	}
	for i := range dst {
		if i < len(b) {
			dst[i] = b[len(b)-1-i]
		} else {
			dst[i] = 0
		}
	}
}

func (portableCodec) UintBE(src []byte) *big.Int {
	return new(big.Int).SetBytes(src)
}

func (portableCodec) UintLE(src []byte) *big.Int {
	// Trim insignificant trailing zeros before reversing to keep the copy
	// minimal.
	n := len(src)
	for n > 0 && src[n-1] == 0 {
		n--
	}
	rev := make([]byte, n)
	for i := 0; i < n; i++ {
		rev[i] = src[n-1-i]
	}
	return new(big.Int).SetBytes(rev)
}
