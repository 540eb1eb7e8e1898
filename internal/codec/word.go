//go:build amd64 || arm64

package codec

import (
	"encoding/binary"
	"math/big"
)

// wordBytes is the size of a big.Int limb on the architectures this backend
// builds for. The build tags above restrict it to 64-bit limbs.
const wordBytes = 8

// wordCodec converts directly between big.Int limbs and bytes, moving eight
// bytes per load/store instead of the byte-at-a-time portable path. Limbs
// are least significant first, which makes the little-endian direction a
// straight copy.
type wordCodec struct{}

func newWordCodec() Codec { return wordCodec{} }

func (wordCodec) Name() string { return "accelerated" }

func (wordCodec) PutUintBE(dst []byte, value *big.Int) {
	width := len(dst)
	if width == 0 {
		return
	}
	words := value.Bits()
	full := width / wordBytes
	n := min(full, len(words))
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(dst[width-(i+1)*wordBytes:], uint64(words[i]))
	}
	head := width - n*wordBytes
	if n < len(words) && head > 0 {
		// Width is not limb-aligned: only the low head bytes of the next
		// limb survive. Anything above that truncates silently.
		w := uint64(words[n])
		for i := 0; i < head; i++ {
			dst[head-1-i] = byte(w >> (8 * i))
		}
		return
	}
	clear(dst[:head])
}

func (wordCodec) PutUintLE(dst []byte, value *big.Int) {
	width := len(dst)
	if width == 0 {
		return
	}
	words := value.Bits()
	full := width / wordBytes
	n := min(full, len(words))
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(dst[i*wordBytes:], uint64(words[i]))
	}
	off := n * wordBytes
	if n < len(words) && off < width {
		w := uint64(words[n])
		for i := 0; off+i < width; i++ {
			dst[off+i] = byte(w >> (8 * i))
		}
		return
	}
	clear(dst[off:])
}

func (wordCodec) UintBE(src []byte) *big.Int {
	i := 0
	for i < len(src) && src[i] == 0 {
		i++
	}
	b := src[i:]
	if len(b) == 0 {
		return new(big.Int)
	}
	words := make([]big.Word, 0, (len(b)+wordBytes-1)/wordBytes)
	for len(b) >= wordBytes {
		words = append(words, big.Word(binary.BigEndian.Uint64(b[len(b)-wordBytes:])))
		b = b[:len(b)-wordBytes]
	}
	if len(b) > 0 {
		var w uint64
		for _, c := range b {
			w = w<<8 | uint64(c)
		}
		words = append(words, big.Word(w))
	}
	return new(big.Int).SetBits(words)
}

func (wordCodec) UintLE(src []byte) *big.Int {
	n := len(src)
	for n > 0 && src[n-1] == 0 {
		n--
	}
	b := src[:n]
	if len(b) == 0 {
		return new(big.Int)
	}
	words := make([]big.Word, 0, (len(b)+wordBytes-1)/wordBytes)
	for len(b) >= wordBytes {
		words = append(words, big.Word(binary.LittleEndian.Uint64(b)))
		b = b[wordBytes:]
	}
	if len(b) > 0 {
		var w uint64
		for i, c := range b {
			w |= uint64(c) << (8 * i)
		}
		words = append(words, big.Word(w))
	}
	return new(big.Int).SetBits(words)
}
