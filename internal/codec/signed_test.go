package codec

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutIntBE(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		width    int
		expected []byte
	}{
		{"zero width", -1, 0, []byte{}},
		{"minus one, one byte", -1, 1, []byte{0xFF}},
		{"minus one, four bytes", -1, 4, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"min signed one byte", -128, 1, []byte{0x80}},
		{"max signed one byte", 127, 1, []byte{0x7F}},
		{"positive passthrough", 0x0102, 2, []byte{0x01, 0x02}},
		{"negative two bytes", -300, 2, []byte{0xFE, 0xD4}},
		{"oversized negative truncates low end", -300, 1, []byte{0xD4}},
		{"minus one, twelve bytes", -1, 12,
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range backendsUnderTest() {
		for _, tc := range tests {
			t.Run(c.Name()+"/"+tc.name, func(t *testing.T) {
				dst := make([]byte, tc.width)
				PutIntBE(c, dst, big.NewInt(tc.value))
				assert.Equal(t, tc.expected, dst)
			})
		}
	}
}

func TestPutIntLE(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		width    int
		expected []byte
	}{
		{"minus one, four bytes", -1, 4, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"min signed one byte", -128, 1, []byte{0x80}},
		{"negative two bytes", -300, 2, []byte{0xD4, 0xFE}},
		{"positive passthrough", 0x0102, 2, []byte{0x02, 0x01}},
	}
	for _, c := range backendsUnderTest() {
		for _, tc := range tests {
			t.Run(c.Name()+"/"+tc.name, func(t *testing.T) {
				dst := make([]byte, tc.width)
				PutIntLE(c, dst, big.NewInt(tc.value))
				assert.Equal(t, tc.expected, dst)
			})
		}
	}
}

func TestIntBE(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		expected int64
	}{
		{"empty decodes to zero", []byte{}, 0},
		{"below midpoint positive", []byte{0x7F}, 127},
		{"midpoint negative", []byte{0x80}, -128},
		{"all ones", []byte{0xFF}, -1},
		{"all ones four bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}, -1},
		{"positive four bytes", []byte{0x01, 0x02, 0x03, 0x04}, 0x01020304},
		{"negative two bytes", []byte{0xFE, 0xD4}, -300},
	}
	for _, c := range backendsUnderTest() {
		for _, tc := range tests {
			t.Run(c.Name()+"/"+tc.name, func(t *testing.T) {
				got := IntBE(c, tc.src)
				assert.Zero(t, got.Cmp(big.NewInt(tc.expected)), "got %s", got)
			})
		}
	}
}

func TestIntLE(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		expected int64
	}{
		{"empty decodes to zero", []byte{}, 0},
		{"midpoint negative", []byte{0x00, 0x80}, -32768},
		{"all ones", []byte{0xFF, 0xFF}, -1},
		{"positive", []byte{0x04, 0x03, 0x02, 0x01}, 0x01020304},
		{"negative two bytes", []byte{0xD4, 0xFE}, -300},
	}
	for _, c := range backendsUnderTest() {
		for _, tc := range tests {
			t.Run(c.Name()+"/"+tc.name, func(t *testing.T) {
				got := IntLE(c, tc.src)
				assert.Zero(t, got.Cmp(big.NewInt(tc.expected)), "got %s", got)
			})
		}
	}
}

func TestSignedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, c := range backendsUnderTest() {
		t.Run(c.Name(), func(t *testing.T) {
			for _, width := range []int{1, 2, 4, 8, 12, 16, 32, 64} {
				// Values spanning the full signed range for this width.
				mid := new(big.Int).Lsh(intOne, uint(width)*8-1)
				for i := 0; i < 100; i++ {
					raw := make([]byte, width)
					rng.Read(raw)
					value := new(big.Int).SetBytes(raw)
					value.Sub(value, mid) // shift into [-2^(8w-1), 2^(8w-1))

					dst := make([]byte, width)
					PutIntBE(c, dst, value)
					require.Zero(t, IntBE(c, dst).Cmp(value), "BE width %d value %s", width, value)

					PutIntLE(c, dst, value)
					require.Zero(t, IntLE(c, dst).Cmp(value), "LE width %d value %s", width, value)
				}
			}
		})
	}
}

func TestSignedRepresentativeDeeplyNegative(t *testing.T) {
	// |value| far beyond the modulus must still reduce into [0, 2^(8w)).
	v, ok := new(big.Int).SetString("-123456789abcdef0123456789abcdef", 16)
	require.True(t, ok)
	for _, c := range backendsUnderTest() {
		t.Run(c.Name(), func(t *testing.T) {
			dst := make([]byte, 2)
			PutIntBE(c, dst, v)
			// -0x...cdef mod 0x10000 == 0x3211
			assert.Equal(t, []byte{0x32, 0x11}, dst)
		})
	}
}
