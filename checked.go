package bigbuf

import (
	"fmt"
	"math/big"

	"github.com/vekexasia/bigint-swissknife-sub000/internal/codec"
)

// Checked is an immutable integer bound to a fixed byte width and
// signedness. Arithmetic returns a new Checked, or a RangeError when the
// result leaves the representable range; it never truncates silently. This
// is the range-enforced counterpart to the raw codec's fix-overflow policy.
type Checked struct {
	value  *big.Int
	bounds Bounds
	width  int
	signed bool
}

// NewCheckedSigned creates a Checked holding value as widthBytes bytes of
// two's complement.
func NewCheckedSigned(value *big.Int, widthBytes int) (Checked, error) {
	v, err := AssertSignedInRange(value, widthBytes)
	if err != nil {
		return Checked{}, err
	}
	b, _ := SignedBounds(widthBytes)
	return Checked{value: new(big.Int).Set(v), bounds: b, width: widthBytes, signed: true}, nil
}

// NewCheckedUnsigned creates a Checked holding value as widthBytes unsigned
// bytes.
func NewCheckedUnsigned(value *big.Int, widthBytes int) (Checked, error) {
	v, err := AssertUnsignedInRange(value, widthBytes)
	if err != nil {
		return Checked{}, err
	}
	b, _ := UnsignedBounds(widthBytes)
	return Checked{value: new(big.Int).Set(v), bounds: b, width: widthBytes, signed: false}, nil
}

// Value returns a copy of the held integer.
func (c Checked) Value() *big.Int { return new(big.Int).Set(c.value) }

// Width returns the byte width the value is bound to.
func (c Checked) Width() int { return c.width }

// Signed reports whether the value uses the two's-complement range.
func (c Checked) Signed() bool { return c.signed }

// Bounds returns the inclusive legal range of the value.
func (c Checked) Bounds() Bounds { return c.bounds }

// Cmp compares the held value against x, with the same semantics as
// big.Int.Cmp.
func (c Checked) Cmp(x *big.Int) int { return c.value.Cmp(x) }

// String returns the decimal representation of the held value.
func (c Checked) String() string { return c.value.String() }

// BytesBE encodes the held value big-endian in exactly Width bytes. By
// construction the value is in range, so the encode cannot truncate.
func (c Checked) BytesBE() []byte {
	dst := make([]byte, c.width)
	codec.PutIntBE(codec.Active(), dst, c.value)
	return dst
}

// BytesLE encodes the held value little-endian in exactly Width bytes.
func (c Checked) BytesLE() []byte {
	dst := make([]byte, c.width)
	codec.PutIntLE(codec.Active(), dst, c.value)
	return dst
}

// apply runs op on the held value and re-validates the result against the
// bounds before wrapping it.
func (c Checked) apply(op func(z *big.Int) *big.Int) (Checked, error) {
	z := op(new(big.Int))
	if !c.bounds.Contains(z) {
		return Checked{}, &RangeError{Value: z, Min: c.bounds.Min, Max: c.bounds.Max}
	}
	return Checked{value: z, bounds: c.bounds, width: c.width, signed: c.signed}, nil
}

// Add returns c+x, or a RangeError when the sum leaves the range.
func (c Checked) Add(x *big.Int) (Checked, error) {
	if x == nil {
		return Checked{}, fmt.Errorf("%w: nil operand", ErrInvalidInput)
	}
	return c.apply(func(z *big.Int) *big.Int { return z.Add(c.value, x) })
}

// Sub returns c-x, or a RangeError when the difference leaves the range.
func (c Checked) Sub(x *big.Int) (Checked, error) {
	if x == nil {
		return Checked{}, fmt.Errorf("%w: nil operand", ErrInvalidInput)
	}
	return c.apply(func(z *big.Int) *big.Int { return z.Sub(c.value, x) })
}

// Mul returns c*x, or a RangeError when the product leaves the range.
func (c Checked) Mul(x *big.Int) (Checked, error) {
	if x == nil {
		return Checked{}, fmt.Errorf("%w: nil operand", ErrInvalidInput)
	}
	return c.apply(func(z *big.Int) *big.Int { return z.Mul(c.value, x) })
}

// Div returns the truncated quotient c/x. Division by zero fails with
// ErrInvalidArgument. Overflow is still possible: min/-1 in a signed range.
func (c Checked) Div(x *big.Int) (Checked, error) {
	if x == nil {
		return Checked{}, fmt.Errorf("%w: nil operand", ErrInvalidInput)
	}
	if x.Sign() == 0 {
		return Checked{}, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	}
	return c.apply(func(z *big.Int) *big.Int { return z.Quo(c.value, x) })
}

// Mod returns the remainder of the truncated division c/x, with the sign of
// c. Division by zero fails with ErrInvalidArgument.
func (c Checked) Mod(x *big.Int) (Checked, error) {
	if x == nil {
		return Checked{}, fmt.Errorf("%w: nil operand", ErrInvalidInput)
	}
	if x.Sign() == 0 {
		return Checked{}, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	}
	return c.apply(func(z *big.Int) *big.Int { return z.Rem(c.value, x) })
}

// Neg returns -c. In a signed range negating the minimum overflows; in an
// unsigned range any non-zero value does.
func (c Checked) Neg() (Checked, error) {
	return c.apply(func(z *big.Int) *big.Int { return z.Neg(c.value) })
}
