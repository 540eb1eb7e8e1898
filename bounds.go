package bigbuf

import (
	"fmt"
	"math/big"

	"github.com/vekexasia/bigint-swissknife-sub000/internal/conv"
)

// Bounds is the inclusive legal range for a given width and signedness.
type Bounds struct {
	Min *big.Int
	Max *big.Int
}

// Contains reports whether v lies within b.
func (b Bounds) Contains(v *big.Int) bool {
	return v.Cmp(b.Min) >= 0 && v.Cmp(b.Max) <= 0
}

// SignedBounds returns the two's-complement range for widthBytes bytes:
// [-2^(8w-1), 2^(8w-1)-1]. widthBytes must be positive; width 0 is accepted
// by the raw codec but is not meaningful for a bounds check.
func SignedBounds(widthBytes int) (Bounds, error) {
	bits, err := boundsBits(widthBytes)
	if err != nil {
		return Bounds{}, err
	}
	max := new(big.Int).Lsh(big.NewInt(1), bits-1)
	min := new(big.Int).Neg(max)
	max.Sub(max, big.NewInt(1))
	return Bounds{Min: min, Max: max}, nil
}

// UnsignedBounds returns the unsigned range for widthBytes bytes:
// [0, 2^(8w)-1]. widthBytes must be positive.
func UnsignedBounds(widthBytes int) (Bounds, error) {
	bits, err := boundsBits(widthBytes)
	if err != nil {
		return Bounds{}, err
	}
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	max.Sub(max, big.NewInt(1))
	return Bounds{Min: big.NewInt(0), Max: max}, nil
}

func boundsBits(widthBytes int) (uint, error) {
	if _, err := conv.CheckBoundsWidth(widthBytes); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	bits, err := conv.BytesToBits(widthBytes)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return bits, nil
}

// AssertSignedInRange returns value unchanged when it is representable as
// widthBytes bytes of two's complement, and a RangeError carrying the value
// and the computed bounds otherwise. The pass-through return value allows
// fluent chaining into an encode call.
func AssertSignedInRange(value *big.Int, widthBytes int) (*big.Int, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidInput)
	}
	b, err := SignedBounds(widthBytes)
	if err != nil {
		return nil, err
	}
	if !b.Contains(value) {
		return nil, &RangeError{Value: value, Min: b.Min, Max: b.Max}
	}
	return value, nil
}

// AssertUnsignedInRange returns value unchanged when it is representable as
// widthBytes unsigned bytes, and a RangeError otherwise.
func AssertUnsignedInRange(value *big.Int, widthBytes int) (*big.Int, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidInput)
	}
	b, err := UnsignedBounds(widthBytes)
	if err != nil {
		return nil, err
	}
	if !b.Contains(value) {
		return nil, &RangeError{Value: value, Min: b.Min, Max: b.Max}
	}
	return value, nil
}
