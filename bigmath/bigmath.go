// Package bigmath provides small arbitrary-precision helpers that ship
// alongside the codec: absolute value, min/max/clamp, rounded division and
// uniform random generation.
//
// Functions never mutate their operands; each returns a freshly allocated
// value.
package bigmath

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero is returned by DivRound when the denominator is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Abs returns |x|.
func Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}

// Min returns the smaller of x and y.
func Min(x, y *big.Int) *big.Int {
	if x.Cmp(y) <= 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Set(y)
}

// Max returns the larger of x and y.
func Max(x, y *big.Int) *big.Int {
	if x.Cmp(y) >= 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Set(y)
}

// Clamp returns x limited to [lo, hi]. lo must not exceed hi.
func Clamp(x, lo, hi *big.Int) *big.Int {
	if x.Cmp(lo) < 0 {
		return new(big.Int).Set(lo)
	}
	if x.Cmp(hi) > 0 {
		return new(big.Int).Set(hi)
	}
	return new(big.Int).Set(x)
}

// DivRound divides num by den rounding half away from zero, so 5/2 is 3 and
// -5/2 is -3.
func DivRound(num, den *big.Int) (*big.Int, error) {
	if den.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q, nil
	}
	// Round when 2|r| >= |den|, moving away from zero in the direction of
	// the exact quotient.
	r2 := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
	if r2.Cmp(new(big.Int).Abs(den)) >= 0 {
		if (num.Sign() < 0) != (den.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q, nil
}

// Random returns a uniformly distributed value in [0, max), sourced from
// crypto/rand. max must be positive.
func Random(max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("invalid upper bound %s: must be positive", max)
	}
	return rand.Int(rand.Reader, max)
}
