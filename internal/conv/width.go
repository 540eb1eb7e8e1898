package conv

import (
	"fmt"
	"math"
)

// CheckWidth validates a byte width for encoding. Width 0 is legal and
// denotes the empty sequence.
func CheckWidth(v int) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("invalid width: %d (negative)", v)
	}
	return v, nil
}

// CheckBoundsWidth validates a byte width for a bounds computation. Unlike
// the raw codec, a bounds check is only meaningful for at least one byte.
func CheckBoundsWidth(v int) (int, error) {
	if v < 1 {
		return 0, fmt.Errorf("invalid bounds width: %d (must be positive)", v)
	}
	return v, nil
}

// BytesToBits converts a byte width to the bit count it spans safely.
func BytesToBits(v int) (uint, error) {
	if v < 0 {
		return 0, fmt.Errorf("invalid width: %d (negative)", v)
	}
	if v > math.MaxInt/8 {
		return 0, fmt.Errorf("integer overflow: %d bytes cannot be converted to bits", v)
	}
	return uint(v) * 8, nil
}
