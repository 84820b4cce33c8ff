// Package seeding maps tournament ranks onto bracket seed slots.
package seeding

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidArgument reports a rank outside [0, max].
var ErrInvalidArgument = errors.New("invalid seeding argument")

// BitReverse reverses the binary digits of value, left-padded with zeros to
// the bit length of maxValue, and returns the result.
//
// When maxValue is not a power of two the mapping is not a bijection over
// [1, maxValue]: slots can collide or exceed maxValue. Callers must use the
// result as a sort key only.
func BitReverse(value, maxValue int) (int, error) {
	if value < 0 || value > maxValue {
		return 0, fmt.Errorf("%w: value %d outside [0, %d]", ErrInvalidArgument, value, maxValue)
	}
	width := bits.Len(uint(maxValue))
	if width == 0 {
		return 0, nil
	}
	return int(bits.Reverse(uint(value)) >> (bits.UintSize - width)), nil
}

// Slots returns BitReverse(i, n) for every rank i in 1..n.
func Slots(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}
	out := make([]int, n)
	for i := range out {
		slot, err := BitReverse(i+1, n)
		if err != nil {
			return nil, err
		}
		out[i] = slot
	}
	return out, nil
}
