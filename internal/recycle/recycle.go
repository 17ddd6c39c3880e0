// Package recycle implements the modulo pairing rule for parallel input
// vectors of unequal length.
package recycle

import (
	"errors"
	"fmt"
)

// ErrIncompatibleLengths indicates operand lengths that cannot be
// recycled to a common length.
var ErrIncompatibleLengths = errors.New("incompatible operand lengths")

// CommonLength returns the output length for a set of operand lengths.
// The common length is the maximum of the operands; every other operand
// must have length 1 (a scalar, repeated for each output element) or the
// maximum itself. A zero length alongside nonzero ones, or any other
// combination, fails before any processing begins.
//
// All-zero operand lengths yield zero without error.
func CommonLength(lengths ...int) (int, error) {
	max := 0
	for _, l := range lengths {
		if l > max {
			max = l
		}
	}
	if max == 0 {
		return 0, nil
	}
	for _, l := range lengths {
		if l == 0 {
			return 0, fmt.Errorf("%w: zero-length operand alongside length %d", ErrIncompatibleLengths, max)
		}
		if l != 1 && l != max {
			return 0, fmt.Errorf("%w: %d does not recycle to %d", ErrIncompatibleLengths, l, max)
		}
	}
	return max, nil
}

// Index maps output position i to the operand element it consumes.
func Index(i, length int) int {
	return i % length
}
