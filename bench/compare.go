package bench

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrShapeMismatch is returned when two results hold different component
// counts.
var ErrShapeMismatch = errors.New("bench: result shapes differ")

// Checksum returns the sum of all totals.
func (r Result) Checksum() float64 {
	return vecmath.Sum(r.Totals)
}

// Compare returns the largest absolute per-component difference between the
// totals of a and b.
func Compare(a, b Result) (float64, error) {
	if len(a.Totals) != len(b.Totals) {
		return 0, fmt.Errorf("%w: %d vs %d components", ErrShapeMismatch, len(a.Totals), len(b.Totals))
	}
	if len(a.Totals) == 0 {
		return 0, nil
	}

	diff := make([]float64, len(a.Totals))
	vecmath.ScaleBlock(diff, b.Totals, -1)
	vecmath.AddBlockInPlace(diff, a.Totals)

	return vecmath.MaxAbs(diff), nil
}
