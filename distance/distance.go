package distance

import (
	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/floats"
)

// Func is a function type for distance calculation on dense vectors.
type Func func(a, b []float64) float64

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// L2 calculates the L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// MaskedSquaredL2 calculates the squared L2 distance between a and b over the
// components whose bit is set in valid. Unset components contribute nothing.
//
// A nil mask means every component is known; the result then equals
// SquaredL2(a, b).
func MaskedSquaredL2(a, b []float64, valid *bitset.BitSet) float64 {
	if valid == nil {
		return SquaredL2(a, b)
	}

	var s float64
	for i, ok := valid.NextSet(0); ok; i, ok = valid.NextSet(i + 1) {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
