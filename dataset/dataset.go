package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrEmptySet is returned when a dataset is constructed without samples.
	ErrEmptySet = errors.New("empty data set")

	// ErrZeroDimension is returned when the first sample has no components.
	ErrZeroDimension = errors.New("samples must have at least one component")
)

// ErrRaggedMatrix indicates that a row's length differs from the dataset dimension.
type ErrRaggedMatrix struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRaggedMatrix) Error() string {
	return fmt.Sprintf("ragged matrix: row %d has %d components, expected %d", e.Row, e.Actual, e.Expected)
}

// Dataset is an immutable ordered collection of samples of equal dimension.
//
// Rows containing NaN components carry a validity mask (set bit = known
// component); fully-known rows carry a nil mask. Masks are computed once at
// construction.
type Dataset struct {
	rows    [][]float64
	masks   []*bitset.BitSet
	dim     int
	missing int // number of rows with at least one missing component
}

// New builds a Dataset from a row-major matrix (rows = samples, columns =
// features). Each row is scanned once for NaN components.
//
// The rows are retained by reference; callers must not mutate them afterwards.
func New(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySet
	}

	dim := len(rows[0])
	if dim == 0 {
		return nil, ErrZeroDimension
	}

	ds := &Dataset{
		rows:  rows,
		masks: make([]*bitset.BitSet, len(rows)),
		dim:   dim,
	}

	for i, row := range rows {
		if len(row) != dim {
			return nil, &ErrRaggedMatrix{Row: i, Expected: dim, Actual: len(row)}
		}

		var mask *bitset.BitSet
		for j, v := range row {
			if math.IsNaN(v) {
				if mask == nil {
					mask = bitset.New(uint(dim))
					for b := uint(0); b < uint(j); b++ {
						mask.Set(b)
					}
				}
				continue
			}
			if mask != nil {
				mask.Set(uint(j))
			}
		}

		if mask != nil {
			ds.masks[i] = mask
			ds.missing++
		}
	}

	return ds, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.rows) }

// Dim returns the sample dimension.
func (d *Dataset) Dim() int { return d.dim }

// Row returns the i-th sample. Missing components are NaN.
func (d *Dataset) Row(i int) []float64 { return d.rows[i] }

// Mask returns the validity mask of the i-th sample, or nil if the sample is
// fully known.
func (d *Dataset) Mask(i int) *bitset.BitSet { return d.masks[i] }

// HasMissing reports whether any sample has a missing component.
func (d *Dataset) HasMissing() bool { return d.missing > 0 }

// MissingRows returns the number of samples with at least one missing component.
func (d *Dataset) MissingRows() int { return d.missing }
