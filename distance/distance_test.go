package distance

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, 20},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{5}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestL2(t *testing.T) {
	assert.InDelta(t, 5, L2([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.InDelta(t, 0, L2([]float64{1, 2}, []float64{1, 2}), 1e-12)
}

func TestMaskedSquaredL2(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 2, 5, 0}

	full := bitset.New(4)
	for i := uint(0); i < 4; i++ {
		full.Set(i)
	}

	t.Run("FullMaskEqualsDense", func(t *testing.T) {
		assert.InDelta(t, SquaredL2(a, b), MaskedSquaredL2(a, b, full), 1e-12)
	})

	t.Run("NilMaskEqualsDense", func(t *testing.T) {
		assert.InDelta(t, SquaredL2(a, b), MaskedSquaredL2(a, b, nil), 1e-12)
	})

	t.Run("PartialMask", func(t *testing.T) {
		valid := bitset.New(4)
		valid.Set(0) // diff 1
		valid.Set(2) // diff 2
		assert.InDelta(t, 5, MaskedSquaredL2(a, b, valid), 1e-12)
	})

	t.Run("EmptyMask", func(t *testing.T) {
		assert.Zero(t, MaskedSquaredL2(a, b, bitset.New(4)))
	})
}
