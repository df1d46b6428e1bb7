package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlobs(t *testing.T) {
	rng := NewRNG(4711)

	rows := Blobs(rng, [][]float64{{0, 0}, {100, 100}}, 10, 0.5)

	assert.Len(t, rows, 20)
	assert.Len(t, rows[0], 2)

	// With spread 0.5 every sample stays near its own center.
	for _, row := range rows {
		near0 := math.Abs(row[0]) < 50
		near100 := math.Abs(row[0]-100) < 50
		assert.True(t, near0 || near100)
	}
}

func TestBlobs_Deterministic(t *testing.T) {
	a := Blobs(NewRNG(1), [][]float64{{0}}, 5, 1.0)
	b := Blobs(NewRNG(1), [][]float64{{0}}, 5, 1.0)

	assert.Equal(t, a, b)
}

func TestCorrupt(t *testing.T) {
	rng := NewRNG(99)
	rows := Blobs(rng, [][]float64{{0, 0, 0, 0}}, 50, 1.0)

	Corrupt(rng, rows, 0.5)

	var nans int
	for _, row := range rows {
		known := 0
		for _, v := range row {
			if math.IsNaN(v) {
				nans++
			} else {
				known++
			}
		}
		assert.GreaterOrEqual(t, known, 1, "every row keeps a known component")
	}

	assert.Greater(t, nans, 0)
}
