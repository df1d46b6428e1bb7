package assign

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/testutil"
)

func TestNearest(t *testing.T) {
	centroids := [][]float64{
		{0, 0},
		{10, 10},
		{20, 20},
	}

	idx, d := Nearest([]float64{1, 1}, nil, centroids)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 2, d, 1e-12)

	idx, d = Nearest([]float64{19, 19}, nil, centroids)
	assert.Equal(t, 2, idx)
	assert.InDelta(t, 2, d, 1e-12)
}

func TestNearest_TieBreaksToLowestIndex(t *testing.T) {
	centroids := [][]float64{
		{-1, 0},
		{1, 0},
	}

	// Equidistant from both centroids.
	idx, d := Nearest([]float64{0, 0}, nil, centroids)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 1, d, 1e-12)
}

func TestNearest_Masked(t *testing.T) {
	centroids := [][]float64{
		{0, 100},
		{5, 0},
	}

	// Second component unknown: only the first participates, so the sample
	// at x=1 is closer to centroid 0 regardless of the huge y offset.
	ds, err := dataset.New([][]float64{{1, math.NaN()}})
	require.NoError(t, err)

	idx, d := Nearest(ds.Row(0), ds.Mask(0), centroids)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 1, d, 1e-12)
}

func TestNearestBatch_MatchesSingleQueries(t *testing.T) {
	rng := testutil.NewRNG(42)
	rows := testutil.Blobs(rng, [][]float64{{0, 0, 0}, {10, 10, 10}, {-5, 5, 0}}, 50, 1.0)

	ds, err := dataset.New(rows)
	require.NoError(t, err)

	centroids := [][]float64{{0, 0, 0}, {10, 10, 10}, {-5, 5, 0}}

	partition, dists, err := NearestBatch(context.Background(), ds, centroids, 4)
	require.NoError(t, err)
	require.Len(t, partition, ds.Len())
	require.Len(t, dists, ds.Len())

	for i := 0; i < ds.Len(); i++ {
		idx, d := Nearest(ds.Row(i), ds.Mask(i), centroids)
		assert.Equal(t, idx, partition[i], "sample %d", i)
		assert.InDelta(t, d, dists[i], 1e-12, "sample %d", i)
	}
}

func TestNearestBatch_SerialMatchesParallel(t *testing.T) {
	rng := testutil.NewRNG(7)
	rows := testutil.Blobs(rng, [][]float64{{0, 0}, {8, 8}}, 100, 2.0)

	ds, err := dataset.New(rows)
	require.NoError(t, err)

	centroids := [][]float64{{1, 1}, {7, 7}}

	serialPart, serialDist, err := NearestBatch(context.Background(), ds, centroids, 1)
	require.NoError(t, err)

	parPart, parDist, err := NearestBatch(context.Background(), ds, centroids, 8)
	require.NoError(t, err)

	assert.Equal(t, serialPart, parPart)
	assert.Equal(t, serialDist, parDist)
}

func TestNearestBatch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := make([][]float64, 5000)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i)}
	}

	ds, err := dataset.New(rows)
	require.NoError(t, err)

	_, _, err = NearestBatch(ctx, ds, [][]float64{{0, 0}, {1, 1}}, 4)
	assert.ErrorIs(t, err, context.Canceled)
}
