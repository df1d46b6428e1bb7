// Package assign implements nearest-centroid assignment for clustering.
//
// It offers a single-sample query (used by sequential training) and a
// full-batch query (used by batch training and final reporting) with
// identical semantics. Batch queries fan out across samples with errgroup;
// the centroid set is only read, never written, so the parallelism is safe
// as long as callers recompute centroids after Wait returns.
package assign

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
)

// Nearest returns the index of the centroid closest to x under squared
// Euclidean distance, and the distance value. When valid is non-nil, only the
// components whose bit is set participate in the distance.
//
// Ties resolve to the lowest centroid index. Pure function of its inputs.
func Nearest(x []float64, valid *bitset.BitSet, centroids [][]float64) (int, float64) {
	best := 0
	minDist := math.MaxFloat64

	if valid == nil {
		for j, c := range centroids {
			if d := distance.SquaredL2(x, c); d < minDist {
				minDist = d
				best = j
			}
		}
		return best, minDist
	}

	for j, c := range centroids {
		if d := distance.MaskedSquaredL2(x, c, valid); d < minDist {
			minDist = d
			best = j
		}
	}
	return best, minDist
}

// NearestBatch assigns every sample of ds to its nearest centroid and returns
// the partition together with the per-sample squared distances.
//
// Work is split into contiguous chunks processed by up to workers goroutines
// (workers <= 0 selects GOMAXPROCS). All assignments are complete when the
// call returns, so callers may immediately recompute centroids.
func NearestBatch(ctx context.Context, ds *dataset.Dataset, centroids [][]float64, workers int) ([]int, []float64, error) {
	n := ds.Len()
	partition := make([]int, n)
	dists := make([]float64, n)

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return nil, nil, err
				}
			}
			partition[i], dists[i] = Nearest(ds.Row(i), ds.Mask(i), centroids)
		}
		return partition, dists, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers

	for start := 0; start < n; start += chunk {
		lo, hi := start, start+chunk
		if hi > n {
			hi = n
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				partition[i], dists[i] = Nearest(ds.Row(i), ds.Mask(i), centroids)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return partition, dists, nil
}
