package training

import (
	"context"
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/internal/assign"
)

// Batch trains centroids with Lloyd's algorithm.
//
// Each iteration assigns every sample to its nearest centroid, recomputes the
// mean of every non-empty cluster, and compares the partition with the
// previous iteration's. Empty clusters keep their previous centroid. The
// convergence check is skipped on the first iteration, so at least one
// iteration always runs.
//
// The centroid slice is owned and mutated by this function.
func Batch(ctx context.Context, ds *dataset.Dataset, centroids [][]float64, epochs, workers int, logger *slog.Logger) (*Result, error) {
	k := len(centroids)
	dim := ds.Dim()

	res := &Result{Status: StatusEpochLimit}

	counts := make([]int, k)
	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, dim)
	}

	// Per-dimension known-sample counts, only needed with missing values.
	var dimCounts [][]int
	if ds.HasMissing() {
		dimCounts = make([][]int, k)
		for j := range dimCounts {
			dimCounts[j] = make([]int, dim)
		}
	}

	var prev []int

	for iter := 0; iter < epochs; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		partition, dists, err := assign.NearestBatch(ctx, ds, centroids, workers)
		if err != nil {
			return nil, err
		}

		var qe float64
		for _, d := range dists {
			qe += d
		}
		res.Errors = append(res.Errors, qe)
		res.Iterations = iter + 1

		logIteration(logger, iter+1, qe)

		updateMeans(ds, centroids, partition, counts, sums, dimCounts)

		if iter > 0 && slices.Equal(partition, prev) {
			res.Status = StatusConverged
			logger.Info("batch training converged", "iterations", res.Iterations, "quantization_error", qe)
			break
		}
		prev = partition
	}

	if err := report(ctx, ds, centroids, workers, res); err != nil {
		return nil, err
	}

	return res, nil
}

// updateMeans replaces every non-empty cluster's centroid with the arithmetic
// mean of its assigned samples. Clusters with no samples are left untouched.
// With missing values the mean is taken per dimension over the samples that
// know that dimension; dimensions no assigned sample knows keep their
// previous centroid value.
func updateMeans(ds *dataset.Dataset, centroids [][]float64, partition []int, counts []int, sums [][]float64, dimCounts [][]int) {
	k := len(centroids)
	dim := ds.Dim()

	for j := 0; j < k; j++ {
		counts[j] = 0
		clear(sums[j])
		if dimCounts != nil {
			clear(dimCounts[j])
		}
	}

	if dimCounts == nil {
		for i := 0; i < ds.Len(); i++ {
			j := partition[i]
			floats.Add(sums[j], ds.Row(i))
			counts[j]++
		}

		for j := 0; j < k; j++ {
			if counts[j] == 0 {
				continue
			}
			copy(centroids[j], sums[j])
			floats.Scale(1/float64(counts[j]), centroids[j])
		}
		return
	}

	for i := 0; i < ds.Len(); i++ {
		j := partition[i]
		counts[j]++

		row := ds.Row(i)
		if mask := ds.Mask(i); mask != nil {
			for d, ok := mask.NextSet(0); ok; d, ok = mask.NextSet(d + 1) {
				sums[j][d] += row[d]
				dimCounts[j][d]++
			}
			continue
		}

		for d := 0; d < dim; d++ {
			sums[j][d] += row[d]
			dimCounts[j][d]++
		}
	}

	for j := 0; j < k; j++ {
		if counts[j] == 0 {
			continue
		}
		for d := 0; d < dim; d++ {
			if dimCounts[j][d] > 0 {
				centroids[j][d] = sums[j][d] / float64(dimCounts[j][d])
			}
		}
	}
}
