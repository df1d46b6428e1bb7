// Package training implements the centroid update strategies behind
// clusterkit: sequential (online, learning-rate-decayed) and batch (Lloyd's
// algorithm). Both operate over the assignment engine in internal/assign and
// share its missing-value semantics.
package training

import (
	"context"
	"log/slog"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/internal/assign"
)

// Status describes how a training run terminated.
type Status int

const (
	// StatusConverged means the batch partition stabilized before the epoch
	// limit was reached.
	StatusConverged Status = iota

	// StatusEpochLimit means the configured number of epochs completed
	// without the partition stabilizing. Sequential training always reports
	// this status, as it runs a fixed step count.
	StatusEpochLimit
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusEpochLimit:
		return "epoch-limit-reached"
	default:
		return "unknown"
	}
}

// Result holds the output of a training run.
type Result struct {
	// Centroids is the trained centroid set, k rows of data dimension.
	Centroids [][]float64

	// Partition assigns each sample index to a centroid index.
	Partition []int

	// QuantizationError is the summed squared distance from each sample to
	// its assigned centroid, consistent with Centroids and Partition.
	QuantizationError float64

	// Errors records the quantization error observed at the start of each
	// batch iteration. Nil for sequential training.
	Errors []float64

	// Iterations is the number of completed batch iterations, or the epoch
	// count for sequential training.
	Iterations int

	// Status reports the termination cause.
	Status Status
}

// report runs a final full-batch assignment against the trained centroids so
// the returned partition and error are exactly consistent with them.
func report(ctx context.Context, ds *dataset.Dataset, centroids [][]float64, workers int, res *Result) error {
	partition, dists, err := assign.NearestBatch(ctx, ds, centroids, workers)
	if err != nil {
		return err
	}

	var qe float64
	for _, d := range dists {
		qe += d
	}

	res.Centroids = centroids
	res.Partition = partition
	res.QuantizationError = qe

	return nil
}

func logIteration(logger *slog.Logger, iter int, qe float64) {
	logger.Debug("batch iteration", "iteration", iter, "quantization_error", qe)
}
