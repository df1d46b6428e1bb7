package clusterkit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/internal/training"
)

// Method selects the centroid update strategy.
type Method int

const (
	// Batch runs Lloyd's algorithm: full reassignment and mean recomputation
	// per iteration, stopping early when the partition stabilizes.
	Batch Method = iota

	// Sequential runs online updates: one sample per step, moving its
	// nearest centroid by a linearly decaying learning rate.
	Sequential
)

func (m Method) String() string {
	switch m {
	case Batch:
		return "batch"
	case Sequential:
		return "seq"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseMethod maps a method name to a Method. Recognized names are "batch"
// and "seq" (alias "sequential"). Unknown names return ErrUnsupportedMethod.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "batch":
		return Batch, nil
	case "seq", "sequential":
		return Sequential, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Status describes how a training run terminated.
type Status int

const (
	// StatusConverged means the batch partition stabilized before the epoch
	// limit was reached.
	StatusConverged Status = iota

	// StatusEpochLimit means training ran for the full epoch budget.
	// Sequential training always terminates this way.
	StatusEpochLimit
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusEpochLimit:
		return "epoch-limit-reached"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Result holds the output of a Train call.
type Result struct {
	// Method is the strategy that produced this result.
	Method Method

	// Centroids is the trained centroid matrix, k rows of data dimension.
	Centroids [][]float64

	// Partition assigns each sample index to a centroid index.
	Partition []int

	// QuantizationError is the summed squared distance from each sample to
	// its assigned centroid.
	QuantizationError float64

	// Errors records the quantization error at the start of each batch
	// iteration. Nil for sequential training.
	Errors []float64

	// Iterations is the number of completed batch iterations, or the epoch
	// count for sequential training.
	Iterations int

	// Status reports the termination cause.
	Status Status
}

// Train clusters ds and returns the trained centroids, the partition and the
// total quantization error.
//
// The cluster count comes from WithClusters or WithInitialCentroids; all
// other parameters have defaults (Batch method, 100 epochs, logging off).
// Validation happens before any computation; on error no training is
// performed.
func Train(ctx context.Context, ds *dataset.Dataset, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	if o.method != Batch && o.method != Sequential {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, o.method)
	}

	if o.epochs < 1 {
		return nil, ErrInvalidEpochs
	}

	if o.alpha <= 0 || o.alpha > 1 {
		return nil, ErrInvalidLearningRate
	}

	centroids, err := initialCentroids(ds, &o)
	if err != nil {
		return nil, err
	}

	logger := o.logger.WithMethod(o.method).WithK(len(centroids)).WithDimension(ds.Dim())

	start := time.Now()

	var tres *training.Result
	switch o.method {
	case Sequential:
		tres, err = training.Sequential(ctx, ds, centroids, o.epochs, o.alpha, o.rng, o.workers, logger.Logger)
	case Batch:
		tres, err = training.Batch(ctx, ds, centroids, o.epochs, o.workers, logger.Logger)
	}

	if err != nil {
		o.metricsCollector.RecordTrain(o.method, 0, time.Since(start), err)
		logger.LogTrain(ctx, nil, err)
		return nil, err
	}

	o.metricsCollector.RecordTrain(o.method, tres.Iterations, time.Since(start), nil)

	res := &Result{
		Method:            o.method,
		Centroids:         tres.Centroids,
		Partition:         tres.Partition,
		QuantizationError: tres.QuantizationError,
		Errors:            tres.Errors,
		Iterations:        tres.Iterations,
		Status:            statusFrom(tres.Status),
	}

	logger.LogTrain(ctx, res, nil)

	return res, nil
}

func statusFrom(s training.Status) Status {
	if s == training.StatusConverged {
		return StatusConverged
	}
	return StatusEpochLimit
}

// initialCentroids builds the working centroid matrix: a validated copy of
// the supplied one, or k distinct random samples. NaN components are coerced
// to zero so centroids are always fully known.
func initialCentroids(ds *dataset.Dataset, o *options) ([][]float64, error) {
	dim := ds.Dim()

	if o.centroids != nil {
		if len(o.centroids) == 0 {
			return nil, ErrInvalidK
		}

		centroids := make([][]float64, len(o.centroids))
		for i, row := range o.centroids {
			if len(row) != dim {
				return nil, &ErrShapeMismatch{Expected: dim, Actual: len(row)}
			}
			centroids[i] = coerceNaN(append([]float64(nil), row...))
		}
		return centroids, nil
	}

	if o.k < 1 {
		return nil, ErrInvalidK
	}
	if ds.Len() < o.k {
		return nil, fmt.Errorf("%w: %d samples, k=%d", ErrTooFewSamples, ds.Len(), o.k)
	}

	perm := o.rng.Perm(ds.Len())
	centroids := make([][]float64, o.k)
	for i := 0; i < o.k; i++ {
		centroids[i] = coerceNaN(append([]float64(nil), ds.Row(perm[i])...))
	}
	return centroids, nil
}

func coerceNaN(row []float64) []float64 {
	for i, v := range row {
		if math.IsNaN(v) {
			row[i] = 0
		}
	}
	return row
}
