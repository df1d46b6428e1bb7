package training

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/internal/assign"
)

// Sequential trains centroids online. It runs epochs × ds.Len() steps; each
// step draws the next sample from a single random permutation (cycled, never
// reshuffled), finds its nearest centroid, and moves that centroid toward the
// sample by a learning rate that decays linearly from alpha to exactly 0 at
// the final step. Updates touch only the sample's known components.
//
// Deterministic given rng, the initial centroids, and alpha. The centroid
// slice is owned and mutated by this function.
func Sequential(ctx context.Context, ds *dataset.Dataset, centroids [][]float64, epochs int, alpha float64, rng *rand.Rand, workers int, logger *slog.Logger) (*Result, error) {
	n := ds.Len()
	steps := epochs * n

	perm := rng.Perm(n)

	for t := 0; t < steps; t++ {
		if t%n == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rate := learningRate(alpha, t, steps)

		i := perm[t%n]
		x := ds.Row(i)
		mask := ds.Mask(i)

		best, _ := assign.Nearest(x, mask, centroids)
		c := centroids[best]

		if mask == nil {
			for d := range c {
				c[d] += rate * (x[d] - c[d])
			}
			continue
		}

		for d, ok := mask.NextSet(0); ok; d, ok = mask.NextSet(d + 1) {
			c[d] += rate * (x[d] - c[d])
		}
	}

	res := &Result{
		Iterations: epochs,
		Status:     StatusEpochLimit,
	}

	if err := report(ctx, ds, centroids, workers, res); err != nil {
		return nil, err
	}

	logger.Info("sequential training finished", "steps", steps, "quantization_error", res.QuantizationError)

	return res, nil
}

// learningRate decays linearly from alpha at step 0 to exactly 0 at the last
// step. A single-step schedule uses the full initial rate.
func learningRate(alpha float64, step, steps int) float64 {
	if steps <= 1 {
		return alpha
	}
	return alpha * float64(steps-1-step) / float64(steps-1)
}
