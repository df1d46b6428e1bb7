package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Rand returns a fresh *rand.Rand seeded from this RNG, suitable for
// passing to clusterkit.WithRand.
func (r *RNG) Rand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rand.New(rand.NewSource(r.rand.Int63()))
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed float64 with mean 0 and stddev 1.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// Blobs generates perCenter Gaussian-distributed samples around each center.
// spread is the per-component standard deviation. Sample order interleaves
// the centers so that no contiguous prefix is single-cluster.
func Blobs(r *RNG, centers [][]float64, perCenter int, spread float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(centers) == 0 || perCenter <= 0 {
		return nil
	}

	dim := len(centers[0])
	rows := make([][]float64, 0, len(centers)*perCenter)

	for i := 0; i < perCenter; i++ {
		for _, c := range centers {
			row := make([]float64, dim)
			for j := range row {
				row[j] = c[j] + spread*r.rand.NormFloat64()
			}
			rows = append(rows, row)
		}
	}

	return rows
}

// Corrupt replaces roughly frac of all components with NaN, in place.
// Every row keeps at least one known component.
func Corrupt(r *RNG, rows [][]float64, frac float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		known := len(row)
		for j := range row {
			if known > 1 && r.rand.Float64() < frac {
				row[j] = math.NaN()
				known--
			}
		}
	}
}
