package clusterkit

import (
	"log/slog"
	"math/rand"
)

const (
	// DefaultEpochs is the epoch limit used when WithEpochs is not given.
	DefaultEpochs = 100

	// DefaultLearningRate is the initial sequential learning rate used when
	// WithLearningRate is not given.
	DefaultLearningRate = 0.5
)

type options struct {
	method           Method
	epochs           int
	k                int
	centroids        [][]float64
	alpha            float64
	rng              *rand.Rand
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a Train call.
type Option func(*options)

// WithMethod selects the centroid update strategy. Default is Batch.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithEpochs sets the epoch limit. For Batch this bounds the number of
// Lloyd iterations; for Sequential the total step count is epochs × samples.
func WithEpochs(epochs int) Option {
	return func(o *options) {
		o.epochs = epochs
	}
}

// WithClusters sets the number of clusters. Initial centroids are drawn as k
// distinct random samples from the data set.
//
// Ignored when WithInitialCentroids is also given.
func WithClusters(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithInitialCentroids supplies explicit initial centroids. The matrix is
// copied before training; rows must match the data dimension. NaN components
// are coerced to zero.
func WithInitialCentroids(centroids [][]float64) Option {
	return func(o *options) {
		o.centroids = centroids
	}
}

// WithLearningRate sets the initial sequential learning rate, which decays
// linearly to zero over the run. Must be in (0, 1]. Ignored by Batch.
func WithLearningRate(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithRand supplies the random source used for centroid initialization and
// the sequential sample permutation. Supplying a fixed-seed source makes
// training fully reproducible.
//
// If not set, a source seeded from the global generator is used.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithWorkers bounds the number of goroutines used for batch assignment.
// Values <= 0 select GOMAXPROCS. Worker count never changes results.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLogger configures structured logging for training progress.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// training runs. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &clusterkit.BasicMetricsCollector{}
//	res, _ := clusterkit.Train(ctx, ds, clusterkit.WithClusters(4), clusterkit.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.TrainCount, stats.TrainAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithVerbose enables progress reporting to stderr at Info level.
// Convenience wrapper for WithLogger(NewTextLogger(slog.LevelInfo)).
func WithVerbose() Option {
	return func(o *options) {
		o.logger = NewTextLogger(slog.LevelInfo)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		method:           Batch,
		epochs:           DefaultEpochs,
		alpha:            DefaultLearningRate,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return o
}
