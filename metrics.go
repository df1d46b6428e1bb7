package clusterkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    trainCounter   prometheus.Counter
//	    trainHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordTrain(method Method, iterations int, duration time.Duration, err error) {
//	    p.trainCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordTrain is called after each training run.
	// iterations is the number of completed iterations (epochs for
	// sequential), duration is the total time taken, err is nil on success.
	RecordTrain(method Method, iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTrain(Method, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TrainCount      atomic.Int64
	TrainErrors     atomic.Int64
	TrainIterations atomic.Int64
	TrainTotalNanos atomic.Int64
}

// RecordTrain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrain(method Method, iterations int, duration time.Duration, err error) {
	b.TrainCount.Add(1)
	b.TrainIterations.Add(int64(iterations))
	b.TrainTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TrainErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TrainCount:      b.TrainCount.Load(),
		TrainErrors:     b.TrainErrors.Load(),
		TrainIterations: b.TrainIterations.Load(),
		TrainAvgNanos:   b.getAvgTrainNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgTrainNanos() int64 {
	count := b.TrainCount.Load()
	if count == 0 {
		return 0
	}
	return b.TrainTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TrainCount      int64
	TrainErrors     int64
	TrainIterations int64
	TrainAvgNanos   int64
}
