package vecmetrics

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/vecmetrics/distance"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see the
// promcollector package for Prometheus.
//
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordOperation is called after each metric computation.
	// dimension is len(a), duration is the time taken, err is nil if
	// successful.
	RecordOperation(m distance.Metric, dimension int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperation(distance.Metric, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DotCount        atomic.Int64
	ManhattanCount  atomic.Int64
	EuclideanCount  atomic.Int64
	MismatchCount   atomic.Int64
	ElementsTotal   atomic.Int64
	OperationsNanos atomic.Int64
	OperationsTotal atomic.Int64
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(m distance.Metric, dimension int, duration time.Duration, err error) {
	b.OperationsTotal.Add(1)
	b.OperationsNanos.Add(duration.Nanoseconds())

	switch m {
	case distance.MetricDot:
		b.DotCount.Add(1)
	case distance.MetricManhattan:
		b.ManhattanCount.Add(1)
	case distance.MetricEuclidean:
		b.EuclideanCount.Add(1)
	}

	if err != nil {
		b.MismatchCount.Add(1)
		return
	}
	b.ElementsTotal.Add(int64(dimension))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DotCount:       b.DotCount.Load(),
		ManhattanCount: b.ManhattanCount.Load(),
		EuclideanCount: b.EuclideanCount.Load(),
		MismatchCount:  b.MismatchCount.Load(),
		ElementsTotal:  b.ElementsTotal.Load(),
		AvgNanos:       b.getAvgNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.OperationsTotal.Load()
	if count == 0 {
		return 0
	}
	return b.OperationsNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DotCount       int64
	ManhattanCount int64
	EuclideanCount int64
	MismatchCount  int64
	ElementsTotal  int64
	AvgNanos       int64
}
