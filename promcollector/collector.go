// Package promcollector exports vecmetrics operation metrics to Prometheus.
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/vecmetrics/distance"
)

// Collector implements vecmetrics.MetricsCollector on Prometheus metrics.
type Collector struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	dimension  prometheus.Histogram
	mismatches *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vecmetrics_operations_total",
				Help: "Total number of metric computations",
			},
			[]string{"metric", "status"}, // "Dot", "Manhattan", "Euclidean" | "ok", "dimension_mismatch"
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vecmetrics_operation_duration_seconds",
				Help:    "Time spent per metric computation",
				Buckets: prometheus.ExponentialBuckets(1e-8, 4, 10),
			},
			[]string{"metric"},
		),
		dimension: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vecmetrics_vector_dimension",
				Help:    "Length of the vectors passed to successful computations",
				Buckets: prometheus.ExponentialBuckets(8, 2, 10),
			},
		),
		mismatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vecmetrics_dimension_mismatch_total",
				Help: "Total number of computations rejected for unequal vector lengths",
			},
			[]string{"metric"},
		),
	}

	for _, m := range []prometheus.Collector{c.operations, c.duration, c.dimension, c.mismatches} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordOperation implements vecmetrics.MetricsCollector.
func (c *Collector) RecordOperation(m distance.Metric, dimension int, duration time.Duration, err error) {
	metric := m.String()
	c.duration.WithLabelValues(metric).Observe(duration.Seconds())

	if err != nil {
		c.operations.WithLabelValues(metric, "dimension_mismatch").Inc()
		c.mismatches.WithLabelValues(metric).Inc()
		return
	}

	c.operations.WithLabelValues(metric, "ok").Inc()
	c.dimension.Observe(float64(dimension))
}
