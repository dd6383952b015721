package vecmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/vecmetrics/distance"
	"github.com/hupe1980/vecmetrics/internal/simd"
)

// Float is the set of supported element types.
type Float = distance.Float

// Evaluator computes metrics for one element type with a uniform
// recoverable error policy: a length mismatch is returned as
// *ErrDimensionMismatch from every method, never a panic.
//
// An Evaluator holds no per-call state and is safe for concurrent use
// as long as its MetricsCollector is.
type Evaluator[T Float] struct {
	logger  *Logger
	metrics MetricsCollector
}

// New creates an Evaluator for element type T.
func New[T Float](optFns ...Option) *Evaluator[T] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	opts.logger.LogCapabilities(context.Background())

	return &Evaluator[T]{
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// DotProduct returns Σ a[i]*b[i].
func (e *Evaluator[T]) DotProduct(a, b []T) (T, error) {
	return e.Distance(distance.MetricDot, a, b)
}

// ManhattanDistance returns Σ |a[i]-b[i]|.
func (e *Evaluator[T]) ManhattanDistance(a, b []T) (T, error) {
	return e.Distance(distance.MetricManhattan, a, b)
}

// EuclideanDistance returns the SQUARED Euclidean distance Σ (a[i]-b[i])².
// Take math.Sqrt of the result for the true distance.
func (e *Evaluator[T]) EuclideanDistance(a, b []T) (T, error) {
	return e.Distance(distance.MetricEuclidean, a, b)
}

// Distance computes metric m over a and b.
func (e *Evaluator[T]) Distance(m distance.Metric, a, b []T) (T, error) {
	start := time.Now()

	var (
		res T
		err error
	)

	switch m {
	case distance.MetricDot:
		if err = distance.SameDimension(a, b); err == nil {
			res = distance.DotProduct(a, b)
		}
	case distance.MetricManhattan:
		if err = distance.SameDimension(a, b); err == nil {
			res = distance.ManhattanDistance(a, b)
		}
	case distance.MetricEuclidean:
		res, err = distance.EuclideanDistance(a, b)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}

	e.metrics.RecordOperation(m, len(a), time.Since(start), err)
	e.logger.LogOperation(context.Background(), m, len(a), err)

	return res, err
}

// ISA returns the name of the kernel family selected at process start
// (generic, neon, sve2, avx2 or avx512).
func ISA() string {
	return simd.ActiveISA().String()
}

// ISAOverridden reports whether VECMETRICS_SIMD selected the kernels.
func ISAOverridden() bool {
	return simd.IsOverridden()
}

// ChunkWidth32 returns the float32 lane count, or 0 on the scalar path.
func ChunkWidth32() int {
	return simd.ChunkWidth32()
}

// ChunkWidth64 returns the float64 lane count, or 0 on the scalar path.
func ChunkWidth64() int {
	return simd.ChunkWidth64()
}
