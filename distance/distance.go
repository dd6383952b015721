// Package distance provides the public API for vector metric calculations.
// All functions use the chunked kernels from internal/simd when the CPU
// probe reports AVX2/AVX-512 on x86-64 or NEON/SVE2 on ARM64.
package distance

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmetrics/internal/simd"
)

// Float is the set of supported element types.
type Float = simd.Float

// DotProduct calculates Σ a[i]*b[i].
//
// Panics with a *ErrDimensionMismatch if len(a) != len(b); callers must
// validate lengths first (see SameDimension). Returns 0 for empty vectors.
func DotProduct[T Float](a, b []T) T {
	mustSameDimension(a, b)
	return simd.Dot(a, b)
}

// ManhattanDistance calculates the L1 distance Σ |a[i]-b[i]|.
//
// Panics with a *ErrDimensionMismatch if len(a) != len(b); callers must
// validate lengths first (see SameDimension). Returns 0 for empty vectors.
func ManhattanDistance[T Float](a, b []T) T {
	mustSameDimension(a, b)
	return simd.Manhattan(a, b)
}

// EuclideanDistance calculates the SQUARED Euclidean distance Σ (a[i]-b[i])².
//
// The square root is not taken: callers needing the true Euclidean distance
// must apply math.Sqrt to the result. Returns *ErrDimensionMismatch if
// len(a) != len(b).
func EuclideanDistance[T Float](a, b []T) (T, error) {
	if err := SameDimension(a, b); err != nil {
		return 0, err
	}
	return simd.SquaredL2(a, b), nil
}

// Metrics is the set of operations offered for one element type.
type Metrics[T Float] interface {
	// DotProduct panics on mismatched lengths.
	DotProduct(a, b []T) T
	// ManhattanDistance panics on mismatched lengths.
	ManhattanDistance(a, b []T) T
	// EuclideanDistance returns the squared distance, or *ErrDimensionMismatch.
	EuclideanDistance(a, b []T) (T, error)
}

type metrics[T Float] struct{}

func (metrics[T]) DotProduct(a, b []T) T                 { return DotProduct(a, b) }
func (metrics[T]) ManhattanDistance(a, b []T) T          { return ManhattanDistance(a, b) }
func (metrics[T]) EuclideanDistance(a, b []T) (T, error) { return EuclideanDistance(a, b) }

var (
	// Float32 is the metric set for 32-bit vectors.
	Float32 Metrics[float32] = metrics[float32]{}
	// Float64 is the metric set for 64-bit vectors.
	Float64 Metrics[float64] = metrics[float64]{}
)

// Metric identifies one of the supported metrics.
type Metric int

const (
	// MetricDot is the dot product.
	MetricDot Metric = iota
	// MetricManhattan is the L1 distance.
	MetricManhattan
	// MetricEuclidean is the squared Euclidean distance.
	MetricEuclidean
)

// String returns the metric name, or Unknown(n) for values outside the enum.
func (m Metric) String() string {
	switch m {
	case MetricDot:
		return "Dot"
	case MetricManhattan:
		return "Manhattan"
	case MetricEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ErrUnsupportedMetric is returned by Provider for unknown metrics.
var ErrUnsupportedMetric = errors.New("unsupported metric")

// Func is a metric function with a recoverable length check.
type Func[T Float] func(a, b []T) (T, error)

// Provider returns the function for the given metric.
//
// Unlike DotProduct and ManhattanDistance, every returned Func reports a
// length mismatch as *ErrDimensionMismatch instead of panicking.
// MetricEuclidean yields the squared distance.
func Provider[T Float](m Metric) (Func[T], error) {
	switch m {
	case MetricDot:
		return checked(simd.Dot[T]), nil
	case MetricManhattan:
		return checked(simd.Manhattan[T]), nil
	case MetricEuclidean:
		return EuclideanDistance[T], nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}

func checked[T Float](f func(a, b []T) T) Func[T] {
	return func(a, b []T) (T, error) {
		if err := SameDimension(a, b); err != nil {
			return 0, err
		}
		return f(a, b), nil
	}
}
