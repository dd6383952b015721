// Package vecmetrics computes dot product, Manhattan (L1) distance and
// squared Euclidean (L2) distance over pairs of float32 or float64 vectors.
//
// When the CPU reports vector extensions (AVX-512, AVX2, NEON, SVE2),
// vectors are processed in chunks sized to that register width, with one
// running sum per lane and any leftover tail summed by scalar code. The
// chunked kernels are portable Go, not assembly. Without those extensions,
// or when built with -tags purego, a scalar loop is used. Both paths agree
// within floating-point summation-order tolerance.
//
// # Quick Start
//
// The distance package exposes the raw primitives:
//
//	dot := distance.DotProduct(a, b)           // panics on length mismatch
//	l1 := distance.ManhattanDistance(a, b)     // panics on length mismatch
//	sq, err := distance.EuclideanDistance(a, b) // squared, error on mismatch
//
// An Evaluator reports mismatches as errors for every metric and adds
// logging and metrics:
//
//	ev := vecmetrics.New[float32](
//	    vecmetrics.WithLogger(vecmetrics.NewTextLogger(slog.LevelDebug)),
//	    vecmetrics.WithMetricsCollector(&vecmetrics.BasicMetricsCollector{}),
//	)
//	dot, err := ev.DotProduct(a, b)
//
// # Squared Euclidean Distance
//
// EuclideanDistance returns Σ (a[i]-b[i])² without the square root.
// Apply math.Sqrt when the true distance is needed.
//
// # Configuration
//
// VECMETRICS_SIMD=generic|neon|sve2|avx2|avx512 overrides CPU detection
// at process start. Unavailable values are ignored.
package vecmetrics
