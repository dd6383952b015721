// Package distance provides vector metrics with chunked kernels.
//
// On CPUs that report vector extensions the kernels walk the vectors in
// chunks sized to the register width (16/8 lanes for AVX-512, 8/4 for AVX2,
// 4/2 for NEON and SVE2) and keep one running sum per lane:
//   - AVX-512/AVX2 on x86-64
//   - NEON/SVE2 on ARM64
//
// The kernels are portable Go, not assembly. Leftover elements that do not
// fill a chunk are summed with scalar code.
//
// # Supported Metrics
//
//   - MetricDot: Dot product (inner product)
//   - MetricManhattan: L1 distance
//   - MetricEuclidean: Squared Euclidean distance (no square root)
//
// # Length Checks
//
// DotProduct and ManhattanDistance panic on mismatched lengths.
// EuclideanDistance and every Func from Provider return *ErrDimensionMismatch.
//
// # Usage
//
//	dot := distance.DotProduct(a, b)
//	l1 := distance.Float64.ManhattanDistance(x, y)
//	sq, err := distance.EuclideanDistance(a, b)
//	l2 := math.Sqrt(float64(sq))
package distance
