package simd

// kernels is the dispatch table for one element type.
type kernels[T Float] struct {
	dot       func(a, b []T) T
	manhattan func(a, b []T) T
	squaredL2 func(a, b []T) T
}

var (
	f32Kernels = scalarKernels[float32]()
	f64Kernels = scalarKernels[float64]()
)

func scalarKernels[T Float]() kernels[T] {
	return kernels[T]{
		dot:       dotScalar[T],
		manhattan: manhattanScalar[T],
		squaredL2: squaredL2Scalar[T],
	}
}

func chunkedKernels[T Float, R register[T, R]]() kernels[T] {
	return kernels[T]{
		dot:       reduceChunked[T, R, dotOp[T, R]],
		manhattan: reduceChunked[T, R, manhattanOp[T, R]],
		squaredL2: reduceChunked[T, R, squaredL2Op[T, R]],
	}
}

// installKernels selects the dispatch tables for isa. Called once from init.
func installKernels(isa ISA) {
	switch isa {
	case AVX512:
		f32Kernels = chunkedKernels[float32, f32x16]()
		f64Kernels = chunkedKernels[float64, f64x8]()
	case AVX2:
		f32Kernels = chunkedKernels[float32, f32x8]()
		f64Kernels = chunkedKernels[float64, f64x4]()
	case NEON, SVE2:
		f32Kernels = chunkedKernels[float32, f32x4]()
		f64Kernels = chunkedKernels[float64, f64x2]()
	default:
		f32Kernels = scalarKernels[float32]()
		f64Kernels = scalarKernels[float64]()
	}
}

func kernelsFor[T Float]() *kernels[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(&f32Kernels).(*kernels[T])
	default:
		return any(&f64Kernels).(*kernels[T])
	}
}

// Dot calculates the dot product of two vectors.
//
// SAFETY: This function assumes len(a) == len(b).
// Callers MUST ensure lengths match; longer b is silently truncated and
// shorter b panics.
func Dot[T Float](a, b []T) T {
	return kernelsFor[T]().dot(a, b)
}

// Manhattan calculates the L1 distance Σ |a[i]-b[i]|.
//
// SAFETY: This function assumes len(a) == len(b).
func Manhattan[T Float](a, b []T) T {
	return kernelsFor[T]().manhattan(a, b)
}

// SquaredL2 calculates the squared L2 distance Σ (a[i]-b[i])².
// No square root is taken.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredL2[T Float](a, b []T) T {
	return kernelsFor[T]().squaredL2(a, b)
}
