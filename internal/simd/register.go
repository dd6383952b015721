package simd

// Float is the set of element types the kernels operate on.
type Float interface {
	float32 | float64
}

// register is a fixed-width group of lanes. R is the concrete register type
// itself.
//
// Each lane keeps its own running sum in a local variable, so the lanes form
// independent dependency chains and the CPU can overlap their arithmetic.
// The elementwise step is fused with the accumulation: passing the array
// values through separate add/mul calls would spill every intermediate to
// the stack.
type register[T Float, R any] interface {
	// width is the lane count.
	width() int
	// sum is the horizontal sum of all lanes, left to right.
	sum() T

	// The chunk methods add one elementwise term per element into lane
	// i%width and return the updated register. They consume full chunks
	// only; callers pass a prefix whose length is a multiple of width.
	dotChunks(a, b []T) R       // a*b
	manhattanChunks(a, b []T) R // |a-b|
	squaredL2Chunks(a, b []T) R // (a-b)²
}

// Registers per ISA width: 128-bit (NEON, SVE2), 256-bit (AVX2), 512-bit (AVX-512).
type (
	f32x4  [4]float32
	f32x8  [8]float32
	f32x16 [16]float32
	f64x2  [2]float64
	f64x4  [4]float64
	f64x8  [8]float64
)
