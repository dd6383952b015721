// Package simd provides chunked vector metric kernels.
//
// The chunked kernels are portable Go. A register is a fixed-size array
// whose lanes each keep an independent running sum in a local variable,
// unrolled at fixed indices. The compiler does not emit vector instructions
// for them; the gain over the scalar loop comes from breaking its single
// floating-point add chain into one chain per lane.
//
// # Lane Widths
//
//   - x86-64: AVX-512 (16×f32, 8×f64 lanes), AVX2 (8×f32, 4×f64 lanes)
//   - ARM64: NEON, SVE2 (4×f32, 2×f64 lanes)
//
// A one-time CPU probe at package init selects the lane width.
// Set VECMETRICS_SIMD to override it, or build with -tags purego to force
// the scalar path.
//
// # Operations
//
//   - Dot: Σ a[i]*b[i]
//   - Manhattan: Σ |a[i]-b[i]|
//   - SquaredL2: Σ (a[i]-b[i])²
//
// Chunked and scalar paths sum in different orders, so results may differ
// in the last bits. Callers and tests must compare with a tolerance.
package simd
