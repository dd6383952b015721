//go:build purego

package simd

// forceGeneric pins the scalar kernels regardless of CPU features.
const forceGeneric = true
