//go:build !purego

package simd

const forceGeneric = false
