// Package testutil provides testing utilities for vecmetrics.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors and computing exact
// reference metrics to compare kernels against.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	a, b := testutil.UniformPair[float32](rng, 128) // uniform [-1, 1)
//	g := testutil.Gaussian[float64](rng, 128)       // standard normal
//
// # Ground Truth
//
//	ref := testutil.Exact(a, b) // float64 element-by-element sums
//	testutil.AssertClose(t, ref.Dot, got, ref.Scale(), testutil.Tolerance32)
package testutil
