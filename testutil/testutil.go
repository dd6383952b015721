package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/stretchr/testify/assert"
)

// Float is the set of element types the generators produce.
type Float interface {
	float32 | float64
}

// Relative tolerances for comparing chunked and scalar summation orders.
const (
	Tolerance32 = 1e-5
	Tolerance64 = 1e-9
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call.
func FillUniformRange[T Float](r *RNG, dst []T, minVal, maxVal T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + T(r.rand.Float64())*span
	}
}

// Uniform generates a vector with values in range [-1, 1).
func Uniform[T Float](r *RNG, dimensions int) []T {
	vec := make([]T, dimensions)
	FillUniformRange(r, vec, -1, 1)
	return vec
}

// UniformPair generates two vectors of equal length with values in [-1, 1).
func UniformPair[T Float](r *RNG, dimensions int) ([]T, []T) {
	return Uniform[T](r, dimensions), Uniform[T](r, dimensions)
}

// Gaussian generates a vector with values from a standard normal distribution.
func Gaussian[T Float](r *RNG, dimensions int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]T, dimensions)
	for i := range vec {
		vec[i] = T(r.rand.NormFloat64())
	}
	return vec
}

// Reference holds metrics computed element by element in float64.
type Reference struct {
	Dot       float64
	Manhattan float64
	SquaredL2 float64
	// AbsDot is Σ |a[i]*b[i]|, the magnitude that bounds rounding in Dot.
	AbsDot float64
}

// Exact computes the reference metrics for a and b. Assumes len(a) == len(b).
func Exact[T Float](a, b []T) Reference {
	var ref Reference
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		ref.Dot += x * y
		ref.AbsDot += math.Abs(x * y)
		ref.Manhattan += math.Abs(x - y)
		ref.SquaredL2 += (x - y) * (x - y)
	}
	return ref
}

// AssertClose asserts |want-got| <= rel*max(1, |scale|).
//
// scale should be the magnitude of the summed terms (for example
// Reference.AbsDot), not the possibly cancelled result.
func AssertClose[W, G Float](t assert.TestingT, want W, got G, scale float64, rel float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(want), float64(got), rel*math.Max(1, math.Abs(scale)), msgAndArgs...)
}
