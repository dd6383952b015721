package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniform(t *testing.T) {
	rng := NewRNG(4711)

	v := Uniform[float32](rng, 32)

	assert.Equal(t, 32, len(v))
	for _, x := range v {
		assert.Less(t, x, float32(1.0))
		assert.GreaterOrEqual(t, x, float32(-1.0))
	}
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float64, 64)
	FillUniformRange(rng, v, 2, 3)
	for _, x := range v {
		assert.Less(t, x, 3.0)
		assert.GreaterOrEqual(t, x, 2.0)
	}
}

func TestGaussian(t *testing.T) {
	rng := NewRNG(4711)

	v := Gaussian[float64](rng, 4096)

	var mean float64
	for _, x := range v {
		mean += x
	}
	mean /= float64(len(v))
	assert.InDelta(t, 0, mean, 0.1)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a1, b1 := UniformPair[float32](rng, 10)

	rng.Reset()
	a2, b2 := UniformPair[float32](rng, 10)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestExact(t *testing.T) {
	ref := Exact([]float32{1, 2, 3}, []float32{4, 5, 6})

	assert.Equal(t, 32.0, ref.Dot)
	assert.Equal(t, 32.0, ref.AbsDot)
	assert.Equal(t, 9.0, ref.Manhattan)
	assert.Equal(t, 27.0, ref.SquaredL2)

	ref = Exact([]float64{1, -1}, []float64{1, 1})
	assert.Equal(t, 0.0, ref.Dot)
	assert.Equal(t, 2.0, ref.AbsDot)

	assert.Equal(t, Reference{}, Exact[float64](nil, nil))
}

func TestAssertClose(t *testing.T) {
	assert.True(t, AssertClose(t, 100.0, float32(100.0005), 100, Tolerance32))

	mock := &mockT{}
	assert.False(t, AssertClose(mock, 1.0, 1.1, 1, Tolerance64))
	assert.True(t, mock.failed)
}

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(string, ...any) {
	m.failed = true
}
