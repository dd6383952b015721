package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISAString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "neon", NEON.String())
	assert.Equal(t, "sve2", SVE2.String())
	assert.Equal(t, "avx2", AVX2.String())
	assert.Equal(t, "avx512", AVX512.String())
	assert.Equal(t, "unknown", ISA(42).String())
}

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{" AVX512 ", AVX512, true},
		{"Avx2", AVX2, true},
		{"neon", NEON, true},
		{"sve2", SVE2, true},
		{"sse4", Generic, false},
		{"", Generic, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseISA(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestResolveISA(t *testing.T) {
	t.Run("GenericOverrideAlwaysAvailable", func(t *testing.T) {
		isa, overridden := resolveISA(Config{SIMD: "generic"})
		assert.Equal(t, Generic, isa)
		assert.Equal(t, !forceGeneric, overridden)
	})

	t.Run("InvalidOverrideFallsBack", func(t *testing.T) {
		isa, overridden := resolveISA(Config{SIMD: "mmx"})
		assert.False(t, overridden)
		if forceGeneric {
			assert.Equal(t, Generic, isa)
		} else {
			assert.Equal(t, selectBestISA(), isa)
		}
	})

	t.Run("ResultIsAvailable", func(t *testing.T) {
		isa, _ := resolveISA(Config{})
		assert.True(t, isISAAvailable(isa))
	})
}

func TestChunkWidths(t *testing.T) {
	tests := []struct {
		isa      ISA
		w32, w64 int
	}{
		{Generic, 0, 0},
		{NEON, 4, 2},
		{SVE2, 4, 2},
		{AVX2, 8, 4},
		{AVX512, 16, 8},
	}
	for _, tc := range tests {
		t.Run(tc.isa.String(), func(t *testing.T) {
			w32, w64 := chunkWidths(tc.isa)
			assert.Equal(t, tc.w32, w32)
			assert.Equal(t, tc.w64, w64)
			// 32-bit lanes are twice as many as 64-bit lanes in the same register.
			assert.Equal(t, 2*w64, w32)
		})
	}

	w32, w64 := chunkWidths(ActiveISA())
	assert.Equal(t, w32, ChunkWidth32())
	assert.Equal(t, w64, ChunkWidth64())
}

func TestActiveISAAvailable(t *testing.T) {
	assert.True(t, isISAAvailable(ActiveISA()))
	if forceGeneric {
		assert.Equal(t, Generic, ActiveISA())
	}
}
