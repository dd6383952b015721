package vecmetrics

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmetrics/distance"
)

func TestEvaluator(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}

	ev := New[float32]()

	dot, err := ev.DotProduct(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 32, dot, 1e-5)

	l1, err := ev.ManhattanDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 9, l1, 1e-5)

	sq, err := ev.EuclideanDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 27, sq, 1e-5)
	assert.InDelta(t, math.Sqrt(27), math.Sqrt(float64(sq)), 1e-5)
}

func TestEvaluatorEmpty(t *testing.T) {
	ev := New[float64]()
	for _, m := range []distance.Metric{distance.MetricDot, distance.MetricManhattan, distance.MetricEuclidean} {
		got, err := ev.Distance(m, nil, []float64{})
		require.NoError(t, err, m.String())
		assert.Zero(t, got, m.String())
	}
}

func TestEvaluatorMismatch(t *testing.T) {
	mc := &BasicMetricsCollector{}
	ev := New[float64](WithMetricsCollector(mc))

	a := []float64{1, 2, 3, 4}
	b := []float64{1, 2}

	for _, m := range []distance.Metric{distance.MetricDot, distance.MetricManhattan, distance.MetricEuclidean} {
		t.Run(m.String(), func(t *testing.T) {
			var (
				got float64
				err error
			)
			assert.NotPanics(t, func() { got, err = ev.Distance(m, a, b) })
			assert.Zero(t, got)

			var dm *ErrDimensionMismatch
			require.ErrorAs(t, err, &dm)
			assert.Equal(t, 4, dm.Left)
			assert.Equal(t, 2, dm.Right)
		})
	}

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.MismatchCount)
	assert.Equal(t, int64(0), stats.ElementsTotal)
}

func TestEvaluatorUnsupportedMetric(t *testing.T) {
	mc := &BasicMetricsCollector{}
	ev := New[float32](WithMetricsCollector(mc))

	_, err := ev.Distance(distance.Metric(42), nil, nil)
	assert.ErrorIs(t, err, ErrUnsupportedMetric)
	assert.Equal(t, int64(0), mc.GetStats().MismatchCount)
}

func TestEvaluatorMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	ev := New[float32](WithMetricsCollector(mc))

	v := make([]float32, 100)
	_, _ = ev.DotProduct(v, v)
	_, _ = ev.DotProduct(v, v)
	_, _ = ev.ManhattanDistance(v, v)
	_, _ = ev.EuclideanDistance(v, v[:10])

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.DotCount)
	assert.Equal(t, int64(1), stats.ManhattanCount)
	assert.Equal(t, int64(1), stats.EuclideanCount)
	assert.Equal(t, int64(1), stats.MismatchCount)
	assert.Equal(t, int64(300), stats.ElementsTotal)
	assert.GreaterOrEqual(t, stats.AvgNanos, int64(0))
}

func TestEvaluatorConcurrent(t *testing.T) {
	mc := &BasicMetricsCollector{}
	ev := New[float64](WithMetricsCollector(mc))

	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got, err := ev.ManhattanDistance(a, b)
				assert.NoError(t, err)
				assert.Equal(t, 40.0, got)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), mc.GetStats().ManhattanCount)
}

func TestEvaluatorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ev := New[float32](WithLogger(logger))
	assert.Contains(t, buf.String(), "vector kernels selected")
	assert.Contains(t, buf.String(), "isa="+ISA())

	buf.Reset()
	_, err := ev.EuclideanDistance([]float32{1}, []float32{1, 2})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "metric=Euclidean")
	assert.Contains(t, buf.String(), "dimension=1")

	buf.Reset()
	_, err = ev.DotProduct([]float32{1, 2}, []float32{3, 4})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "metric computed")
	assert.Contains(t, buf.String(), "metric=Dot")
}

func TestOptionsNil(t *testing.T) {
	ev := New[float32](WithLogger(nil), WithMetricsCollector(nil))
	got, err := ev.DotProduct([]float32{2}, []float32{3})
	require.NoError(t, err)
	assert.Equal(t, float32(6), got)
}

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	logger.WithDimension(768).WithMetric(distance.MetricManhattan).Info("hello")
	assert.Contains(t, buf.String(), `"dimension":768`)
	assert.Contains(t, buf.String(), `"metric":"Manhattan"`)

	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
	assert.False(t, NoopLogger().Enabled(t.Context(), slog.LevelError))
}

func TestCapabilities(t *testing.T) {
	assert.Contains(t, []string{"generic", "neon", "sve2", "avx2", "avx512"}, ISA())
	if ISA() == "generic" {
		assert.Zero(t, ChunkWidth32())
		assert.Zero(t, ChunkWidth64())
	} else {
		assert.Equal(t, 2*ChunkWidth64(), ChunkWidth32())
	}
}
