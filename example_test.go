package vecmetrics_test

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecmetrics"
	"github.com/hupe1980/vecmetrics/distance"
)

func Example() {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}

	dot := distance.DotProduct(a, b)
	l1 := distance.ManhattanDistance(a, b)
	sq, _ := distance.EuclideanDistance(a, b)

	fmt.Println(dot, l1, sq, math.Sqrt(float64(sq)) > 5)
	// Output: 32 9 27 true
}

func ExampleEvaluator() {
	mc := &vecmetrics.BasicMetricsCollector{}
	ev := vecmetrics.New[float64](vecmetrics.WithMetricsCollector(mc))

	if _, err := ev.DotProduct([]float64{1, 2, 3}, []float64{1, 2}); err != nil {
		fmt.Println(err)
	}

	fmt.Println(mc.GetStats().MismatchCount)
	// Output:
	// dimension mismatch: 3 != 2
	// 1
}
