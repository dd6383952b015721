package vecmetrics

import "github.com/hupe1980/vecmetrics/distance"

// ErrDimensionMismatch indicates two vectors of different lengths.
// Match it with errors.As.
type ErrDimensionMismatch = distance.ErrDimensionMismatch

// ErrUnsupportedMetric is returned by Evaluator.Distance for unknown metrics.
var ErrUnsupportedMetric = distance.ErrUnsupportedMetric
