package simd

import "math"

// Scalar reductions. They are the whole scalar path and also sum the tails
// of the chunked path.

func dotScalar[T Float](a, b []T) T {
	var s T
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func manhattanScalar[T Float](a, b []T) T {
	var s T
	for i := range a {
		s += abs(a[i] - b[i])
	}
	return s
}

func squaredL2Scalar[T Float](a, b []T) T {
	var s T
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// operator pairs the lane form and the scalar form of one metric.
type operator[T Float, R any] interface {
	chunks(acc R, a, b []T) R
	scalar(a, b []T) T
}

type dotOp[T Float, R register[T, R]] struct{}

func (dotOp[T, R]) chunks(acc R, a, b []T) R { return acc.dotChunks(a, b) }

func (dotOp[T, R]) scalar(a, b []T) T { return dotScalar(a, b) }

type manhattanOp[T Float, R register[T, R]] struct{}

func (manhattanOp[T, R]) chunks(acc R, a, b []T) R { return acc.manhattanChunks(a, b) }

func (manhattanOp[T, R]) scalar(a, b []T) T { return manhattanScalar(a, b) }

type squaredL2Op[T Float, R register[T, R]] struct{}

func (squaredL2Op[T, R]) chunks(acc R, a, b []T) R { return acc.squaredL2Chunks(a, b) }

func (squaredL2Op[T, R]) scalar(a, b []T) T { return squaredL2Scalar(a, b) }

// reduceChunked sums the metric O over a and b using registers of type R.
//
// Full chunks are accumulated lane-wise into a zero register which is then
// summed horizontally. The len(a)%width tail is summed with the scalar form
// and added last. Assumes len(a) == len(b).
func reduceChunked[T Float, R register[T, R], O operator[T, R]](a, b []T) T {
	var (
		acc R
		op  O
	)
	n := len(a) - len(a)%acc.width()

	// The tail goes first so that a short b panics before any chunk is read.
	tail := op.scalar(a[n:], b[n:])

	return op.chunks(acc, a[:n], b[:n]).sum() + tail
}
