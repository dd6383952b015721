package distance

import "fmt"

// ErrDimensionMismatch indicates two vectors of different lengths.
type ErrDimensionMismatch struct {
	Left  int
	Right int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %d != %d", e.Left, e.Right)
}

// SameDimension returns nil if a and b have equal length and
// *ErrDimensionMismatch otherwise.
func SameDimension[T Float](a, b []T) error {
	if len(a) != len(b) {
		return &ErrDimensionMismatch{Left: len(a), Right: len(b)}
	}
	return nil
}

func mustSameDimension[T Float](a, b []T) {
	if err := SameDimension(a, b); err != nil {
		panic(err)
	}
}
