package simd

import "math"

func (f64x2) width() int { return 2 }

func (v f64x2) sum() float64 {
	return v[0] + v[1]
}

func (v f64x2) dotChunks(a, b []float64) f64x2 {
	s0, s1 := v[0], v[1]
	for ; len(a) >= 2; a, b = a[2:], b[2:] {
		x, y := (*[2]float64)(a), (*[2]float64)(b)
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
	}
	return f64x2{s0, s1}
}

func (v f64x2) manhattanChunks(a, b []float64) f64x2 {
	s0, s1 := v[0], v[1]
	for ; len(a) >= 2; a, b = a[2:], b[2:] {
		x, y := (*[2]float64)(a), (*[2]float64)(b)
		s0 += math.Abs(x[0] - y[0])
		s1 += math.Abs(x[1] - y[1])
	}
	return f64x2{s0, s1}
}

func (v f64x2) squaredL2Chunks(a, b []float64) f64x2 {
	s0, s1 := v[0], v[1]
	for ; len(a) >= 2; a, b = a[2:], b[2:] {
		x, y := (*[2]float64)(a), (*[2]float64)(b)
		s0 += (x[0] - y[0]) * (x[0] - y[0])
		s1 += (x[1] - y[1]) * (x[1] - y[1])
	}
	return f64x2{s0, s1}
}

func (f64x4) width() int { return 4 }

func (v f64x4) sum() float64 {
	return v[0] + v[1] + v[2] + v[3]
}

func (v f64x4) dotChunks(a, b []float64) f64x4 {
	s0, s1, s2, s3 := v[0], v[1], v[2], v[3]
	for ; len(a) >= 4; a, b = a[4:], b[4:] {
		x, y := (*[4]float64)(a), (*[4]float64)(b)
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
	}
	return f64x4{s0, s1, s2, s3}
}

func (v f64x4) manhattanChunks(a, b []float64) f64x4 {
	s0, s1, s2, s3 := v[0], v[1], v[2], v[3]
	for ; len(a) >= 4; a, b = a[4:], b[4:] {
		x, y := (*[4]float64)(a), (*[4]float64)(b)
		s0 += math.Abs(x[0] - y[0])
		s1 += math.Abs(x[1] - y[1])
		s2 += math.Abs(x[2] - y[2])
		s3 += math.Abs(x[3] - y[3])
	}
	return f64x4{s0, s1, s2, s3}
}

func (v f64x4) squaredL2Chunks(a, b []float64) f64x4 {
	s0, s1, s2, s3 := v[0], v[1], v[2], v[3]
	for ; len(a) >= 4; a, b = a[4:], b[4:] {
		x, y := (*[4]float64)(a), (*[4]float64)(b)
		s0 += (x[0] - y[0]) * (x[0] - y[0])
		s1 += (x[1] - y[1]) * (x[1] - y[1])
		s2 += (x[2] - y[2]) * (x[2] - y[2])
		s3 += (x[3] - y[3]) * (x[3] - y[3])
	}
	return f64x4{s0, s1, s2, s3}
}

func (f64x8) width() int { return 8 }

func (v f64x8) sum() float64 {
	return v[0] + v[1] + v[2] + v[3] + v[4] + v[5] + v[6] + v[7]
}

func (v f64x8) dotChunks(a, b []float64) f64x8 {
	s0, s1, s2, s3, s4, s5, s6, s7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		x, y := (*[8]float64)(a), (*[8]float64)(b)
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
		s4 += x[4] * y[4]
		s5 += x[5] * y[5]
		s6 += x[6] * y[6]
		s7 += x[7] * y[7]
	}
	return f64x8{s0, s1, s2, s3, s4, s5, s6, s7}
}

func (v f64x8) manhattanChunks(a, b []float64) f64x8 {
	s0, s1, s2, s3, s4, s5, s6, s7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		x, y := (*[8]float64)(a), (*[8]float64)(b)
		s0 += math.Abs(x[0] - y[0])
		s1 += math.Abs(x[1] - y[1])
		s2 += math.Abs(x[2] - y[2])
		s3 += math.Abs(x[3] - y[3])
		s4 += math.Abs(x[4] - y[4])
		s5 += math.Abs(x[5] - y[5])
		s6 += math.Abs(x[6] - y[6])
		s7 += math.Abs(x[7] - y[7])
	}
	return f64x8{s0, s1, s2, s3, s4, s5, s6, s7}
}

func (v f64x8) squaredL2Chunks(a, b []float64) f64x8 {
	s0, s1, s2, s3, s4, s5, s6, s7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		x, y := (*[8]float64)(a), (*[8]float64)(b)
		s0 += (x[0] - y[0]) * (x[0] - y[0])
		s1 += (x[1] - y[1]) * (x[1] - y[1])
		s2 += (x[2] - y[2]) * (x[2] - y[2])
		s3 += (x[3] - y[3]) * (x[3] - y[3])
		s4 += (x[4] - y[4]) * (x[4] - y[4])
		s5 += (x[5] - y[5]) * (x[5] - y[5])
		s6 += (x[6] - y[6]) * (x[6] - y[6])
		s7 += (x[7] - y[7]) * (x[7] - y[7])
	}
	return f64x8{s0, s1, s2, s3, s4, s5, s6, s7}
}
