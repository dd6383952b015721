package simd

import "math"

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func (f32x4) width() int { return 4 }

func (v f32x4) sum() float32 {
	return v[0] + v[1] + v[2] + v[3]
}

func (v f32x4) dotChunks(a, b []float32) f32x4 {
	s0, s1, s2, s3 := v[0], v[1], v[2], v[3]
	for ; len(a) >= 4; a, b = a[4:], b[4:] {
		x, y := (*[4]float32)(a), (*[4]float32)(b)
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
	}
	return f32x4{s0, s1, s2, s3}
}

func (v f32x4) manhattanChunks(a, b []float32) f32x4 {
	s0, s1, s2, s3 := v[0], v[1], v[2], v[3]
	for ; len(a) >= 4; a, b = a[4:], b[4:] {
		x, y := (*[4]float32)(a), (*[4]float32)(b)
		s0 += abs32(x[0] - y[0])
		s1 += abs32(x[1] - y[1])
		s2 += abs32(x[2] - y[2])
		s3 += abs32(x[3] - y[3])
	}
	return f32x4{s0, s1, s2, s3}
}

func (v f32x4) squaredL2Chunks(a, b []float32) f32x4 {
	s0, s1, s2, s3 := v[0], v[1], v[2], v[3]
	for ; len(a) >= 4; a, b = a[4:], b[4:] {
		x, y := (*[4]float32)(a), (*[4]float32)(b)
		s0 += (x[0] - y[0]) * (x[0] - y[0])
		s1 += (x[1] - y[1]) * (x[1] - y[1])
		s2 += (x[2] - y[2]) * (x[2] - y[2])
		s3 += (x[3] - y[3]) * (x[3] - y[3])
	}
	return f32x4{s0, s1, s2, s3}
}

func (f32x8) width() int { return 8 }

func (v f32x8) sum() float32 {
	return v[0] + v[1] + v[2] + v[3] + v[4] + v[5] + v[6] + v[7]
}

func (v f32x8) dotChunks(a, b []float32) f32x8 {
	s0, s1, s2, s3, s4, s5, s6, s7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		x, y := (*[8]float32)(a), (*[8]float32)(b)
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
		s4 += x[4] * y[4]
		s5 += x[5] * y[5]
		s6 += x[6] * y[6]
		s7 += x[7] * y[7]
	}
	return f32x8{s0, s1, s2, s3, s4, s5, s6, s7}
}

func (v f32x8) manhattanChunks(a, b []float32) f32x8 {
	s0, s1, s2, s3, s4, s5, s6, s7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		x, y := (*[8]float32)(a), (*[8]float32)(b)
		s0 += abs32(x[0] - y[0])
		s1 += abs32(x[1] - y[1])
		s2 += abs32(x[2] - y[2])
		s3 += abs32(x[3] - y[3])
		s4 += abs32(x[4] - y[4])
		s5 += abs32(x[5] - y[5])
		s6 += abs32(x[6] - y[6])
		s7 += abs32(x[7] - y[7])
	}
	return f32x8{s0, s1, s2, s3, s4, s5, s6, s7}
}

func (v f32x8) squaredL2Chunks(a, b []float32) f32x8 {
	s0, s1, s2, s3, s4, s5, s6, s7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		x, y := (*[8]float32)(a), (*[8]float32)(b)
		s0 += (x[0] - y[0]) * (x[0] - y[0])
		s1 += (x[1] - y[1]) * (x[1] - y[1])
		s2 += (x[2] - y[2]) * (x[2] - y[2])
		s3 += (x[3] - y[3]) * (x[3] - y[3])
		s4 += (x[4] - y[4]) * (x[4] - y[4])
		s5 += (x[5] - y[5]) * (x[5] - y[5])
		s6 += (x[6] - y[6]) * (x[6] - y[6])
		s7 += (x[7] - y[7]) * (x[7] - y[7])
	}
	return f32x8{s0, s1, s2, s3, s4, s5, s6, s7}
}

func (f32x16) width() int { return 16 }

func (v f32x16) sum() float32 {
	return v[0] + v[1] + v[2] + v[3] + v[4] + v[5] + v[6] + v[7] + v[8] + v[9] + v[10] + v[11] + v[12] + v[13] + v[14] + v[15]
}

func (v f32x16) dotChunks(a, b []float32) f32x16 {
	s0, s1, s2, s3, s4, s5, s6, s7, s8, s9, s10, s11, s12, s13, s14, s15 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9], v[10], v[11], v[12], v[13], v[14], v[15]
	for ; len(a) >= 16; a, b = a[16:], b[16:] {
		x, y := (*[16]float32)(a), (*[16]float32)(b)
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
		s4 += x[4] * y[4]
		s5 += x[5] * y[5]
		s6 += x[6] * y[6]
		s7 += x[7] * y[7]
		s8 += x[8] * y[8]
		s9 += x[9] * y[9]
		s10 += x[10] * y[10]
		s11 += x[11] * y[11]
		s12 += x[12] * y[12]
		s13 += x[13] * y[13]
		s14 += x[14] * y[14]
		s15 += x[15] * y[15]
	}
	return f32x16{s0, s1, s2, s3, s4, s5, s6, s7, s8, s9, s10, s11, s12, s13, s14, s15}
}

func (v f32x16) manhattanChunks(a, b []float32) f32x16 {
	s0, s1, s2, s3, s4, s5, s6, s7, s8, s9, s10, s11, s12, s13, s14, s15 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9], v[10], v[11], v[12], v[13], v[14], v[15]
	for ; len(a) >= 16; a, b = a[16:], b[16:] {
		x, y := (*[16]float32)(a), (*[16]float32)(b)
		s0 += abs32(x[0] - y[0])
		s1 += abs32(x[1] - y[1])
		s2 += abs32(x[2] - y[2])
		s3 += abs32(x[3] - y[3])
		s4 += abs32(x[4] - y[4])
		s5 += abs32(x[5] - y[5])
		s6 += abs32(x[6] - y[6])
		s7 += abs32(x[7] - y[7])
		s8 += abs32(x[8] - y[8])
		s9 += abs32(x[9] - y[9])
		s10 += abs32(x[10] - y[10])
		s11 += abs32(x[11] - y[11])
		s12 += abs32(x[12] - y[12])
		s13 += abs32(x[13] - y[13])
		s14 += abs32(x[14] - y[14])
		s15 += abs32(x[15] - y[15])
	}
	return f32x16{s0, s1, s2, s3, s4, s5, s6, s7, s8, s9, s10, s11, s12, s13, s14, s15}
}

func (v f32x16) squaredL2Chunks(a, b []float32) f32x16 {
	s0, s1, s2, s3, s4, s5, s6, s7, s8, s9, s10, s11, s12, s13, s14, s15 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9], v[10], v[11], v[12], v[13], v[14], v[15]
	for ; len(a) >= 16; a, b = a[16:], b[16:] {
		x, y := (*[16]float32)(a), (*[16]float32)(b)
		s0 += (x[0] - y[0]) * (x[0] - y[0])
		s1 += (x[1] - y[1]) * (x[1] - y[1])
		s2 += (x[2] - y[2]) * (x[2] - y[2])
		s3 += (x[3] - y[3]) * (x[3] - y[3])
		s4 += (x[4] - y[4]) * (x[4] - y[4])
		s5 += (x[5] - y[5]) * (x[5] - y[5])
		s6 += (x[6] - y[6]) * (x[6] - y[6])
		s7 += (x[7] - y[7]) * (x[7] - y[7])
		s8 += (x[8] - y[8]) * (x[8] - y[8])
		s9 += (x[9] - y[9]) * (x[9] - y[9])
		s10 += (x[10] - y[10]) * (x[10] - y[10])
		s11 += (x[11] - y[11]) * (x[11] - y[11])
		s12 += (x[12] - y[12]) * (x[12] - y[12])
		s13 += (x[13] - y[13]) * (x[13] - y[13])
		s14 += (x[14] - y[14]) * (x[14] - y[14])
		s15 += (x[15] - y[15]) * (x[15] - y[15])
	}
	return f32x16{s0, s1, s2, s3, s4, s5, s6, s7, s8, s9, s10, s11, s12, s13, s14, s15}
}
