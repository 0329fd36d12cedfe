package mat

import (
	"math"

	"github.com/cwbudde/algo-linalg/vec"
)

// Inverse2 returns the inverse of m, or ErrSingular when the
// determinant is zero.
func Inverse2[T vec.Float](m Mat2[T]) (Mat2[T], error) {
	det := m.Det()
	if det == 0 {
		return Mat2[T]{}, ErrSingular
	}
	inv := 1 / det
	return Mat2[T]{
		m[3] * inv, -m[1] * inv,
		-m[2] * inv, m[0] * inv,
	}, nil
}

// Inverse3 returns the inverse of m by the adjugate method, or
// ErrSingular when the determinant is zero.
func Inverse3[T vec.Float](m Mat3[T]) (Mat3[T], error) {
	a00, a10, a20 := m[0], m[1], m[2]
	a01, a11, a21 := m[3], m[4], m[5]
	a02, a12, a22 := m[6], m[7], m[8]

	b00 := a11*a22 - a12*a21
	b10 := a12*a20 - a10*a22
	b20 := a10*a21 - a11*a20

	det := a00*b00 + a01*b10 + a02*b20
	if det == 0 {
		return Mat3[T]{}, ErrSingular
	}
	inv := 1 / det

	return Mat3[T]{
		b00 * inv, b10 * inv, b20 * inv,
		(a02*a21 - a01*a22) * inv, (a00*a22 - a02*a20) * inv, (a01*a20 - a00*a21) * inv,
		(a01*a12 - a02*a11) * inv, (a02*a10 - a00*a12) * inv, (a00*a11 - a01*a10) * inv,
	}, nil
}

// Inverse4 returns the inverse of m from its 2x2 sub-determinants, or
// ErrSingular when the determinant is zero.
func Inverse4[T vec.Float](m Mat4[T]) (Mat4[T], error) {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subDets()

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Mat4[T]{}, ErrSingular
	}
	inv := 1 / det

	a00, a10, a20, a30 := m[0], m[1], m[2], m[3]
	a01, a11, a21, a31 := m[4], m[5], m[6], m[7]
	a02, a12, a22, a32 := m[8], m[9], m[10], m[11]
	a03, a13, a23, a33 := m[12], m[13], m[14], m[15]

	var out Mat4[T]
	// Column 0.
	out[0] = (a11*c5 - a12*c4 + a13*c3) * inv
	out[1] = (-a10*c5 + a12*c2 - a13*c1) * inv
	out[2] = (a10*c4 - a11*c2 + a13*c0) * inv
	out[3] = (-a10*c3 + a11*c1 - a12*c0) * inv
	// Column 1.
	out[4] = (-a01*c5 + a02*c4 - a03*c3) * inv
	out[5] = (a00*c5 - a02*c2 + a03*c1) * inv
	out[6] = (-a00*c4 + a01*c2 - a03*c0) * inv
	out[7] = (a00*c3 - a01*c1 + a02*c0) * inv
	// Column 2.
	out[8] = (a31*s5 - a32*s4 + a33*s3) * inv
	out[9] = (-a30*s5 + a32*s2 - a33*s1) * inv
	out[10] = (a30*s4 - a31*s2 + a33*s0) * inv
	out[11] = (-a30*s3 + a31*s1 - a32*s0) * inv
	// Column 3.
	out[12] = (-a21*s5 + a22*s4 - a23*s3) * inv
	out[13] = (a20*s5 - a22*s2 + a23*s1) * inv
	out[14] = (-a20*s4 + a21*s2 - a23*s0) * inv
	out[15] = (a20*s3 - a21*s1 + a22*s0) * inv

	return out, nil
}

func almostEqualT[T vec.Float](a, b, tol T) bool {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// AlmostEqual2 reports whether m and a agree element-wise within the
// absolute tolerance tol.
func AlmostEqual2[T vec.Float](m, a Mat2[T], tol T) bool {
	for i := range m {
		if !almostEqualT(m[i], a[i], tol) {
			return false
		}
	}
	return true
}

// AlmostEqual3 reports whether m and a agree element-wise within the
// absolute tolerance tol.
func AlmostEqual3[T vec.Float](m, a Mat3[T], tol T) bool {
	for i := range m {
		if !almostEqualT(m[i], a[i], tol) {
			return false
		}
	}
	return true
}

// AlmostEqual4 reports whether m and a agree element-wise within the
// absolute tolerance tol.
func AlmostEqual4[T vec.Float](m, a Mat4[T], tol T) bool {
	for i := range m {
		if !almostEqualT(m[i], a[i], tol) {
			return false
		}
	}
	return true
}
