package mat

import "github.com/cwbudde/algo-linalg/vec"

// Mat4 is a 4x4 matrix in column-major order:
// element (r, c) is stored at index c*4 + r.
type Mat4[T vec.Scalar] [16]T

// Identity4 returns the 4x4 identity matrix.
func Identity4[T vec.Scalar]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromCols4 builds a matrix from column vectors.
func FromCols4[T vec.Scalar](c0, c1, c2, c3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{
		c0[0], c0[1], c0[2], c0[3],
		c1[0], c1[1], c1[2], c1[3],
		c2[0], c2[1], c2[2], c2[3],
		c3[0], c3[1], c3[2], c3[3],
	}
}

// FromRows4 builds a matrix from row vectors.
func FromRows4[T vec.Scalar](r0, r1, r2, r3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{
		r0[0], r1[0], r2[0], r3[0],
		r0[1], r1[1], r2[1], r3[1],
		r0[2], r1[2], r2[2], r3[2],
		r0[3], r1[3], r2[3], r3[3],
	}
}

// At returns element (r, c).
func (m Mat4[T]) At(r, c int) T {
	return m[c*4+r]
}

// Set returns a copy of m with element (r, c) replaced by v.
func (m Mat4[T]) Set(r, c int, v T) Mat4[T] {
	m[c*4+r] = v
	return m
}

// Col returns column c.
func (m Mat4[T]) Col(c int) vec.Vec4[T] {
	return vec.Vec4[T]{m[c*4], m[c*4+1], m[c*4+2], m[c*4+3]}
}

// Row returns row r.
func (m Mat4[T]) Row(r int) vec.Vec4[T] {
	return vec.Vec4[T]{m[r], m[4+r], m[8+r], m[12+r]}
}

// Add returns m + a.
func (m Mat4[T]) Add(a Mat4[T]) (out Mat4[T]) {
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return
}

// Sub returns m - a.
func (m Mat4[T]) Sub(a Mat4[T]) (out Mat4[T]) {
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return
}

// Scale returns s * m.
func (m Mat4[T]) Scale(s T) (out Mat4[T]) {
	for i := range m {
		out[i] = s * m[i]
	}
	return
}

// Mul returns the matrix product m * a.
func (m Mat4[T]) Mul(a Mat4[T]) (out Mat4[T]) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * a[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return
}

// MulVec returns the matrix-vector product m * v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) (out vec.Vec4[T]) {
	for r := 0; r < 4; r++ {
		out[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Mat4[T]) Trace() T {
	return m[0] + m[5] + m[10] + m[15]
}

// Det returns the determinant of m, computed from the 2x2
// sub-determinants of the top and bottom halves. Integer determinants
// can overflow for large entries; that is the caller's concern.
func (m Mat4[T]) Det() T {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subDets()
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// subDets returns the twelve 2x2 sub-determinants used by Det and
// Inverse4: s from the top two rows, c from the bottom two.
func (m Mat4[T]) subDets() (s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 T) {
	a00, a10, a20, a30 := m[0], m[1], m[2], m[3]
	a01, a11, a21, a31 := m[4], m[5], m[6], m[7]
	a02, a12, a22, a32 := m[8], m[9], m[10], m[11]
	a03, a13, a23, a33 := m[12], m[13], m[14], m[15]

	s0 = a00*a11 - a10*a01
	s1 = a00*a12 - a10*a02
	s2 = a00*a13 - a10*a03
	s3 = a01*a12 - a11*a02
	s4 = a01*a13 - a11*a03
	s5 = a02*a13 - a12*a03

	c5 = a22*a33 - a32*a23
	c4 = a21*a33 - a31*a23
	c3 = a21*a32 - a31*a22
	c2 = a20*a33 - a30*a23
	c1 = a20*a32 - a30*a22
	c0 = a20*a31 - a30*a21
	return
}

// Pow returns m raised to the n-th power by repeated squaring.
// Pow(0) is the identity. Negative n panics.
func (m Mat4[T]) Pow(n int) Mat4[T] {
	if n < 0 {
		panic("mat: negative matrix power")
	}
	out := Identity4[T]()
	base := m
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return out
}
