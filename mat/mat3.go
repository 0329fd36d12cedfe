package mat

import "github.com/cwbudde/algo-linalg/vec"

// Mat3 is a 3x3 matrix in column-major order:
// element (r, c) is stored at index c*3 + r.
type Mat3[T vec.Scalar] [9]T

// Identity3 returns the 3x3 identity matrix.
func Identity3[T vec.Scalar]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// FromCols3 builds a matrix from column vectors.
func FromCols3[T vec.Scalar](c0, c1, c2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}

// FromRows3 builds a matrix from row vectors.
func FromRows3[T vec.Scalar](r0, r1, r2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		r0[0], r1[0], r2[0],
		r0[1], r1[1], r2[1],
		r0[2], r1[2], r2[2],
	}
}

// At returns element (r, c).
func (m Mat3[T]) At(r, c int) T {
	return m[c*3+r]
}

// Set returns a copy of m with element (r, c) replaced by v.
func (m Mat3[T]) Set(r, c int, v T) Mat3[T] {
	m[c*3+r] = v
	return m
}

// Col returns column c.
func (m Mat3[T]) Col(c int) vec.Vec3[T] {
	return vec.Vec3[T]{m[c*3], m[c*3+1], m[c*3+2]}
}

// Row returns row r.
func (m Mat3[T]) Row(r int) vec.Vec3[T] {
	return vec.Vec3[T]{m[r], m[3+r], m[6+r]}
}

// Add returns m + a.
func (m Mat3[T]) Add(a Mat3[T]) (out Mat3[T]) {
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return
}

// Sub returns m - a.
func (m Mat3[T]) Sub(a Mat3[T]) (out Mat3[T]) {
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return
}

// Scale returns s * m.
func (m Mat3[T]) Scale(s T) (out Mat3[T]) {
	for i := range m {
		out[i] = s * m[i]
	}
	return
}

// Mul returns the matrix product m * a.
func (m Mat3[T]) Mul(a Mat3[T]) (out Mat3[T]) {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var sum T
			for k := 0; k < 3; k++ {
				sum += m[k*3+r] * a[c*3+k]
			}
			out[c*3+r] = sum
		}
	}
	return
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) (out vec.Vec3[T]) {
	for r := 0; r < 3; r++ {
		out[r] = m[r]*v[0] + m[3+r]*v[1] + m[6+r]*v[2]
	}
	return
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Mat3[T]) Trace() T {
	return m[0] + m[4] + m[8]
}

// Det returns the determinant of m. Integer determinants can overflow
// for large entries; that is the caller's concern.
func (m Mat3[T]) Det() T {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Pow returns m raised to the n-th power by repeated squaring.
// Pow(0) is the identity. Negative n panics.
func (m Mat3[T]) Pow(n int) Mat3[T] {
	if n < 0 {
		panic("mat: negative matrix power")
	}
	out := Identity3[T]()
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
