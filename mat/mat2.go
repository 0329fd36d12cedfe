package mat

import "github.com/cwbudde/algo-linalg/vec"

// Mat2 is a 2x2 matrix in column-major order:
// element (r, c) is stored at index c*2 + r.
type Mat2[T vec.Scalar] [4]T

// Identity2 returns the 2x2 identity matrix.
func Identity2[T vec.Scalar]() Mat2[T] {
	return Mat2[T]{
		1, 0,
		0, 1,
	}
}

// FromCols2 builds a matrix from column vectors.
func FromCols2[T vec.Scalar](c0, c1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{
		c0[0], c0[1],
		c1[0], c1[1],
	}
}

// FromRows2 builds a matrix from row vectors.
func FromRows2[T vec.Scalar](r0, r1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{
		r0[0], r1[0],
		r0[1], r1[1],
	}
}

// At returns element (r, c).
func (m Mat2[T]) At(r, c int) T {
	return m[c*2+r]
}

// Set returns a copy of m with element (r, c) replaced by v.
func (m Mat2[T]) Set(r, c int, v T) Mat2[T] {
	m[c*2+r] = v
	return m
}

// Col returns column c.
func (m Mat2[T]) Col(c int) vec.Vec2[T] {
	return vec.Vec2[T]{m[c*2], m[c*2+1]}
}

// Row returns row r.
func (m Mat2[T]) Row(r int) vec.Vec2[T] {
	return vec.Vec2[T]{m[r], m[2+r]}
}

// Add returns m + a.
func (m Mat2[T]) Add(a Mat2[T]) (out Mat2[T]) {
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return
}

// Sub returns m - a.
func (m Mat2[T]) Sub(a Mat2[T]) (out Mat2[T]) {
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return
}

// Scale returns s * m.
func (m Mat2[T]) Scale(s T) (out Mat2[T]) {
	for i := range m {
		out[i] = s * m[i]
	}
	return
}

// Mul returns the matrix product m * a.
func (m Mat2[T]) Mul(a Mat2[T]) (out Mat2[T]) {
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			var sum T
			for k := 0; k < 2; k++ {
				sum += m[k*2+r] * a[c*2+k]
			}
			out[c*2+r] = sum
		}
	}
	return
}

// MulVec returns the matrix-vector product m * v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) (out vec.Vec2[T]) {
	out[0] = m[0]*v[0] + m[2]*v[1]
	out[1] = m[1]*v[0] + m[3]*v[1]
	return
}

// Transpose returns the transpose of m.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{
		m[0], m[2],
		m[1], m[3],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Mat2[T]) Trace() T {
	return m[0] + m[3]
}

// Det returns the determinant of m. Integer determinants can overflow
// for large entries; that is the caller's concern.
func (m Mat2[T]) Det() T {
	return m[0]*m[3] - m[1]*m[2]
}

// Pow returns m raised to the n-th power by repeated squaring.
// Pow(0) is the identity. Negative n panics.
func (m Mat2[T]) Pow(n int) Mat2[T] {
	if n < 0 {
		panic("mat: negative matrix power")
	}
	out := Identity2[T]()
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
