package vec

// Vec4 is a 4-component vector.
type Vec4[T Scalar] [4]T

// V4 constructs a Vec4 from its components.
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v[2] }

// W returns the fourth component.
func (v Vec4[T]) W() T { return v[3] }

// XYZ narrows v to its first three components.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) (u Vec4[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) (u Vec4[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// Neg returns -v.
func (v Vec4[T]) Neg() (u Vec4[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// Scale returns s * v.
func (v Vec4[T]) Scale(s T) (u Vec4[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// MulElem returns the component-wise (Hadamard) product of v and w.
func (v Vec4[T]) MulElem(w Vec4[T]) (u Vec4[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// Dot returns v . w.
func (v Vec4[T]) Dot(w Vec4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Abs returns the component-wise absolute value of v.
func (v Vec4[T]) Abs() (u Vec4[T]) {
	for i := range u {
		u[i] = absScalar(v[i])
	}
	return
}

// Min returns the component-wise minimum of v and w.
func (v Vec4[T]) Min(w Vec4[T]) (u Vec4[T]) {
	for i := range u {
		u[i] = minScalar(v[i], w[i])
	}
	return
}

// Max returns the component-wise maximum of v and w.
func (v Vec4[T]) Max(w Vec4[T]) (u Vec4[T]) {
	for i := range u {
		u[i] = maxScalar(v[i], w[i])
	}
	return
}

// Sum returns the sum of all components.
func (v Vec4[T]) Sum() (s T) {
	for i := range v {
		s += v[i]
	}
	return
}
