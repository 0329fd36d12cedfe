package vec

// Vec3 is a 3-component vector.
type Vec3[T Scalar] [3]T

// V3 constructs a Vec3 from its components.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// XY narrows v to its first two components.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// XYZW widens v to a Vec4 with the given w component.
func (v Vec3[T]) XYZW(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) (u Vec3[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) (u Vec3[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// Neg returns -v.
func (v Vec3[T]) Neg() (u Vec3[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// Scale returns s * v.
func (v Vec3[T]) Scale(s T) (u Vec3[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// MulElem returns the component-wise (Hadamard) product of v and w.
func (v Vec3[T]) MulElem(w Vec3[T]) (u Vec3[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// Dot returns v . w.
func (v Vec3[T]) Dot(w Vec3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Cross returns v x w.
func (v Vec3[T]) Cross(w Vec3[T]) (u Vec3[T]) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// Abs returns the component-wise absolute value of v.
func (v Vec3[T]) Abs() (u Vec3[T]) {
	for i := range u {
		u[i] = absScalar(v[i])
	}
	return
}

// Min returns the component-wise minimum of v and w.
func (v Vec3[T]) Min(w Vec3[T]) (u Vec3[T]) {
	for i := range u {
		u[i] = minScalar(v[i], w[i])
	}
	return
}

// Max returns the component-wise maximum of v and w.
func (v Vec3[T]) Max(w Vec3[T]) (u Vec3[T]) {
	for i := range u {
		u[i] = maxScalar(v[i], w[i])
	}
	return
}

// Sum returns the sum of all components.
func (v Vec3[T]) Sum() (s T) {
	for i := range v {
		s += v[i]
	}
	return
}
