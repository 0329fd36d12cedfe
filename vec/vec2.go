package vec

// Vec2 is a 2-component vector.
type Vec2[T Scalar] [2]T

// V2 constructs a Vec2 from its components.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// XYZ widens v to a Vec3 with the given z component.
func (v Vec2[T]) XYZ(z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) (u Vec2[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) (u Vec2[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// Neg returns -v.
func (v Vec2[T]) Neg() (u Vec2[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// Scale returns s * v.
func (v Vec2[T]) Scale(s T) (u Vec2[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// MulElem returns the component-wise (Hadamard) product of v and w.
func (v Vec2[T]) MulElem(w Vec2[T]) (u Vec2[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// Dot returns v . w.
func (v Vec2[T]) Dot(w Vec2[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Cross returns the scalar 2D cross product v.X*w.Y - v.Y*w.X, the signed
// area of the parallelogram spanned by v and w.
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v[0]*w[1] - v[1]*w[0]
}

// Abs returns the component-wise absolute value of v.
func (v Vec2[T]) Abs() (u Vec2[T]) {
	for i := range u {
		u[i] = absScalar(v[i])
	}
	return
}

// Min returns the component-wise minimum of v and w.
func (v Vec2[T]) Min(w Vec2[T]) (u Vec2[T]) {
	for i := range u {
		u[i] = minScalar(v[i], w[i])
	}
	return
}

// Max returns the component-wise maximum of v and w.
func (v Vec2[T]) Max(w Vec2[T]) (u Vec2[T]) {
	for i := range u {
		u[i] = maxScalar(v[i], w[i])
	}
	return
}

// Sum returns the sum of all components.
func (v Vec2[T]) Sum() (s T) {
	for i := range v {
		s += v[i]
	}
	return
}
