package vec

// Scalar is the set of element types supported by vectors and matrices.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is the subset of Scalar supporting real arithmetic. Geometric
// operations (length, normalization, angles) are constrained to it.
type Float interface {
	~float32 | ~float64
}

func absScalar[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func minScalar[T Scalar](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func maxScalar[T Scalar](x, y T) T {
	if x > y {
		return x
	}
	return y
}
