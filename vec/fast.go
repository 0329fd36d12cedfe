package vec

import (
	"github.com/meko-christian/algo-approx"
)

// Fast variants trade a few bits of precision for speed by replacing
// math.Sqrt with approx.FastSqrt. They are float64-only and intended for
// hot loops where relative error around 1e-6 is acceptable (particle
// updates, broad-phase culling). Use the exact Len/Normalize functions
// everywhere else.

// FastLen2 returns an approximation of the Euclidean length of v.
func FastLen2(v Vec2[float64]) float64 {
	return approx.FastSqrt(v.Dot(v))
}

// FastLen3 returns an approximation of the Euclidean length of v.
func FastLen3(v Vec3[float64]) float64 {
	return approx.FastSqrt(v.Dot(v))
}

// FastLen4 returns an approximation of the Euclidean length of v.
func FastLen4(v Vec4[float64]) float64 {
	return approx.FastSqrt(v.Dot(v))
}

// FastNormalize2 returns v scaled to approximately unit length.
// The zero vector normalizes to the zero vector.
func FastNormalize2(v Vec2[float64]) Vec2[float64] {
	l := FastLen2(v)
	if l == 0 {
		return Vec2[float64]{}
	}
	return v.Scale(1 / l)
}

// FastNormalize3 returns v scaled to approximately unit length.
// The zero vector normalizes to the zero vector.
func FastNormalize3(v Vec3[float64]) Vec3[float64] {
	l := FastLen3(v)
	if l == 0 {
		return Vec3[float64]{}
	}
	return v.Scale(1 / l)
}

// FastNormalize4 returns v scaled to approximately unit length.
// The zero vector normalizes to the zero vector.
func FastNormalize4(v Vec4[float64]) Vec4[float64] {
	l := FastLen4(v)
	if l == 0 {
		return Vec4[float64]{}
	}
	return v.Scale(1 / l)
}
