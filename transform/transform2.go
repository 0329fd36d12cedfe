package transform

import (
	"math"

	"github.com/cwbudde/algo-linalg/mat"
	"github.com/cwbudde/algo-linalg/vec"
)

func sincos[T vec.Float](angle T) (s, c T) {
	sf, cf := math.Sincos(float64(angle))
	return T(sf), T(cf)
}

// Translate2 returns the 2D homogeneous translation by t.
func Translate2[T vec.Float](t vec.Vec2[T]) mat.Mat3[T] {
	return mat.FromRows3(
		vec.Vec3[T]{1, 0, t[0]},
		vec.Vec3[T]{0, 1, t[1]},
		vec.Vec3[T]{0, 0, 1},
	)
}

// Rotate2 returns the 2D rotation by angle radians, counter-clockwise.
func Rotate2[T vec.Float](angle T) mat.Mat3[T] {
	s, c := sincos(angle)
	return mat.FromRows3(
		vec.Vec3[T]{c, -s, 0},
		vec.Vec3[T]{s, c, 0},
		vec.Vec3[T]{0, 0, 1},
	)
}

// Scale2 returns the 2D scaling by factors s.
func Scale2[T vec.Float](s vec.Vec2[T]) mat.Mat3[T] {
	return mat.FromRows3(
		vec.Vec3[T]{s[0], 0, 0},
		vec.Vec3[T]{0, s[1], 0},
		vec.Vec3[T]{0, 0, 1},
	)
}

// Shear2 returns the 2D shear with factors sx (x by y) and sy (y by x).
func Shear2[T vec.Float](sx, sy T) mat.Mat3[T] {
	return mat.FromRows3(
		vec.Vec3[T]{1, sx, 0},
		vec.Vec3[T]{sy, 1, 0},
		vec.Vec3[T]{0, 0, 1},
	)
}

// Point2 applies the homogeneous transform m to the point p,
// dividing by w when m has a projective part.
func Point2[T vec.Float](m mat.Mat3[T], p vec.Vec2[T]) vec.Vec2[T] {
	v := m.MulVec(p.XYZ(1))
	if v[2] != 0 && v[2] != 1 {
		return vec.Vec2[T]{v[0] / v[2], v[1] / v[2]}
	}
	return v.XY()
}

// Dir2 applies the homogeneous transform m to the direction d,
// ignoring the translation part.
func Dir2[T vec.Float](m mat.Mat3[T], d vec.Vec2[T]) vec.Vec2[T] {
	return m.MulVec(d.XYZ(0)).XY()
}
