package transform

import (
	"math"

	"github.com/cwbudde/algo-linalg/mat"
	"github.com/cwbudde/algo-linalg/vec"
)

// Translate3 returns the 3D homogeneous translation by t.
func Translate3[T vec.Float](t vec.Vec3[T]) mat.Mat4[T] {
	return mat.FromRows4(
		vec.Vec4[T]{1, 0, 0, t[0]},
		vec.Vec4[T]{0, 1, 0, t[1]},
		vec.Vec4[T]{0, 0, 1, t[2]},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// Scale3 returns the 3D scaling by factors s.
func Scale3[T vec.Float](s vec.Vec3[T]) mat.Mat4[T] {
	return mat.FromRows4(
		vec.Vec4[T]{s[0], 0, 0, 0},
		vec.Vec4[T]{0, s[1], 0, 0},
		vec.Vec4[T]{0, 0, s[2], 0},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// RotateX returns the rotation by angle radians about the X axis.
func RotateX[T vec.Float](angle T) mat.Mat4[T] {
	s, c := sincos(angle)
	return mat.FromRows4(
		vec.Vec4[T]{1, 0, 0, 0},
		vec.Vec4[T]{0, c, -s, 0},
		vec.Vec4[T]{0, s, c, 0},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// RotateY returns the rotation by angle radians about the Y axis.
func RotateY[T vec.Float](angle T) mat.Mat4[T] {
	s, c := sincos(angle)
	return mat.FromRows4(
		vec.Vec4[T]{c, 0, s, 0},
		vec.Vec4[T]{0, 1, 0, 0},
		vec.Vec4[T]{-s, 0, c, 0},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// RotateZ returns the rotation by angle radians about the Z axis.
func RotateZ[T vec.Float](angle T) mat.Mat4[T] {
	s, c := sincos(angle)
	return mat.FromRows4(
		vec.Vec4[T]{c, -s, 0, 0},
		vec.Vec4[T]{s, c, 0, 0},
		vec.Vec4[T]{0, 0, 1, 0},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// RotateAxis returns the rotation by angle radians about the given axis
// (Rodrigues' formula). The axis need not be normalized; a zero axis
// yields the identity.
func RotateAxis[T vec.Float](axis vec.Vec3[T], angle T) mat.Mat4[T] {
	n := vec.Normalize3(axis)
	if n == (vec.Vec3[T]{}) {
		return mat.Identity4[T]()
	}
	s, c := sincos(angle)
	t := 1 - c
	x, y, z := n[0], n[1], n[2]

	return mat.FromRows4(
		vec.Vec4[T]{t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0},
		vec.Vec4[T]{t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0},
		vec.Vec4[T]{t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// LookAt returns a right-handed view matrix placing the camera at eye,
// looking at center, with the given up direction.
func LookAt[T vec.Float](eye, center, up vec.Vec3[T]) mat.Mat4[T] {
	f := vec.Normalize3(center.Sub(eye))
	s := vec.Normalize3(f.Cross(up))
	u := s.Cross(f)

	return mat.FromRows4(
		vec.Vec4[T]{s[0], s[1], s[2], -s.Dot(eye)},
		vec.Vec4[T]{u[0], u[1], u[2], -u.Dot(eye)},
		vec.Vec4[T]{-f[0], -f[1], -f[2], f.Dot(eye)},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// Perspective returns a right-handed perspective projection with the
// given vertical field of view in radians, aspect ratio, and near/far
// clip distances. Depth maps to [-1, 1].
func Perspective[T vec.Float](fovy, aspect, near, far T) mat.Mat4[T] {
	t := T(1 / math.Tan(float64(fovy)/2))
	return mat.FromRows4(
		vec.Vec4[T]{t / aspect, 0, 0, 0},
		vec.Vec4[T]{0, t, 0, 0},
		vec.Vec4[T]{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		vec.Vec4[T]{0, 0, -1, 0},
	)
}

// Orthographic returns a right-handed orthographic projection mapping
// the box [left,right]x[bottom,top]x[near,far] to [-1,1] clip space.
func Orthographic[T vec.Float](left, right, bottom, top, near, far T) mat.Mat4[T] {
	return mat.FromRows4(
		vec.Vec4[T]{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		vec.Vec4[T]{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		vec.Vec4[T]{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		vec.Vec4[T]{0, 0, 0, 1},
	)
}

// Frustum returns a right-handed perspective projection for an
// asymmetric viewing frustum, as glFrustum.
func Frustum[T vec.Float](left, right, bottom, top, near, far T) mat.Mat4[T] {
	return mat.FromRows4(
		vec.Vec4[T]{2 * near / (right - left), 0, (right + left) / (right - left), 0},
		vec.Vec4[T]{0, 2 * near / (top - bottom), (top + bottom) / (top - bottom), 0},
		vec.Vec4[T]{0, 0, -(far + near) / (far - near), -2 * far * near / (far - near)},
		vec.Vec4[T]{0, 0, -1, 0},
	)
}

// Point3 applies the homogeneous transform m to the point p,
// dividing by w when m has a projective part.
func Point3[T vec.Float](m mat.Mat4[T], p vec.Vec3[T]) vec.Vec3[T] {
	v := m.MulVec(p.XYZW(1))
	if v[3] != 0 && v[3] != 1 {
		return v.XYZ().Scale(1 / v[3])
	}
	return v.XYZ()
}

// Dir3 applies the homogeneous transform m to the direction d,
// ignoring the translation part.
func Dir3[T vec.Float](m mat.Mat4[T], d vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(d.XYZW(0)).XYZ()
}
