// Package transform builds homogeneous transformation matrices for 2D
// (mat.Mat3) and 3D (mat.Mat4) geometry: translations, rotations,
// scalings, camera and projection matrices.
//
// All factories are float-only and follow the OpenGL conventions:
// column-major matrices, right-handed coordinates, and clip-space depth
// in [-1, 1] for the projection matrices. Transforms compose by matrix
// multiplication, rightmost first:
//
//	m := transform.Translate3(vec.V3(0.0, 1.0, 0.0)).
//	    Mul(transform.RotateZ[float64](math.Pi / 2))
//	p := transform.Point3(m, vec.V3(1.0, 0.0, 0.0)) // rotate, then lift
package transform
