package batch

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-linalg/vec"
)

// Split2 converts a slice of 2D vectors into separate component planes.
func Split2(vs []vec.Vec2[float64]) (xs, ys []float64) {
	xs = make([]float64, len(vs))
	ys = make([]float64, len(vs))
	for i, v := range vs {
		xs[i] = v[0]
		ys[i] = v[1]
	}
	return
}

// Join2 is the inverse of Split2. The planes must have equal length.
func Join2(xs, ys []float64) []vec.Vec2[float64] {
	if len(xs) != len(ys) {
		panic("batch: plane length mismatch")
	}
	out := make([]vec.Vec2[float64], len(xs))
	for i := range out {
		out[i] = vec.Vec2[float64]{xs[i], ys[i]}
	}
	return out
}

// Split3 converts a slice of 3D vectors into separate component planes.
func Split3(vs []vec.Vec3[float64]) (xs, ys, zs []float64) {
	xs = make([]float64, len(vs))
	ys = make([]float64, len(vs))
	zs = make([]float64, len(vs))
	for i, v := range vs {
		xs[i] = v[0]
		ys[i] = v[1]
		zs[i] = v[2]
	}
	return
}

// Join3 is the inverse of Split3. The planes must have equal length.
func Join3(xs, ys, zs []float64) []vec.Vec3[float64] {
	if len(xs) != len(ys) || len(ys) != len(zs) {
		panic("batch: plane length mismatch")
	}
	out := make([]vec.Vec3[float64], len(xs))
	for i := range out {
		out[i] = vec.Vec3[float64]{xs[i], ys[i], zs[i]}
	}
	return out
}

// Lengths2 writes sqrt(xs[i]^2 + ys[i]^2) into dst.
// All slices must have equal length.
func Lengths2(dst, xs, ys []float64) {
	if len(dst) != len(xs) || len(xs) != len(ys) {
		panic("batch: plane length mismatch")
	}
	vecmath.Magnitude(dst, xs, ys)
}

// Lengths3 writes sqrt(xs[i]^2 + ys[i]^2 + zs[i]^2) into dst.
// All slices must have equal length. Allocates one scratch plane.
func Lengths3(dst, xs, ys, zs []float64) {
	if len(dst) != len(xs) || len(xs) != len(ys) || len(ys) != len(zs) {
		panic("batch: plane length mismatch")
	}
	vecmath.Power(dst, xs, ys) // dst = x^2 + y^2

	zz := make([]float64, len(zs))
	vecmath.MulBlock(zz, zs, zs)
	vecmath.AddBlockInPlace(dst, zz)

	for i := range dst {
		dst[i] = math.Sqrt(dst[i])
	}
}

// ScalePlane writes s * src into dst. Both slices must have equal length.
func ScalePlane(dst, src []float64, s float64) {
	if len(dst) != len(src) {
		panic("batch: plane length mismatch")
	}
	vecmath.ScaleBlock(dst, src, s)
}

// AccumulatePlane adds src to dst element-wise.
// Both slices must have equal length.
func AccumulatePlane(dst, src []float64) {
	if len(dst) != len(src) {
		panic("batch: plane length mismatch")
	}
	vecmath.AddBlockInPlace(dst, src)
}

// DotPlanes returns the dot product of a and b: sum(a[i] * b[i]).
// Both slices must have equal length.
func DotPlanes(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("batch: plane length mismatch")
	}
	return vecmath.DotProduct(a, b)
}

// MulPlanes writes the element-wise product of a and b into dst.
// All slices must have equal length.
func MulPlanes(dst, a, b []float64) {
	if len(dst) != len(a) || len(a) != len(b) {
		panic("batch: plane length mismatch")
	}
	vecmath.MulBlock(dst, a, b)
}
