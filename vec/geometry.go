package vec

import "math"

func sqrtT[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// acosClamped guards against |x| drifting past 1 from rounding in the
// preceding dot/length arithmetic, which would make math.Acos return NaN.
func acosClamped[T Float](x T) T {
	if x <= -1 {
		return T(math.Pi)
	}
	if x >= 1 {
		return 0
	}
	return T(math.Acos(float64(x)))
}

// Len2 returns the Euclidean length of v.
func Len2[T Float](v Vec2[T]) T { return sqrtT(v.Dot(v)) }

// Len3 returns the Euclidean length of v.
func Len3[T Float](v Vec3[T]) T { return sqrtT(v.Dot(v)) }

// Len4 returns the Euclidean length of v.
func Len4[T Float](v Vec4[T]) T { return sqrtT(v.Dot(v)) }

// LenSq2 returns the squared length of v.
func LenSq2[T Float](v Vec2[T]) T { return v.Dot(v) }

// LenSq3 returns the squared length of v.
func LenSq3[T Float](v Vec3[T]) T { return v.Dot(v) }

// LenSq4 returns the squared length of v.
func LenSq4[T Float](v Vec4[T]) T { return v.Dot(v) }

// Dist2 returns the Euclidean distance between v and w.
func Dist2[T Float](v, w Vec2[T]) T { return Len2(v.Sub(w)) }

// Dist3 returns the Euclidean distance between v and w.
func Dist3[T Float](v, w Vec3[T]) T { return Len3(v.Sub(w)) }

// Dist4 returns the Euclidean distance between v and w.
func Dist4[T Float](v, w Vec4[T]) T { return Len4(v.Sub(w)) }

// DistSq2 returns the squared distance between v and w.
func DistSq2[T Float](v, w Vec2[T]) T { return LenSq2(v.Sub(w)) }

// DistSq3 returns the squared distance between v and w.
func DistSq3[T Float](v, w Vec3[T]) T { return LenSq3(v.Sub(w)) }

// DistSq4 returns the squared distance between v and w.
func DistSq4[T Float](v, w Vec4[T]) T { return LenSq4(v.Sub(w)) }

// Normalize2 returns v scaled to unit length. The zero vector
// normalizes to the zero vector.
func Normalize2[T Float](v Vec2[T]) Vec2[T] {
	l := Len2(v)
	if l == 0 {
		return Vec2[T]{}
	}
	return v.Scale(1 / l)
}

// Normalize3 returns v scaled to unit length. The zero vector
// normalizes to the zero vector.
func Normalize3[T Float](v Vec3[T]) Vec3[T] {
	l := Len3(v)
	if l == 0 {
		return Vec3[T]{}
	}
	return v.Scale(1 / l)
}

// Normalize4 returns v scaled to unit length. The zero vector
// normalizes to the zero vector.
func Normalize4[T Float](v Vec4[T]) Vec4[T] {
	l := Len4(v)
	if l == 0 {
		return Vec4[T]{}
	}
	return v.Scale(1 / l)
}

// Reflect2 returns v reflected about the unit normal n:
// v - 2*(v.n)*n. n must be normalized.
func Reflect2[T Float](v, n Vec2[T]) Vec2[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Reflect3 returns v reflected about the unit normal n:
// v - 2*(v.n)*n. n must be normalized.
func Reflect3[T Float](v, n Vec3[T]) Vec3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Reflect4 returns v reflected about the unit normal n:
// v - 2*(v.n)*n. n must be normalized.
func Reflect4[T Float](v, n Vec4[T]) Vec4[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Project2 returns the projection of v onto w. Projection onto the zero
// vector returns the zero vector.
func Project2[T Float](v, w Vec2[T]) Vec2[T] {
	d := w.Dot(w)
	if d == 0 {
		return Vec2[T]{}
	}
	return w.Scale(v.Dot(w) / d)
}

// Project3 returns the projection of v onto w. Projection onto the zero
// vector returns the zero vector.
func Project3[T Float](v, w Vec3[T]) Vec3[T] {
	d := w.Dot(w)
	if d == 0 {
		return Vec3[T]{}
	}
	return w.Scale(v.Dot(w) / d)
}

// Project4 returns the projection of v onto w. Projection onto the zero
// vector returns the zero vector.
func Project4[T Float](v, w Vec4[T]) Vec4[T] {
	d := w.Dot(w)
	if d == 0 {
		return Vec4[T]{}
	}
	return w.Scale(v.Dot(w) / d)
}

// Reject2 returns the component of v orthogonal to w.
func Reject2[T Float](v, w Vec2[T]) Vec2[T] {
	return v.Sub(Project2(v, w))
}

// Reject3 returns the component of v orthogonal to w.
func Reject3[T Float](v, w Vec3[T]) Vec3[T] {
	return v.Sub(Project3(v, w))
}

// Reject4 returns the component of v orthogonal to w.
func Reject4[T Float](v, w Vec4[T]) Vec4[T] {
	return v.Sub(Project4(v, w))
}

// Angle2 returns the angle between v and w in radians, in [0, pi].
// Returns 0 if either vector is zero.
func Angle2[T Float](v, w Vec2[T]) T {
	lv, lw := Len2(v), Len2(w)
	if lv == 0 || lw == 0 {
		return 0
	}
	return acosClamped(v.Dot(w) / (lv * lw))
}

// Angle3 returns the angle between v and w in radians, in [0, pi].
// Returns 0 if either vector is zero.
func Angle3[T Float](v, w Vec3[T]) T {
	lv, lw := Len3(v), Len3(w)
	if lv == 0 || lw == 0 {
		return 0
	}
	return acosClamped(v.Dot(w) / (lv * lw))
}

// Angle4 returns the angle between v and w in radians, in [0, pi].
// Returns 0 if either vector is zero.
func Angle4[T Float](v, w Vec4[T]) T {
	lv, lw := Len4(v), Len4(w)
	if lv == 0 || lw == 0 {
		return 0
	}
	return acosClamped(v.Dot(w) / (lv * lw))
}

// Lerp2 linearly interpolates between v (t=0) and w (t=1).
// t is not clamped.
func Lerp2[T Float](v, w Vec2[T], t T) Vec2[T] {
	return v.Add(w.Sub(v).Scale(t))
}

// Lerp3 linearly interpolates between v (t=0) and w (t=1).
// t is not clamped.
func Lerp3[T Float](v, w Vec3[T], t T) Vec3[T] {
	return v.Add(w.Sub(v).Scale(t))
}

// Lerp4 linearly interpolates between v (t=0) and w (t=1).
// t is not clamped.
func Lerp4[T Float](v, w Vec4[T], t T) Vec4[T] {
	return v.Add(w.Sub(v).Scale(t))
}

func almostEqualT[T Float](a, b, tol T) bool {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	if a == b {
		// Covers equal infinities.
		return true
	}
	diff := absScalar(a - b)
	if diff <= tol {
		return true
	}
	// Relative tolerance for values far from unit scale.
	return diff <= tol*maxScalar(absScalar(a), absScalar(b))
}

// AlmostEqual2 reports whether v and w agree component-wise within tol,
// taken as an absolute tolerance or relative to the larger magnitude,
// whichever admits more. NaN components never compare equal; equal
// infinities do.
func AlmostEqual2[T Float](v, w Vec2[T], tol T) bool {
	for i := range v {
		if !almostEqualT(v[i], w[i], tol) {
			return false
		}
	}
	return true
}

// AlmostEqual3 reports whether v and w agree component-wise within tol,
// taken as an absolute tolerance or relative to the larger magnitude,
// whichever admits more. NaN components never compare equal; equal
// infinities do.
func AlmostEqual3[T Float](v, w Vec3[T], tol T) bool {
	for i := range v {
		if !almostEqualT(v[i], w[i], tol) {
			return false
		}
	}
	return true
}

// AlmostEqual4 reports whether v and w agree component-wise within tol,
// taken as an absolute tolerance or relative to the larger magnitude,
// whichever admits more. NaN components never compare equal; equal
// infinities do.
func AlmostEqual4[T Float](v, w Vec4[T], tol T) bool {
	for i := range v {
		if !almostEqualT(v[i], w[i], tol) {
			return false
		}
	}
	return true
}
