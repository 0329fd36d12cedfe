package batch

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-linalg/transform"
	"github.com/cwbudde/algo-linalg/vec"
)

const tolerance = 1e-12

func TestSplitJoin3(t *testing.T) {
	src := []vec.Vec3[float64]{
		{1, 2, 3},
		{4, 5, 6},
		{-1, 0, 1},
	}

	xs, ys, zs := Split3(src)
	if xs[1] != 4 || ys[2] != 0 || zs[0] != 3 {
		t.Errorf("Split3: got planes %v %v %v", xs, ys, zs)
	}

	back := Join3(xs, ys, zs)
	for i := range src {
		if back[i] != src[i] {
			t.Errorf("round trip at %d: got %v, want %v", i, back[i], src[i])
		}
	}

	// Empty input yields empty planes.
	xs, ys, zs = Split3(nil)
	if len(xs) != 0 || len(ys) != 0 || len(zs) != 0 {
		t.Error("Split3(nil) must yield empty planes")
	}
}

func TestSplitJoin2(t *testing.T) {
	src := []vec.Vec2[float64]{{1, 2}, {3, 4}}
	xs, ys := Split2(src)
	back := Join2(xs, ys)
	for i := range src {
		if back[i] != src[i] {
			t.Errorf("round trip at %d: got %v, want %v", i, back[i], src[i])
		}
	}
}

func TestJoin_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Join3 with mismatched planes must panic")
		}
	}()
	Join3(make([]float64, 2), make([]float64, 3), make([]float64, 2))
}

func TestLengths(t *testing.T) {
	xs := []float64{3, 0, 1}
	ys := []float64{4, 0, 0}
	zs := []float64{0, 0, 0}

	dst2 := make([]float64, 3)
	Lengths2(dst2, xs, ys)
	for i, want := range []float64{5, 0, 1} {
		if math.Abs(dst2[i]-want) > tolerance {
			t.Errorf("Lengths2[%d]: got %g, want %g", i, dst2[i], want)
		}
	}

	dst3 := make([]float64, 3)
	Lengths3(dst3, xs, ys, zs)
	for i := range dst2 {
		if math.Abs(dst3[i]-dst2[i]) > tolerance {
			t.Errorf("Lengths3 with zero z must match Lengths2 at %d", i)
		}
	}

	// Non-zero z.
	one := make([]float64, 1)
	Lengths3(one, []float64{2}, []float64{3}, []float64{6})
	if math.Abs(one[0]-7) > tolerance {
		t.Errorf("Lengths3: got %g, want 7", one[0])
	}
}

func TestPlaneKernels(t *testing.T) {
	src := []float64{1, -2, 3}
	dst := make([]float64, 3)

	ScalePlane(dst, src, 2)
	if dst[0] != 2 || dst[1] != -4 || dst[2] != 6 {
		t.Errorf("ScalePlane: got %v", dst)
	}

	AccumulatePlane(dst, src)
	if dst[0] != 3 || dst[1] != -6 || dst[2] != 9 {
		t.Errorf("AccumulatePlane: got %v", dst)
	}

	MulPlanes(dst, src, src)
	if dst[0] != 1 || dst[1] != 4 || dst[2] != 9 {
		t.Errorf("MulPlanes: got %v", dst)
	}
}

func TestDotPlanes(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, -5, 6}

	if got := DotPlanes(a, b); got != 12 {
		t.Errorf("DotPlanes: got %g, want 12", got)
	}

	// Orthogonal planes.
	if got := DotPlanes([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Errorf("DotPlanes orthogonal: got %g, want 0", got)
	}

	// Matches the per-vector Dot over a split slice.
	vs := []vec.Vec3[float64]{{1, 2, 3}, {-4, 5, -6}}
	xs, ys, zs := Split3(vs)
	var want float64
	for _, v := range vs {
		want += v.Dot(v)
	}
	got := DotPlanes(xs, xs) + DotPlanes(ys, ys) + DotPlanes(zs, zs)
	if math.Abs(got-want) > tolerance {
		t.Errorf("DotPlanes over planes: got %g, want %g", got, want)
	}
}

func TestDotPlanes_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DotPlanes with mismatched planes must panic")
		}
	}()
	DotPlanes(make([]float64, 2), make([]float64, 3))
}

func TestTransformPoints3(t *testing.T) {
	m := transform.Translate3(vec.V3(1.0, 0, 0)).Mul(transform.RotateZ(math.Pi / 2))
	src := []vec.Vec3[float64]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	dst := make([]vec.Vec3[float64], len(src))

	TransformPoints3(dst, src, m)

	want := []vec.Vec3[float64]{
		{1, 1, 0},
		{0, 0, 0},
		{1, 0, 1},
	}
	for i := range want {
		if !vec.AlmostEqual3(dst[i], want[i], tolerance) {
			t.Errorf("point %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestTransformPoints3_ParallelMatchesSequential(t *testing.T) {
	m := transform.RotateAxis(vec.V3(1.0, 2, 3), 0.7).
		Mul(transform.Scale3(vec.V3(2.0, 2, 2)))

	src := make([]vec.Vec3[float64], 10000)
	for i := range src {
		src[i] = vec.V3(float64(i), float64(i%7), float64(i%13))
	}

	seq := make([]vec.Vec3[float64], len(src))
	par := make([]vec.Vec3[float64], len(src))
	TransformPoints3(seq, src, m)
	TransformPoints3(par, src, m, WithParallel(), WithGrainSize(100))

	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("parallel result diverges at %d: %v != %v", i, par[i], seq[i])
		}
	}
}

func TestTransformDirs3(t *testing.T) {
	m := transform.Translate3(vec.V3(100.0, 100, 100))
	src := []vec.Vec3[float64]{{1, 2, 3}}
	dst := make([]vec.Vec3[float64], 1)

	TransformDirs3(dst, src, m)
	if dst[0] != src[0] {
		t.Errorf("directions must ignore translation: got %v", dst[0])
	}
}

func TestTransform_InPlace(t *testing.T) {
	m := transform.Scale3(vec.V3(2.0, 2, 2))
	ps := []vec.Vec3[float64]{{1, 1, 1}, {2, 2, 2}}

	TransformPoints3(ps, ps, m)
	if ps[0] != vec.V3(2.0, 2, 2) || ps[1] != vec.V3(4.0, 4, 4) {
		t.Errorf("in-place transform: got %v", ps)
	}
}
