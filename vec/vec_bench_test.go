package vec

import "testing"

var (
	sinkF float64
	sinkV Vec3[float64]
)

func BenchmarkDot3(b *testing.B) {
	v := V3(1.0, 2, 3)
	w := V3(4.0, 5, 6)
	for i := 0; i < b.N; i++ {
		sinkF = v.Dot(w)
	}
}

func BenchmarkCross3(b *testing.B) {
	v := V3(1.0, 2, 3)
	w := V3(4.0, 5, 6)
	for i := 0; i < b.N; i++ {
		sinkV = v.Cross(w)
	}
}

func BenchmarkNormalize3(b *testing.B) {
	v := V3(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkV = Normalize3(v)
	}
}

func BenchmarkFastNormalize3(b *testing.B) {
	v := V3(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkV = FastNormalize3(v)
	}
}

func BenchmarkLen3(b *testing.B) {
	v := V3(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkF = Len3(v)
	}
}

func BenchmarkFastLen3(b *testing.B) {
	v := V3(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkF = FastLen3(v)
	}
}
