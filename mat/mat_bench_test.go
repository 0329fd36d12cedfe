package mat

import (
	"testing"

	"github.com/cwbudde/algo-linalg/vec"
)

var (
	sinkM4 Mat4[float64]
	sinkV4 vec.Vec4[float64]
	sinkF  float64
)

func benchMat4() Mat4[float64] {
	return FromRows4(
		vec.V4(1.0, 0, 2, 1),
		vec.V4(0.0, 3, 0, 2),
		vec.V4(1.0, 0, 1, 0),
		vec.V4(2.0, 1, 0, 4),
	)
}

func BenchmarkMat4_Mul(b *testing.B) {
	m := benchMat4()
	a := m.Transpose()
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Mul(a)
	}
}

func BenchmarkMat4_MulVec(b *testing.B) {
	m := benchMat4()
	v := vec.V4(1.0, 2, 3, 4)
	for i := 0; i < b.N; i++ {
		sinkV4 = m.MulVec(v)
	}
}

func BenchmarkMat4_Det(b *testing.B) {
	m := benchMat4()
	for i := 0; i < b.N; i++ {
		sinkF = m.Det()
	}
}

func BenchmarkMat4_Inverse(b *testing.B) {
	m := benchMat4()
	for i := 0; i < b.N; i++ {
		sinkM4, _ = Inverse4(m)
	}
}

func BenchmarkMat4_Pow16(b *testing.B) {
	m := Identity4[float64]().Scale(1.0001)
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Pow(16)
	}
}
