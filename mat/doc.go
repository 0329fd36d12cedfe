// Package mat provides fixed-size 2x2, 3x3 and 4x4 square matrices over
// integer and floating-point scalars.
//
// Matrices are flat arrays in column-major order, the layout used by
// graphics APIs: element (row r, column c) of a Mat4 lives at index
// c*4 + r. Like the vectors in package vec they are immutable values;
// every operation returns a new matrix.
//
// Ring arithmetic (Add, Scale, Mul, MulVec, Transpose, Trace, Det, Pow)
// is available for all scalar domains as methods. Inversion is
// float-only and reports singular matrices with ErrSingular:
//
//	m := mat.Mat3[float64]{2, 0, 0, 0, 2, 0, 0, 0, 2}
//	inv, err := mat.Inverse3(m)
//	if err != nil {
//	    // errors.Is(err, mat.ErrSingular)
//	}
package mat
