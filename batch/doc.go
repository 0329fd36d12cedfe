// Package batch applies vector and matrix operations to slices of
// values at once.
//
// The value types in vec and mat are deliberately scalar code; when the
// same operation runs over thousands of points it pays to switch to a
// structure-of-arrays layout and let the block kernels of
// github.com/cwbudde/algo-vecmath do the inner loops. Split3/Join3
// convert between the two layouts:
//
//	xs, ys, zs := batch.Split3(points)
//	lens := make([]float64, len(points))
//	batch.Lengths3(lens, xs, ys, zs)
//
// TransformPoints3 applies a Mat4 to a whole point slice and can fan
// out across cores for large inputs:
//
//	batch.TransformPoints3(dst, src, m, batch.WithParallel())
package batch
