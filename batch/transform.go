package batch

import (
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/cwbudde/algo-linalg/mat"
	"github.com/cwbudde/algo-linalg/transform"
	"github.com/cwbudde/algo-linalg/vec"
)

// TransformPoints3 applies the homogeneous transform m to every point
// in src and writes the results to dst. dst and src must have equal
// length and may be the same slice. With WithParallel the work fans
// out across cores once the input reaches the grain size.
func TransformPoints3(dst, src []vec.Vec3[float64], m mat.Mat4[float64], opts ...Option) {
	if len(dst) != len(src) {
		panic("batch: plane length mismatch")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.parallel && len(src) >= cfg.grainSize {
		parallel.For(len(src), func(i, _ int) {
			dst[i] = transform.Point3(m, src[i])
		})
		return
	}
	for i := range src {
		dst[i] = transform.Point3(m, src[i])
	}
}

// TransformDirs3 applies the homogeneous transform m to every
// direction in src, ignoring translation, and writes the results to
// dst. dst and src must have equal length and may be the same slice.
func TransformDirs3(dst, src []vec.Vec3[float64], m mat.Mat4[float64], opts ...Option) {
	if len(dst) != len(src) {
		panic("batch: plane length mismatch")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.parallel && len(src) >= cfg.grainSize {
		parallel.For(len(src), func(i, _ int) {
			dst[i] = transform.Dir3(m, src[i])
		})
		return
	}
	for i := range src {
		dst[i] = transform.Dir3(m, src[i])
	}
}
