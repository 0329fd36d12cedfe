// Package vec provides fixed-size 2-, 3- and 4-component vectors over
// integer and floating-point scalars.
//
// Vectors are plain array values: immutable, allocation-free, and
// comparable with ==. Every operation returns a new value.
//
// Ring arithmetic (Add, Sub, Scale, Dot, Cross, ...) is available for all
// scalar domains as methods. Geometric operations that require real
// arithmetic (Normalize3, Reflect3, Project3, Angle3, ...) are
// package-level functions constrained to floating-point scalars, suffixed
// by dimension:
//
//	p := vec.V3(3.0, 4.0, 0.0)
//	n := vec.Normalize3(p)          // (0.6, 0.8, 0)
//	d := p.Dot(vec.V3(1.0, 0.0, 0.0))
//
// Integer vectors support the full ring API:
//
//	a := vec.V2(3, 4).Add(vec.V2(-1, 2)) // Vec2[int]{2, 6}
package vec
