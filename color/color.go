// Package color provides an RGBA color value layered on the float
// vector abstraction of package vec.
//
// A Color is a vec.Vec4[float64] with components R, G, B, A in that
// order. Components are nominally in [0, 1] but are not clamped by
// arithmetic; use Clamp before packing to 8-bit. Conversions between
// linear and sRGB gamma encoding are explicit (Linear/SRGB); all
// arithmetic assumes linear-light components.
package color

import (
	"math"

	"github.com/cwbudde/algo-linalg/vec"
)

// Color is an RGBA color with float64 components.
type Color vec.Vec4[float64]

// lumWeights are the Rec. 709 luma coefficients.
var lumWeights = vec.V3(0.2126, 0.7152, 0.0722)

// New constructs a color from its components.
func New(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// Gray returns the opaque gray with the given intensity.
func Gray(v float64) Color {
	return Color{v, v, v, 1}
}

// FromVec converts a vector to a color.
func FromVec(v vec.Vec4[float64]) Color {
	return Color(v)
}

// Vec converts c to a vector.
func (c Color) Vec() vec.Vec4[float64] {
	return vec.Vec4[float64](c)
}

// R returns the red component.
func (c Color) R() float64 { return c[0] }

// G returns the green component.
func (c Color) G() float64 { return c[1] }

// B returns the blue component.
func (c Color) B() float64 { return c[2] }

// A returns the alpha component.
func (c Color) A() float64 { return c[3] }

// Add returns the component-wise sum of c and d.
func (c Color) Add(d Color) Color {
	return Color(c.Vec().Add(d.Vec()))
}

// Scale returns c with all components scaled by s.
func (c Color) Scale(s float64) Color {
	return Color(c.Vec().Scale(s))
}

// Mul returns the component-wise (modulation) product of c and d.
func (c Color) Mul(d Color) Color {
	return Color(c.Vec().MulElem(d.Vec()))
}

// Lerp linearly interpolates between c (t=0) and d (t=1).
func (c Color) Lerp(d Color, t float64) Color {
	return Color(vec.Lerp4(c.Vec(), d.Vec(), t))
}

// Clamp limits all components to [0, 1].
func (c Color) Clamp() Color {
	v := c.Vec().Max(vec.Vec4[float64]{}).Min(vec.V4(1.0, 1, 1, 1))
	return Color(v)
}

// Luminance returns the Rec. 709 relative luminance of c.
// Components are assumed linear.
func (c Color) Luminance() float64 {
	return c.Vec().XYZ().Dot(lumWeights)
}

// Grayscale returns the gray of equal luminance, preserving alpha.
func (c Color) Grayscale() Color {
	l := c.Luminance()
	return Color{l, l, l, c[3]}
}

// Premultiply returns c with the color components multiplied by alpha.
func (c Color) Premultiply() Color {
	return Color{c[0] * c[3], c[1] * c[3], c[2] * c[3], c[3]}
}

// Unpremultiply undoes Premultiply. Fully transparent colors are
// returned unchanged.
func (c Color) Unpremultiply() Color {
	if c[3] == 0 {
		return c
	}
	inv := 1 / c[3]
	return Color{c[0] * inv, c[1] * inv, c[2] * inv, c[3]}
}

// FromRGBA8 converts 8-bit RGBA components to a color in [0, 1].
// No gamma conversion is applied; use Linear on sRGB-encoded input.
func FromRGBA8(r, g, b, a uint8) Color {
	const s = 1.0 / 255.0
	return Color{float64(r) * s, float64(g) * s, float64(b) * s, float64(a) * s}
}

// RGBA8 packs c into 8-bit RGBA components, clamping and rounding.
// No gamma conversion is applied; use SRGB before packing for display.
func (c Color) RGBA8() (r, g, b, a uint8) {
	cc := c.Clamp()
	return uint8(math.Round(cc[0] * 255)),
		uint8(math.Round(cc[1] * 255)),
		uint8(math.Round(cc[2] * 255)),
		uint8(math.Round(cc[3] * 255))
}
