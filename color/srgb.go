package color

import "math"

// The IEC 61966-2-1 sRGB transfer function with the standard linear
// segment near black.

func srgbEncode(x float64) float64 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func srgbDecode(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// SRGB gamma-encodes the linear color components of c for display.
// Alpha is left untouched.
func (c Color) SRGB() Color {
	return Color{srgbEncode(c[0]), srgbEncode(c[1]), srgbEncode(c[2]), c[3]}
}

// Linear decodes the sRGB-encoded components of c to linear light.
// Alpha is left untouched.
func (c Color) Linear() Color {
	return Color{srgbDecode(c[0]), srgbDecode(c[1]), srgbDecode(c[2]), c[3]}
}
