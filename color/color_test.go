package color

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func colorsClose(a, b Color, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestArithmetic(t *testing.T) {
	a := New(0.2, 0.4, 0.6, 1.0)
	b := New(0.1, 0.1, 0.1, 0.0)

	if got, want := a.Add(b), New(0.3, 0.5, 0.7, 1.0); !colorsClose(got, want, tolerance) {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Scale(0.5), New(0.1, 0.2, 0.3, 0.5); !colorsClose(got, want, tolerance) {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
	if got, want := a.Mul(Gray(0.5)), New(0.1, 0.2, 0.3, 1.0); !colorsClose(got, want, tolerance) {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	black := New(0, 0, 0, 1)
	white := New(1, 1, 1, 1)

	if got, want := black.Lerp(white, 0.5), Gray(0.5); !colorsClose(got, want, tolerance) {
		t.Errorf("Lerp midpoint: got %v, want %v", got, want)
	}
	if got := black.Lerp(white, 0); !colorsClose(got, black, tolerance) {
		t.Errorf("Lerp t=0: got %v", got)
	}
	if got := black.Lerp(white, 1); !colorsClose(got, white, tolerance) {
		t.Errorf("Lerp t=1: got %v", got)
	}
}

func TestClamp(t *testing.T) {
	c := New(1.5, -0.25, 0.5, 2.0).Clamp()
	want := New(1, 0, 0.5, 1)
	if !colorsClose(c, want, tolerance) {
		t.Errorf("Clamp: got %v, want %v", c, want)
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"black", New(0, 0, 0, 1), 0},
		{"white", New(1, 1, 1, 1), 1},
		{"pure red", New(1, 0, 0, 1), 0.2126},
		{"pure green", New(0, 1, 0, 1), 0.7152},
		{"pure blue", New(0, 0, 1, 1), 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Luminance(); math.Abs(got-tt.want) > tolerance {
				t.Errorf("Luminance: got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	c := New(1, 0, 0, 0.5)
	g := c.Grayscale()

	if math.Abs(g.R()-0.2126) > tolerance || g.R() != g.G() || g.G() != g.B() {
		t.Errorf("Grayscale: got %v", g)
	}
	if g.A() != 0.5 {
		t.Errorf("Grayscale must preserve alpha: got %g", g.A())
	}
	if math.Abs(g.Luminance()-c.Luminance()) > tolerance {
		t.Errorf("Grayscale changed luminance: %g -> %g", c.Luminance(), g.Luminance())
	}
}

func TestPremultiply(t *testing.T) {
	c := New(0.8, 0.4, 0.2, 0.5)
	p := c.Premultiply()

	if got, want := p, New(0.4, 0.2, 0.1, 0.5); !colorsClose(got, want, tolerance) {
		t.Errorf("Premultiply: got %v, want %v", got, want)
	}
	if got := p.Unpremultiply(); !colorsClose(got, c, tolerance) {
		t.Errorf("Unpremultiply round trip: got %v, want %v", got, c)
	}

	// Transparent colors survive unchanged.
	z := New(0.3, 0.3, 0.3, 0)
	if got := z.Unpremultiply(); got != z {
		t.Errorf("Unpremultiply of transparent: got %v, want %v", got, z)
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.0031308, 0.04, 0.2, 0.5, 0.9, 1} {
		c := New(v, v, v, 1)
		back := c.SRGB().Linear()
		if !colorsClose(back, c, 1e-12) {
			t.Errorf("sRGB round trip at %g: got %v", v, back)
		}
	}
}

func TestSRGB_KnownValues(t *testing.T) {
	// Mid gray: linear 0.2 encodes to about 0.484.
	got := New(0.2, 0.2, 0.2, 1).SRGB().R()
	if math.Abs(got-0.4845) > 1e-4 {
		t.Errorf("SRGB(0.2): got %g, want ~0.4845", got)
	}
	// The linear segment near black.
	if got := New(0.001, 0, 0, 1).SRGB().R(); math.Abs(got-0.01292) > 1e-12 {
		t.Errorf("SRGB(0.001): got %g, want 0.01292", got)
	}
}

func TestRGBA8(t *testing.T) {
	r, g, b, a := New(1, 0.5, 0, 1).RGBA8()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("RGBA8: got (%d,%d,%d,%d)", r, g, b, a)
	}

	// Out-of-range components clamp instead of wrapping.
	r, _, _, _ = New(2.0, 0, 0, 1).RGBA8()
	if r != 255 {
		t.Errorf("RGBA8 clamp: got %d, want 255", r)
	}

	c := FromRGBA8(255, 128, 0, 255)
	if math.Abs(c.R()-1) > tolerance || math.Abs(c.G()-128.0/255) > tolerance {
		t.Errorf("FromRGBA8: got %v", c)
	}
}

func TestFromRGBA8RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 128, 254, 255} {
		r, g, b, a := FromRGBA8(v, v, v, v).RGBA8()
		if r != v || g != v || b != v || a != v {
			t.Errorf("round trip %d: got (%d,%d,%d,%d)", v, r, g, b, a)
		}
	}
}
