package shade

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

const colorEps = 1e-5

func colorApprox(a, b RGBA, eps float64) bool {
	return math.Abs(float64(a.R-b.R)) < eps &&
		math.Abs(float64(a.G-b.G)) < eps &&
		math.Abs(float64(a.B-b.B)) < eps &&
		math.Abs(float64(a.A-b.A)) < eps
}

func TestGammaRoundTrip(t *testing.T) {
	colors := []RGBA{
		{0.5, 0.25, 0.75, 1},
		{0.1, 0.9, 0.01, 0.5},
		White,
		Black,
	}
	for _, gamma := range []float32{GammaLegacy, GammaDisplay} {
		for _, c := range colors {
			got := c.EncodeGamma(gamma).DecodeGamma(gamma)
			if !colorApprox(got, c, 1e-4) {
				t.Errorf("gamma %g round trip of %+v = %+v", gamma, c, got)
			}
		}
	}
}

func TestEncodeGamma(t *testing.T) {
	tests := []struct {
		name  string
		c     RGBA
		gamma float32
		want  RGBA
	}{
		{"identity on white", White, 2.2, White},
		{"identity on black", Black, 2.2, RGBA{0, 0, 0, 1}},
		{"half squared", RGBA{0.5, 0.5, 0.5, 0.5}, 2.0, RGBA{0.25, 0.25, 0.25, 0.25}},
		{"negative clamps to zero", RGBA{-1, 0.5, 0.5, 1}, 2.0, RGBA{0, 0.25, 0.25, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.EncodeGamma(tt.gamma)
			if !colorApprox(got, tt.want, colorEps) {
				t.Errorf("EncodeGamma(%g) = %+v, want %+v", tt.gamma, got, tt.want)
			}
		})
	}
}

func TestMulRGBKeepsAlpha(t *testing.T) {
	c := RGBA{0.8, 0.4, 0.2, 0.6}
	got := c.MulRGB(0.5)
	want := RGBA{0.4, 0.2, 0.1, 0.6}
	if !colorApprox(got, want, colorEps) {
		t.Errorf("MulRGB(0.5) = %+v, want %+v", got, want)
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0, 0, 0}
	b := RGBA{1, 1, 1, 1}
	if got := a.Lerp(b, 0); !colorApprox(got, a, colorEps) {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); !colorApprox(got, b, colorEps) {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	mid := RGBA{0.5, 0.5, 0.5, 0.5}
	if got := a.Lerp(b, 0.5); !colorApprox(got, mid, colorEps) {
		t.Errorf("Lerp(0.5) = %+v, want %+v", got, mid)
	}
}

func TestNRGBAClamps(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"in range", RGBA{1, 0, 0, 1}, color.NRGBA{255, 0, 0, 255}},
		{"over range", RGBA{2, -1, 0.5, 1.5}, color.NRGBA{255, 0, 128, 255}},
		{"NaN goes black", RGBA{float32(math.NaN()), 0, 0, 1}, color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	src := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	got := FromColor(src).NRGBA()
	if got != src {
		t.Errorf("FromColor round trip = %+v, want %+v", got, src)
	}
}
