package shade

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA represents a linear-light color with red, green, blue, and alpha
// components. Each component is nominally in the range [0, 1], stored as
// float32 to match the GPU working precision.
//
// The shading stages operate on linear values; display re-encoding is an
// explicit step via EncodeGamma.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBA4 creates a color from all four components.
func RGBA4(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

// RGBA implements the color.Color interface.
// Components are clamped to [0, 1] and scaled to the 16-bit range.
// Note: the standard library expects alpha-premultiplied values; shade colors
// are straight alpha, so premultiplication happens here.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a16 := uint32(clamp01(c.A) * 65535)
	r = uint32(clamp01(c.R)*65535) * a16 / 65535
	g = uint32(clamp01(c.G)*65535) * a16 / 65535
	b = uint32(clamp01(c.B)*65535) * a16 / 65535
	return r, g, b, a16
}

// FromColor converts a standard color.Color to a straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 65535,
	}
}

// NRGBA converts to an 8-bit straight-alpha color, clamping out-of-range
// components. This is the pixel format of CPU render targets.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// MulRGB returns the color with the RGB channels scaled by s.
// Alpha is unchanged. This is the lighting composite operation.
func (c RGBA) MulRGB(s float32) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Lerp linearly interpolates between two colors component-wise.
// t=0 returns c, t=1 returns d. Used by texture filtering.
func (c RGBA) Lerp(d RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// EncodeGamma raises all four components to the given exponent.
// This re-encodes a linear working-space color for display and must be the
// last operation of a shading stage. Negative components (possible only
// through out-of-range inputs) are clamped to zero first so the power stays
// defined.
func (c RGBA) EncodeGamma(gamma float32) RGBA {
	return RGBA{
		R: powNonNeg(c.R, gamma),
		G: powNonNeg(c.G, gamma),
		B: powNonNeg(c.B, gamma),
		A: powNonNeg(c.A, gamma),
	}
}

// DecodeGamma is the inverse of EncodeGamma: it raises all components to
// 1/gamma, returning an encoded color to the linear working space.
func (c RGBA) DecodeGamma(gamma float32) RGBA {
	return c.EncodeGamma(1 / gamma)
}

func powNonNeg(v, e float32) float32 {
	if v <= 0 {
		return 0
	}
	return math32.Pow(v, e)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0 || math32.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}
