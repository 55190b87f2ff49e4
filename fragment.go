package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Shade band of the point-light Lambertian model: the direct contribution is
// clamped to shadeDirectMax and the ambient floor shadeAmbient is added, so
// the factor stays in [0.3, 1.0]. A surface is never fully dark and never
// blown out by the single light.
const (
	shadeAmbient   float32 = 0.3
	shadeDirectMax float32 = 0.7
)

// ShadeFactor maps a Lambertian n.l term to the shading band [0.3, 1.0].
// Out-of-range and NaN inputs (degenerate normals) land on the ambient
// floor instead of propagating.
func ShadeFactor(ndotl float32) float32 {
	if math32.IsNaN(ndotl) {
		return shadeAmbient
	}
	return mgl32.Clamp(ndotl, 0, shadeDirectMax) + shadeAmbient
}

// ShadeFragment is the fragment-stage entry point for the 3D variants.
//
// It resolves the fragment color in three steps, uniformly for every
// variant:
//
//  1. Base color: the sampled texture when the variant is texture-capable
//     and the binding enables it, otherwise the variant's color source
//     (interpolated vertex color or actor color). Exactly one source is
//     active; a bound but disabled texture is never touched.
//  2. Alpha cutout: when enabled, a fragment whose base alpha is below
//     CutoutThreshold is discarded. The comparison is strict, so alpha of
//     exactly 0.5 survives. Discarded fragments return ok=false and must
//     write neither color nor depth.
//  3. Lighting, then gamma: lit variants scale the RGB channels by the
//     point-light shade factor (alpha unchanged), flipping the normal first
//     on back-facing fragments of double-sided variants. The gamma encode
//     is always last.
//
// ShadeFragment is pure: it reads the bindings, never mutates them, and may
// run for every covered fragment of a draw in parallel. It cannot fail;
// malformed inputs degrade to a stable color.
func ShadeFragment(v Variant, in Varyings, actor Actor, tex TextureBinding, light Light) (color RGBA, ok bool) {
	base := actor.Color
	if v.Source == ColorSourceVertex {
		base = in.Color
	}
	if v.TextureCapable && tex.Enabled && tex.Texture != nil {
		base = tex.Texture.Sample(tex.Sampler, in.UV)
	}

	if v.AlphaCutout && base.A < CutoutThreshold {
		return RGBA{}, false
	}

	if v.Lighting {
		n := in.WorldNormal
		if v.DoubleSided && !in.FrontFacing {
			n = n.Mul(-1)
		}
		lightDir := SafeNormalize(light.Position.Sub(in.WorldPosition))
		base = base.MulRGB(ShadeFactor(n.Dot(lightDir)))
	}

	if v.Gamma != GammaNone {
		base = base.EncodeGamma(v.Gamma)
	}
	return base, true
}
