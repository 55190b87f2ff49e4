package shade

import "github.com/go-gl/mathgl/mgl32"

// Full-screen blit variant.
//
// The blit path is a fixed-function special case kept structurally separate
// from the 3D variants: its transform stage is the identity over a quad
// already in clip space, it derives UV directly from position, and its
// shading stage is pure texture sampling with optional gamma re-encoding.
// No camera, actor, or lighting types appear here, and it shares no uniform
// block with the 3D path.

// BlitDepth is the clip-space depth of the blit quad: behind the near plane
// but in front of unit depth, so the quad sorts behind regular geometry
// when drawn into a depth-tested pass.
const BlitDepth float32 = 0.5

// BlitQuad returns the six clip-space vertices of a viewport-filling quad
// (two counter-clockwise triangles at z = BlitDepth). Only slot 0
// (position) is populated; the blit layout carries no other attribute.
func BlitQuad() [6]mgl32.Vec3 {
	return [6]mgl32.Vec3{
		{1, 1, BlitDepth},
		{-1, 1, BlitDepth},
		{1, -1, BlitDepth},
		{-1, -1, BlitDepth},
		{1, -1, BlitDepth},
		{-1, 1, BlitDepth},
	}
}

// BlitUV derives the texture coordinate for a blit-quad position:
// uv = position.xy * 0.5 + 0.5. With flipV the V axis is inverted to match
// image-origin conventions (clip-space +Y is up, image row 0 is the top).
func BlitUV(pos mgl32.Vec3, flipV bool) mgl32.Vec2 {
	u := pos.X()*0.5 + 0.5
	v := pos.Y()*0.5 + 0.5
	if flipV {
		v = 1 - v
	}
	return mgl32.Vec2{u, v}
}

// ShadeBlit is the fragment-stage entry point for the blit variants: it
// samples the texture and applies the variant's gamma encode, or none for
// raw passthrough of already-encoded color.
func ShadeBlit(tex *Texture, s Sampler, uv mgl32.Vec2, gamma float32) RGBA {
	c := tex.Sample(s, uv)
	if gamma != GammaNone {
		c = c.EncodeGamma(gamma)
	}
	return c
}
