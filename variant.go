package shade

// ColorSource selects where a variant's interpolated base color comes from
// when no texture is sampled.
type ColorSource int

const (
	// ColorSourceActor uses the actor uniform color for every fragment.
	ColorSourceActor ColorSource = iota

	// ColorSourceVertex uses the interpolated per-vertex color.
	ColorSourceVertex
)

// String returns the color source name.
func (s ColorSource) String() string {
	switch s {
	case ColorSourceActor:
		return "Actor"
	case ColorSourceVertex:
		return "Vertex"
	default:
		return "Unknown"
	}
}

// Winding declares which triangle winding order is considered front-facing
// after projection.
type Winding int

const (
	// WindingCCW treats counter-clockwise triangles as front-facing.
	WindingCCW Winding = iota

	// WindingCW treats clockwise triangles as front-facing.
	WindingCW
)

// Gamma exponents. A variant with GammaNone writes raw linear output,
// typically because its input already carries encoded color (post-process
// blits).
const (
	GammaNone    float32 = 0
	GammaLegacy  float32 = 2.0
	GammaDisplay float32 = 2.2
)

// CutoutThreshold is the alpha below which a cutout fragment is discarded.
// The comparison is strict: a fragment at exactly the threshold survives.
const CutoutThreshold float32 = 0.5

// Variant is a named configuration of the shading algorithm, corresponding
// to one material type. The original shader programs were near-identical
// permutations of the same algorithm under different feature flags; a
// Variant captures those flags so one parameterized implementation replaces
// the N copies.
//
// Exactly one base-color source is active per fragment: the sampled texture
// when TextureCapable is set and the bound TextureBinding is enabled,
// otherwise the Source color. The texture/color choice and the discard
// ordering are deliberately uniform across variants (resolve base color,
// discard on its alpha, then light): the historical programs disagreed only
// in branch shape, not in intent.
type Variant struct {
	// Name identifies the variant in logs and generated shader labels.
	Name string

	// Source is the non-texture base color source.
	Source ColorSource

	// TextureCapable declares bind group 1 (toggle, texture, sampler).
	// Only texture-capable variants may sample a texture.
	TextureCapable bool

	// Lighting enables the point-light Lambertian shading step.
	// Lit variants require a normal attribute.
	Lighting bool

	// DoubleSided disables back-face culling and flips the world normal
	// on back-facing fragments before lighting, so both sides of the
	// surface light correctly.
	DoubleSided bool

	// AlphaCutout discards fragments whose resolved base alpha is below
	// CutoutThreshold. A discarded fragment writes neither color nor
	// depth.
	AlphaCutout bool

	// Gamma is the display-encoding exponent applied to the final color,
	// or GammaNone to write raw linear output.
	Gamma float32

	// FrontFace declares the front-facing winding order.
	FrontFace Winding

	// blit marks the full-screen passthrough variants. Blit materials
	// have no camera, actor, or lighting inputs and are kept structurally
	// separate from the 3D path; see ShadeBlit and BlitQuad.
	blit bool
}

// IsBlit reports whether this is a full-screen blit variant.
func (v Variant) IsBlit() bool { return v.blit }

// String returns the variant name.
func (v Variant) String() string { return v.Name }

// The material table. Each entry mirrors one of the original shader
// programs; together they cover the full feature matrix.
var (
	// UnlitColor fills with the actor color, no lighting.
	UnlitColor = Variant{
		Name:      "UnlitColor",
		Source:    ColorSourceActor,
		Gamma:     GammaDisplay,
		FrontFace: WindingCCW,
	}

	// VertexColor fills with the interpolated vertex color, no lighting.
	// This is the oldest material in the family and keeps its original
	// 2.0 encoding exponent.
	VertexColor = Variant{
		Name:      "VertexColor",
		Source:    ColorSourceVertex,
		Gamma:     GammaLegacy,
		FrontFace: WindingCCW,
	}

	// LitVertexColor shades the interpolated vertex color with the point
	// light.
	LitVertexColor = Variant{
		Name:      "LitVertexColor",
		Source:    ColorSourceVertex,
		Lighting:  true,
		Gamma:     GammaDisplay,
		FrontFace: WindingCCW,
	}

	// LitTextured is the full-featured mesh material: textured when the
	// binding enables it, actor-colored otherwise, lit, double-sided,
	// with alpha cutout.
	LitTextured = Variant{
		Name:           "LitTextured",
		Source:         ColorSourceActor,
		TextureCapable: true,
		Lighting:       true,
		DoubleSided:    true,
		AlphaCutout:    true,
		Gamma:          GammaDisplay,
		FrontFace:      WindingCW,
	}

	// BlitVariant copies a texture to the full viewport without
	// re-encoding.
	BlitVariant = Variant{
		Name:           "Blit",
		Source:         ColorSourceActor,
		TextureCapable: true,
		Gamma:          GammaNone,
		FrontFace:      WindingCCW,
		blit:           true,
	}

	// BlitGamma copies a texture to the full viewport with display
	// encoding.
	BlitGamma = Variant{
		Name:           "BlitGamma",
		Source:         ColorSourceActor,
		TextureCapable: true,
		Gamma:          GammaDisplay,
		FrontFace:      WindingCCW,
		blit:           true,
	}
)

// Variants lists the material table in declaration order.
var Variants = []Variant{
	UnlitColor,
	VertexColor,
	LitVertexColor,
	LitTextured,
	BlitVariant,
	BlitGamma,
}
