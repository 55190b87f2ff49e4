package shade

import "github.com/go-gl/mathgl/mgl32"

// VertexAttributes holds the per-vertex inputs of the transform stage, in
// local space. Which fields a variant actually reads is declared by its
// vertex layout; unused fields are ignored by that variant's stages.
type VertexAttributes struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    RGBA
	UV       mgl32.Vec2
}

// AttributeSemantic names the meaning of a vertex attribute slot.
type AttributeSemantic int

const (
	SemanticPosition AttributeSemantic = iota
	SemanticNormal
	SemanticColor
	SemanticUV
)

// String returns the semantic name as it appears in shader source.
func (s AttributeSemantic) String() string {
	switch s {
	case SemanticPosition:
		return "position"
	case SemanticNormal:
		return "normal"
	case SemanticColor:
		return "color"
	case SemanticUV:
		return "uv"
	default:
		return "unknown"
	}
}

// AttributeFormat is the component layout of a vertex attribute slot.
type AttributeFormat int

const (
	Float32x2 AttributeFormat = iota
	Float32x3
	Float32x4
)

// Size returns the attribute size in bytes.
func (f AttributeFormat) Size() int {
	switch f {
	case Float32x2:
		return 8
	case Float32x3:
		return 12
	default:
		return 16
	}
}

// String returns the WGSL name of the format.
func (f AttributeFormat) String() string {
	switch f {
	case Float32x2:
		return "vec2<f32>"
	case Float32x3:
		return "vec3<f32>"
	default:
		return "vec4<f32>"
	}
}

// VertexAttributeLayout maps one attribute slot to its semantic and format.
type VertexAttributeLayout struct {
	Slot     int
	Semantic AttributeSemantic
	Format   AttributeFormat
}

// VertexLayout returns the slot-to-semantic mapping the variant's transform
// stage consumes. Slot 0 is always position; the following slots carry
// exactly the attributes the variant's stages read: a normal when lit, a
// color when vertex-sourced, a uv when texture-capable.
func (v Variant) VertexLayout() []VertexAttributeLayout {
	layout := []VertexAttributeLayout{
		{Slot: 0, Semantic: SemanticPosition, Format: Float32x3},
	}
	if v.blit {
		return layout
	}
	add := func(s AttributeSemantic, f AttributeFormat) {
		layout = append(layout, VertexAttributeLayout{Slot: len(layout), Semantic: s, Format: f})
	}
	if v.Lighting {
		add(SemanticNormal, Float32x3)
	}
	if v.Source == ColorSourceVertex {
		add(SemanticColor, Float32x4)
	}
	if v.TextureCapable {
		add(SemanticUV, Float32x2)
	}
	return layout
}

// HasSemantic reports whether the variant's layout carries the semantic.
func (v Variant) HasSemantic(s AttributeSemantic) bool {
	for _, a := range v.VertexLayout() {
		if a.Semantic == s {
			return true
		}
	}
	return false
}

// Stride returns the vertex size in bytes under the variant's layout.
func (v Variant) Stride() int {
	n := 0
	for _, a := range v.VertexLayout() {
		n += a.Format.Size()
	}
	return n
}

// Varyings are the transform-stage outputs interpolated across a triangle's
// covered fragments. ClipPosition feeds rasterization; the remaining fields
// feed the shading stage. FrontFacing is not interpolated: the rasterizer
// derives it per triangle from the projected winding and stamps it on every
// fragment of that triangle.
type Varyings struct {
	ClipPosition  mgl32.Vec4
	WorldPosition mgl32.Vec3
	WorldNormal   mgl32.Vec3
	Color         RGBA
	UV            mgl32.Vec2
	FrontFacing   bool
}

// Lerp interpolates all varyings between a and b. The rasterizer uses the
// barycentric form instead; Lerp serves edge clipping and tests.
func (a Varyings) Lerp(b Varyings, t float32) Varyings {
	return Varyings{
		ClipPosition:  lerpVec4(a.ClipPosition, b.ClipPosition, t),
		WorldPosition: lerpVec3(a.WorldPosition, b.WorldPosition, t),
		WorldNormal:   lerpVec3(a.WorldNormal, b.WorldNormal, t),
		Color:         a.Color.Lerp(b.Color, t),
		UV:            lerpVec2(a.UV, b.UV, t),
		FrontFacing:   a.FrontFacing,
	}
}

func lerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}
