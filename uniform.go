package shade

import "github.com/go-gl/mathgl/mgl32"

// Bind group and binding slot contract.
//
// Group 0 holds the per-pass camera and per-draw actor uniforms; group 1
// holds the texture toggle, texture, and sampler. The split lets a material
// rebind its texture group per draw without touching the camera group, and
// every rendition of the shading core (generated WGSL, GPU pipeline layouts,
// CPU entry points) preserves it.
const (
	UniformGroup = 0
	TextureGroup = 1

	CameraBinding = 0
	ActorBinding  = 1

	TextureEnabledBinding = 0
	TextureBinding2D      = 1
	SamplerBinding        = 2
)

// Camera is the per-pass uniform block: the world-to-view and
// view-to-clip transforms. It is owned by the frame context, updated once
// per frame by the external renderer, and immutable during a draw.
type Camera struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// NewCamera returns a camera with identity transforms.
func NewCamera() Camera {
	return Camera{View: mgl32.Ident4(), Projection: mgl32.Ident4()}
}

// LookAt builds a camera viewing center from eye with a Y-up orientation
// and a 45 degree vertical field of view (near 0.1, far 1000).
func LookAt(eye, center mgl32.Vec3, aspect float32) Camera {
	return Camera{
		View:       mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0}),
		Projection: mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 1000),
	}
}

// ViewProjection returns projection * view.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.View)
}

// Actor is the per-draw uniform block: the local-to-world transform of the
// drawable and its base color. One instance per draw call, immutable during
// the draw. Color is the base color for variants that do not read a
// per-vertex color, and the fallback when a texture-capable variant has its
// texture disabled.
type Actor struct {
	Model mgl32.Mat4
	Color RGBA
}

// NewActor returns an actor with an identity transform and a white base
// color.
func NewActor() Actor {
	return Actor{Model: mgl32.Ident4(), Color: White}
}

// Light is the point light consumed by the lit variants.
//
// The original shading programs baked the light position into the fragment
// logic as a literal constant; it is an explicit parameter here so the
// caller owns it like every other per-draw input.
type Light struct {
	Position mgl32.Vec3
}

// DefaultLight is a light placed above and behind the default camera
// position, matching the constant the shading programs historically used.
var DefaultLight = Light{Position: mgl32.Vec3{0, 10, -10}}

// TextureBinding is the content of bind group 1: the toggle selecting the
// fragment base-color source, and the texture/sampler pair it samples when
// enabled. When Enabled is false the texture may be nil and is never
// touched. It is owned by the material instance.
type TextureBinding struct {
	Enabled bool
	Texture *Texture
	Sampler Sampler
}
