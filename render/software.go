// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/shade"
)

var (
	// ErrNilTarget is returned when no render target is supplied.
	ErrNilTarget = errors.New("render: nil target")

	// ErrGPUOnlyTarget is returned when a CPU renderer receives a target
	// without pixel access.
	ErrGPUOnlyTarget = errors.New("render: target has no CPU pixel access")

	// ErrBlitVariant is returned when a blit variant is passed to the
	// mesh draw path. Blit materials go through Blit.
	ErrBlitVariant = errors.New("render: blit variants have no mesh draw path")

	// ErrMissingTexture is returned when a binding enables texturing
	// without supplying a texture. This is the binding-contract check the
	// shading core itself assumes has already happened.
	ErrMissingTexture = errors.New("render: texture enabled but not bound")
)

// SoftwareRenderer is a CPU renderer executing the shade core per covered
// fragment: a depth-buffered triangle rasterizer for the 3D variants and a
// viewport pass for the blit variants.
//
// The renderer owns only its depth buffer. All draw inputs are read-only
// for the duration of the call, and each fragment is computed independently,
// mirroring the data-parallel execution the shading core is written for.
//
// Example:
//
//	r := render.NewSoftwareRenderer(800, 600)
//	target := render.NewPixmapTarget(800, 600)
//	r.Clear(target, shade.RGB(0.05, 0.05, 0.05))
//	err := r.DrawMesh(target, render.NewCube(), cam, actor,
//	    shade.LitTextured, tex, shade.DefaultLight)
type SoftwareRenderer struct {
	width  int
	height int
	depth  []float32
}

// NewSoftwareRenderer creates a CPU renderer with a depth buffer of the
// given dimensions. The depth buffer starts cleared to the far plane.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	r := &SoftwareRenderer{}
	r.Resize(width, height)
	return r
}

// Resize reallocates the depth buffer. The buffer is cleared.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.depth = make([]float32, width*height)
	r.ClearDepth()
}

// ClearDepth resets the depth buffer to the far plane (1.0).
func (r *SoftwareRenderer) ClearDepth() {
	for i := range r.depth {
		r.depth[i] = 1
	}
}

// Clear fills the target with the given color and resets the depth buffer.
// This begins a pass, like a render pass load-op of clear.
func (r *SoftwareRenderer) Clear(target RenderTarget, c shade.RGBA) error {
	if target == nil {
		return ErrNilTarget
	}
	pix := target.Pixels()
	if pix == nil {
		return ErrGPUOnlyTarget
	}

	n := c.NRGBA()
	stride := target.Stride()
	for y := 0; y < target.Height(); y++ {
		row := pix[y*stride:]
		for x := 0; x < target.Width(); x++ {
			row[x*4+0] = n.R
			row[x*4+1] = n.G
			row[x*4+2] = n.B
			row[x*4+3] = n.A
		}
	}
	r.ClearDepth()
	return nil
}

// DrawMesh renders an indexed triangle mesh with the given material
// variant. Per triangle it runs the transform stage on the three vertices,
// rasterizes, and runs the shading stage per covered fragment with a
// depth-test of less (depth cleared to 1.0). Fragments discarded by alpha
// cutout write neither color nor depth.
//
// The camera, actor, texture binding, and light are read-only for the
// duration of the draw; the renderer holds no reference to them afterwards.
func (r *SoftwareRenderer) DrawMesh(target RenderTarget, mesh *Mesh, cam shade.Camera, actor shade.Actor,
	v shade.Variant, tex shade.TextureBinding, light shade.Light) error {

	if target == nil {
		return ErrNilTarget
	}
	if target.Pixels() == nil {
		return ErrGPUOnlyTarget
	}
	if v.IsBlit() {
		return ErrBlitVariant
	}
	if v.TextureCapable && tex.Enabled && tex.Texture == nil {
		return ErrMissingTexture
	}
	if target.Width() != r.width || target.Height() != r.height {
		return fmt.Errorf("render: target size %dx%d does not match renderer %dx%d",
			target.Width(), target.Height(), r.width, r.height)
	}

	// Transform stage, once per vertex.
	varyings := make([]shade.Varyings, len(mesh.Vertices))
	for i, vert := range mesh.Vertices {
		varyings[i] = shade.TransformVertex(cam, actor, vert)
	}

	shade.Logger().Debug("software draw",
		"variant", v.Name, "vertices", len(mesh.Vertices), "triangles", mesh.TriangleCount())

	pix := target.Pixels()
	stride := target.Stride()
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		rasterTriangle(
			varyings[mesh.Indices[i]],
			varyings[mesh.Indices[i+1]],
			varyings[mesh.Indices[i+2]],
			r.width, r.height, v.FrontFace, v.DoubleSided,
			func(x, y int, depth float32, vary shade.Varyings) {
				di := y*r.width + x
				if depth >= r.depth[di] {
					return
				}
				c, ok := shade.ShadeFragment(v, vary, actor, tex, light)
				if !ok {
					return
				}
				r.depth[di] = depth
				n := c.NRGBA()
				o := y*stride + x*4
				pix[o+0] = n.R
				pix[o+1] = n.G
				pix[o+2] = n.B
				pix[o+3] = n.A
			})
	}
	return nil
}

// Blit copies a texture across the full target through the blit variant's
// shading stage: UV derived from the viewport position, optional gamma
// re-encode, no depth test (the blit pass owns the whole viewport).
func (r *SoftwareRenderer) Blit(target RenderTarget, v shade.Variant, tex *shade.Texture, sampler shade.Sampler) error {
	if target == nil {
		return ErrNilTarget
	}
	pix := target.Pixels()
	if pix == nil {
		return ErrGPUOnlyTarget
	}
	if !v.IsBlit() {
		return fmt.Errorf("render: variant %s is not a blit variant", v.Name)
	}
	if tex == nil {
		return ErrMissingTexture
	}

	w, h := target.Width(), target.Height()
	stride := target.Stride()
	for y := 0; y < h; y++ {
		// Pixel center back to clip space; the quad's UV derivation
		// does the rest.
		cy := 1 - (float32(y)+0.5)/float32(h)*2
		for x := 0; x < w; x++ {
			cx := (float32(x)+0.5)/float32(w)*2 - 1
			uv := shade.BlitUV(shade.V3(cx, cy, shade.BlitDepth), true)
			c := shade.ShadeBlit(tex, sampler, uv, v.Gamma)
			n := c.NRGBA()
			o := y*stride + x*4
			pix[o+0] = n.R
			pix[o+1] = n.G
			pix[o+2] = n.B
			pix[o+3] = n.A
		}
	}
	return nil
}
