// Package shade implements a portable 3D material/shading core for the
// GoGPU ecosystem.
//
// # Overview
//
// shade models the shading logic of a forward renderer as a small family of
// material variants: one parameterized vertex-transform stage and one
// parameterized fragment-shading stage, instead of N hand-duplicated shader
// programs. The same variant description drives three renditions:
//
//   - the CPU shading core in this package (the reference semantics),
//   - WGSL shader source generated per variant by the wgsl sub-package,
//   - a software rasterizer in the render sub-package that executes the
//     CPU core per covered fragment.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/shade"
//	    "github.com/gogpu/shade/render"
//	)
//
//	target := render.NewPixmapTarget(800, 600)
//	r := render.NewSoftwareRenderer(800, 600)
//	r.Clear(target, shade.RGB(0.05, 0.05, 0.05))
//
//	cam := shade.LookAt(shade.V3(0, 2, -5), shade.V3(0, 0, 0), 800.0/600.0)
//	actor := shade.Actor{Model: mgl32.Ident4(), Color: shade.Red}
//	r.DrawMesh(target, render.NewCube(), cam, actor,
//	    shade.LitTextured, shade.TextureBinding{}, shade.DefaultLight)
//
// # Data contract
//
// The external renderer owns all resources. Camera and Actor uniform blocks
// live in bind group 0, the texture toggle/image/sampler in bind group 1, so
// a material can rebind its texture group without touching the camera group.
// All uniform data is supplied fresh per draw call; the shading core holds no
// state between draws and is safe for massively parallel per-vertex and
// per-fragment invocation.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Variant, Camera, Actor, Light, Texture, VertexAttributes
//   - Stages: TransformVertex (vertex), ShadeFragment (fragment), ShadeBlit
//   - Sub-packages: wgsl (shader generation/compilation), render (targets,
//     software renderer, GPU renderer scaffold)
package shade
