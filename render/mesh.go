// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/shade"
)

// Mesh is an indexed triangle list in local space. Vertices carry the full
// attribute set; each variant's transform stage reads only the attributes
// its layout declares.
type Mesh struct {
	Vertices []shade.VertexAttributes
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// NewQuadMesh creates a unit quad in the XY plane (z=0), facing +Z with
// counter-clockwise winding, UVs spanning the full texture with the top-left
// texel at the quad's top-left corner.
func NewQuadMesh() *Mesh {
	return &Mesh{
		Vertices: []shade.VertexAttributes{
			{Position: shade.V3(-1, -1, 0), Normal: shade.V3(0, 0, 1), Color: shade.White, UV: shade.V2(0, 1)},
			{Position: shade.V3(1, -1, 0), Normal: shade.V3(0, 0, 1), Color: shade.White, UV: shade.V2(1, 1)},
			{Position: shade.V3(1, 1, 0), Normal: shade.V3(0, 0, 1), Color: shade.White, UV: shade.V2(1, 0)},
			{Position: shade.V3(-1, 1, 0), Normal: shade.V3(0, 0, 1), Color: shade.White, UV: shade.V2(0, 0)},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// NewCube creates a 2x2x2 cube centered at the origin with per-face normals
// and UVs, wound counter-clockwise viewed from outside.
func NewCube() *Mesh {
	m := &Mesh{}
	add := func(normal mgl32.Vec3, corners [4]mgl32.Vec3) {
		base := uint32(len(m.Vertices))
		uvs := [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
		for i, p := range corners {
			m.Vertices = append(m.Vertices, shade.VertexAttributes{
				Position: p,
				Normal:   normal,
				Color:    shade.White,
				UV:       uvs[i],
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3)
	}

	// Near (+Z)
	add(shade.V3(0, 0, 1), [4]mgl32.Vec3{
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}})
	// Far (-Z)
	add(shade.V3(0, 0, -1), [4]mgl32.Vec3{
		{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}})
	// Right (+X)
	add(shade.V3(1, 0, 0), [4]mgl32.Vec3{
		{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}})
	// Left (-X)
	add(shade.V3(-1, 0, 0), [4]mgl32.Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}})
	// Top (+Y)
	add(shade.V3(0, 1, 0), [4]mgl32.Vec3{
		{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}})
	// Bottom (-Y)
	add(shade.V3(0, -1, 0), [4]mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}})

	return m
}
