// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/shade"
)

// minClipW conservatively rejects triangles touching or crossing the
// camera plane instead of clipping them. Near-plane clipping is not part of
// the shading core's contract; the software path skips such triangles the
// way a draw outside the frustum simply covers no fragments.
const minClipW = 1e-6

// screenVertex is a transformed vertex mapped to the target's pixel grid.
type screenVertex struct {
	x, y  float32 // pixel coordinates, y down
	depth float32 // NDC z, tested against the depth buffer
	invW  float32 // 1/clip.w, for perspective-correct interpolation
	vary  shade.Varyings
}

func toScreen(v shade.Varyings, width, height int) screenVertex {
	w := v.ClipPosition.W()
	inv := 1 / w
	ndc := v.ClipPosition.Vec3().Mul(inv)
	return screenVertex{
		// NDC y is up, pixel rows grow down.
		x:     (ndc.X() + 1) * 0.5 * float32(width),
		y:     (1 - ndc.Y()) * 0.5 * float32(height),
		depth: ndc.Z(),
		invW:  inv,
		vary:  v,
	}
}

// edgeFn is the signed area of the parallelogram (b-a, p-a) in screen
// space. Its sign tells which side of edge ab the point p falls on.
func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterTriangle walks the covered pixels of one transformed triangle and
// invokes emit with perspective-correct interpolated varyings. The facing
// flag is derived once per triangle from the projected winding and stamped
// on every fragment; back-facing triangles of single-sided variants are
// culled here.
func rasterTriangle(v0, v1, v2 shade.Varyings, width, height int, frontFace shade.Winding, doubleSided bool,
	emit func(x, y int, depth float32, vary shade.Varyings)) {

	if v0.ClipPosition.W() < minClipW || v1.ClipPosition.W() < minClipW || v2.ClipPosition.W() < minClipW {
		return
	}

	a := toScreen(v0, width, height)
	b := toScreen(v1, width, height)
	c := toScreen(v2, width, height)

	area := edgeFn(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}

	// The y flip from NDC to pixel rows reverses orientation: a triangle
	// counter-clockwise in NDC has negative screen-space area here.
	ccw := area < 0
	frontFacing := ccw == (frontFace == shade.WindingCCW)
	if !doubleSided && !frontFacing {
		return
	}

	minX := clampInt(int(min3(a.x, b.x, c.x)), 0, width-1)
	maxX := clampInt(int(max3(a.x, b.x, c.x))+1, 0, width-1)
	minY := clampInt(int(min3(a.y, b.y, c.y)), 0, height-1)
	maxY := clampInt(int(max3(a.y, b.y, c.y))+1, 0, height-1)

	invArea := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			// Barycentric weights via edge functions; a pixel is
			// covered when all three carry the sign of the full
			// area.
			w0 := edgeFn(b.x, b.y, c.x, c.y, px, py)
			w1 := edgeFn(c.x, c.y, a.x, a.y, px, py)
			w2 := edgeFn(a.x, a.y, b.x, b.y, px, py)
			if !sameSide(w0, area) || !sameSide(w1, area) || !sameSide(w2, area) {
				continue
			}
			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := 1 - b0 - b1

			depth := b0*a.depth + b1*b.depth + b2*c.depth
			if depth < 0 || depth > 1 {
				continue
			}

			emit(x, y, depth, interpolate(a, b, c, b0, b1, b2, frontFacing))
		}
	}
}

// interpolate blends the varyings of the three vertices with perspective
// correction: screen-space barycentric weights are divided by each vertex's
// clip w and renormalized, so attributes vary linearly in world space, not
// screen space.
func interpolate(a, b, c screenVertex, b0, b1, b2 float32, frontFacing bool) shade.Varyings {
	p0 := b0 * a.invW
	p1 := b1 * b.invW
	p2 := b2 * c.invW
	sum := p0 + p1 + p2
	if sum != 0 {
		p0 /= sum
		p1 /= sum
		p2 /= sum
	}

	return shade.Varyings{
		WorldPosition: weighted3(a.vary.WorldPosition, b.vary.WorldPosition, c.vary.WorldPosition, p0, p1, p2),
		WorldNormal:   weighted3(a.vary.WorldNormal, b.vary.WorldNormal, c.vary.WorldNormal, p0, p1, p2),
		Color:         weightedColor(a.vary.Color, b.vary.Color, c.vary.Color, p0, p1, p2),
		UV:            weighted2(a.vary.UV, b.vary.UV, c.vary.UV, p0, p1, p2),
		FrontFacing:   frontFacing,
	}
}

func weighted2(a, b, c mgl32.Vec2, wa, wb, wc float32) mgl32.Vec2 {
	return a.Mul(wa).Add(b.Mul(wb)).Add(c.Mul(wc))
}

func weighted3(a, b, c mgl32.Vec3, wa, wb, wc float32) mgl32.Vec3 {
	return a.Mul(wa).Add(b.Mul(wb)).Add(c.Mul(wc))
}

func weightedColor(a, b, c shade.RGBA, wa, wb, wc float32) shade.RGBA {
	return shade.RGBA{
		R: a.R*wa + b.R*wb + c.R*wc,
		G: a.G*wa + b.G*wb + c.G*wc,
		B: a.B*wa + b.B*wb + c.B*wc,
		A: a.A*wa + b.A*wb + c.A*wc,
	}
}

func sameSide(w, area float32) bool {
	if area > 0 {
		return w >= 0
	}
	return w <= 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
