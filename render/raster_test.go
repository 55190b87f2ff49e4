// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/gogpu/shade"
)

// clipVertex builds a varying already in clip space (w = 1), the form the
// rasterizer receives after an identity camera transform.
func clipVertex(x, y, z float32, c shade.RGBA) shade.Varyings {
	return shade.Varyings{
		ClipPosition: shade.V3(x, y, z).Vec4(1),
		Color:        c,
	}
}

type fragment struct {
	x, y  int
	depth float32
	vary  shade.Varyings
}

func collect(v0, v1, v2 shade.Varyings, w, h int, front shade.Winding, doubleSided bool) []fragment {
	var out []fragment
	rasterTriangle(v0, v1, v2, w, h, front, doubleSided,
		func(x, y int, depth float32, vary shade.Varyings) {
			out = append(out, fragment{x, y, depth, vary})
		})
	return out
}

// ccwTriangle is counter-clockwise in NDC (y up), covering the lower middle
// of the viewport.
func ccwTriangle() (shade.Varyings, shade.Varyings, shade.Varyings) {
	return clipVertex(-0.8, -0.8, 0, shade.Red),
		clipVertex(0.8, -0.8, 0, shade.Green),
		clipVertex(0, 0.8, 0, shade.Blue)
}

func TestRasterFacing(t *testing.T) {
	v0, v1, v2 := ccwTriangle()

	t.Run("front face is emitted with facing flag", func(t *testing.T) {
		frags := collect(v0, v1, v2, 16, 16, shade.WindingCCW, false)
		if len(frags) == 0 {
			t.Fatal("no fragments for a front-facing triangle")
		}
		for _, f := range frags {
			if !f.vary.FrontFacing {
				t.Fatal("front-facing triangle emitted back-facing fragments")
			}
		}
	})

	t.Run("back face is culled when single-sided", func(t *testing.T) {
		if frags := collect(v0, v1, v2, 16, 16, shade.WindingCW, false); len(frags) != 0 {
			t.Errorf("culled triangle emitted %d fragments", len(frags))
		}
	})

	t.Run("back face survives when double-sided", func(t *testing.T) {
		frags := collect(v0, v1, v2, 16, 16, shade.WindingCW, true)
		if len(frags) == 0 {
			t.Fatal("double-sided back face emitted no fragments")
		}
		for _, f := range frags {
			if f.vary.FrontFacing {
				t.Fatal("back-facing fragment flagged front-facing")
			}
		}
	})
}

func TestRasterRejectsBehindCamera(t *testing.T) {
	v0, v1, v2 := ccwTriangle()
	// Any vertex at or behind the camera plane rejects the whole triangle.
	v1.ClipPosition[3] = 0
	if frags := collect(v0, v1, v2, 16, 16, shade.WindingCCW, false); len(frags) != 0 {
		t.Errorf("triangle with w=0 vertex emitted %d fragments", len(frags))
	}
	v1.ClipPosition[3] = -2
	if frags := collect(v0, v1, v2, 16, 16, shade.WindingCCW, false); len(frags) != 0 {
		t.Errorf("triangle with w<0 vertex emitted %d fragments", len(frags))
	}
}

func TestRasterRejectsDepthOutOfRange(t *testing.T) {
	v0 := clipVertex(-0.8, -0.8, 2, shade.Red)
	v1 := clipVertex(0.8, -0.8, 2, shade.Green)
	v2 := clipVertex(0, 0.8, 2, shade.Blue)
	if frags := collect(v0, v1, v2, 16, 16, shade.WindingCCW, false); len(frags) != 0 {
		t.Errorf("triangle beyond the far plane emitted %d fragments", len(frags))
	}
}

func TestRasterDegenerate(t *testing.T) {
	v := clipVertex(0, 0, 0, shade.White)
	if frags := collect(v, v, v, 16, 16, shade.WindingCCW, true); len(frags) != 0 {
		t.Errorf("degenerate triangle emitted %d fragments", len(frags))
	}
}

func TestRasterInterpolatesColor(t *testing.T) {
	v0, v1, v2 := ccwTriangle()
	frags := collect(v0, v1, v2, 64, 64, shade.WindingCCW, false)
	if len(frags) == 0 {
		t.Fatal("no fragments")
	}

	// With w = 1 everywhere, interpolation is plain barycentric: each
	// channel stays within [0, 1] and sums to 1 at every fragment.
	for _, f := range frags {
		sum := f.vary.Color.R + f.vary.Color.G + f.vary.Color.B
		if math.Abs(float64(sum-1)) > 1e-4 {
			t.Fatalf("fragment (%d,%d) channels sum to %v, want 1", f.x, f.y, sum)
		}
	}

	// A fragment near the red corner is dominated by red.
	var corner fragment
	best := float32(-1)
	for _, f := range frags {
		if f.vary.Color.R > best {
			best = f.vary.Color.R
			corner = f
		}
	}
	if corner.vary.Color.R < 0.8 {
		t.Errorf("reddest fragment has R = %v, want near 1", corner.vary.Color.R)
	}
	if corner.x > 16 || corner.y < 48 {
		t.Errorf("reddest fragment at (%d,%d), want near the lower-left corner", corner.x, corner.y)
	}
}

func TestRasterPerspectiveCorrection(t *testing.T) {
	// Two vertices at w=1, one at w=4: screen-space midpoints must weight
	// toward the nearer (smaller w) vertices, so the far vertex's color
	// contributes less than its plain barycentric share.
	v0 := clipVertex(-0.8, -0.8, 0, shade.RGBA{R: 1, A: 1})
	v1 := clipVertex(0.8, -0.8, 0, shade.RGBA{R: 1, A: 1})
	far := shade.Varyings{
		ClipPosition: shade.V3(0, 3.2, 0).Vec4(4), // NDC (0, 0.8) at w=4
		Color:        shade.RGBA{G: 1, A: 1},
	}

	frags := collect(v0, v1, far, 64, 64, shade.WindingCCW, false)
	if len(frags) == 0 {
		t.Fatal("no fragments")
	}
	var maxG float32
	for _, f := range frags {
		if f.vary.Color.G > maxG {
			maxG = f.vary.Color.G
		}
	}
	// Without perspective correction fragments adjacent to the far vertex
	// would approach G=1; with correction the near vertices dominate until
	// very close, and the covered pixel centers stay well below that.
	if maxG > 0.95 {
		t.Errorf("max far-vertex weight %v suggests screen-space interpolation", maxG)
	}
	if maxG == 0 {
		t.Error("far vertex contributed nothing; interpolation broken")
	}
}

func TestRasterStaysInBounds(t *testing.T) {
	// A triangle larger than the viewport must clamp its raster window.
	v0 := clipVertex(-8, -8, 0, shade.Red)
	v1 := clipVertex(8, -8, 0, shade.Green)
	v2 := clipVertex(0, 8, 0, shade.Blue)
	frags := collect(v0, v1, v2, 8, 8, shade.WindingCCW, false)
	if len(frags) != 64 {
		t.Errorf("viewport-covering triangle emitted %d fragments, want 64", len(frags))
	}
	for _, f := range frags {
		if f.x < 0 || f.x >= 8 || f.y < 0 || f.y >= 8 {
			t.Fatalf("fragment out of bounds at (%d,%d)", f.x, f.y)
		}
	}
}
