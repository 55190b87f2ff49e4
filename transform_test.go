package shade

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vec4Approx(a, b mgl32.Vec4, eps float64) bool {
	for i := 0; i < 4; i++ {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

// Clip position must be projection * view * model * vec4(position, 1) in
// exactly that composition order.
func TestTransformVertexCompositionOrder(t *testing.T) {
	cam := Camera{
		View:       mgl32.LookAtV(V3(3, 2, 5), V3(0, 0, 0), V3(0, 1, 0)),
		Projection: mgl32.Perspective(mgl32.DegToRad(60), 4.0/3.0, 0.1, 100),
	}
	actor := Actor{
		Model: mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3D(0.5, V3(0, 1, 0))),
		Color: White,
	}
	positions := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {-2, 3, 1}, {0.5, -0.5, 2},
	}

	for _, p := range positions {
		got := TransformVertex(cam, actor, VertexAttributes{Position: p}).ClipPosition
		want := cam.Projection.Mul4(cam.View).Mul4(actor.Model).Mul4x1(p.Vec4(1))
		if !vec4Approx(got, want, 1e-4) {
			t.Errorf("clip(%v) = %v, want %v", p, got, want)
		}

		// The reordered composition must differ, proving the order is
		// not accidental.
		reordered := actor.Model.Mul4(cam.View).Mul4(cam.Projection).Mul4x1(p.Vec4(1))
		if p != (mgl32.Vec3{}) && vec4Approx(got, reordered, 1e-6) {
			t.Errorf("clip(%v) matches reordered composition; matrices too symmetric for this test", p)
		}
	}
}

func TestTransformVertexWorldPosition(t *testing.T) {
	actor := Actor{Model: mgl32.Translate3D(5, 0, 0), Color: White}
	out := TransformVertex(NewCamera(), actor, VertexAttributes{Position: V3(1, 2, 3)})
	if !vec3Approx(out.WorldPosition, V3(6, 2, 3), vecEps) {
		t.Errorf("world position = %v, want (6,2,3)", out.WorldPosition)
	}
}

func TestTransformVertexNormal(t *testing.T) {
	t.Run("translation does not affect normal", func(t *testing.T) {
		actor := Actor{Model: mgl32.Translate3D(100, 200, 300), Color: White}
		out := TransformVertex(NewCamera(), actor, VertexAttributes{
			Position: V3(0, 0, 0), Normal: V3(0, 1, 0),
		})
		if !vec3Approx(out.WorldNormal, V3(0, 1, 0), vecEps) {
			t.Errorf("normal = %v, want (0,1,0)", out.WorldNormal)
		}
	})

	t.Run("scale renormalizes", func(t *testing.T) {
		actor := Actor{Model: mgl32.Scale3D(3, 3, 3), Color: White}
		out := TransformVertex(NewCamera(), actor, VertexAttributes{
			Position: V3(0, 0, 0), Normal: V3(0, 0, 1),
		})
		if l := out.WorldNormal.Len(); math.Abs(float64(l-1)) > vecEps {
			t.Errorf("normal length = %v, want 1", l)
		}
	})

	t.Run("zero normal stays zero", func(t *testing.T) {
		out := TransformVertex(NewCamera(), NewActor(), VertexAttributes{
			Position: V3(0, 0, 0), Normal: V3(0, 0, 0),
		})
		if out.WorldNormal != (mgl32.Vec3{}) {
			t.Errorf("zero normal = %v, want zero vector", out.WorldNormal)
		}
	})
}

func TestTransformVertexPassthrough(t *testing.T) {
	vert := VertexAttributes{
		Position: V3(0, 0, 0),
		Color:    RGBA{0.1, 0.2, 0.3, 0.4},
		UV:       V2(0.25, 0.75),
	}
	out := TransformVertex(NewCamera(), NewActor(), vert)
	if out.Color != vert.Color {
		t.Errorf("color = %+v, want %+v", out.Color, vert.Color)
	}
	if out.UV != vert.UV {
		t.Errorf("uv = %v, want %v", out.UV, vert.UV)
	}
}
