package shade

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// checker2x2 builds a 2x2 texture: red top-left, green top-right,
// blue bottom-left, white bottom-right.
func checker2x2() *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return NewTexture(img)
}

func TestSolidTextureSample(t *testing.T) {
	c := RGBA{0.25, 0.5, 0.75, 1}
	tex := NewSolidTexture(c)
	if tex.Width() != 1 || tex.Height() != 1 {
		t.Fatalf("solid texture is %dx%d, want 1x1", tex.Width(), tex.Height())
	}
	for _, s := range []Sampler{{}, LinearSampler, {Filter: FilterNearest, Wrap: WrapClamp}} {
		got := tex.Sample(s, V2(0.5, 0.5))
		if !colorApprox(got, c, 1e-2) {
			t.Errorf("sampler %+v: got %+v, want %+v", s, got, c)
		}
	}
}

func TestNearestSampleQuadrants(t *testing.T) {
	tex := checker2x2()
	s := Sampler{Filter: FilterNearest}
	tests := []struct {
		name string
		uv   mgl32.Vec2
		want RGBA
	}{
		{"top left", V2(0.25, 0.25), Red},
		{"top right", V2(0.75, 0.25), Green},
		{"bottom left", V2(0.25, 0.75), Blue},
		{"bottom right", V2(0.75, 0.75), White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Sample(s, tt.uv)
			if !colorApprox(got, tt.want, 1e-2) {
				t.Errorf("Sample(%v) = %+v, want %+v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestWrapModes(t *testing.T) {
	tex := checker2x2()

	t.Run("repeat tiles", func(t *testing.T) {
		s := Sampler{Filter: FilterNearest, Wrap: WrapRepeat}
		// 1.25 wraps to 0.25, -0.75 wraps to 0.25.
		if got := tex.Sample(s, V2(1.25, 0.25)); !colorApprox(got, Red, 1e-2) {
			t.Errorf("u=1.25 got %+v, want red", got)
		}
		if got := tex.Sample(s, V2(-0.75, 0.25)); !colorApprox(got, Red, 1e-2) {
			t.Errorf("u=-0.75 got %+v, want red", got)
		}
	})

	t.Run("clamp pins to edge", func(t *testing.T) {
		s := Sampler{Filter: FilterNearest, Wrap: WrapClamp}
		if got := tex.Sample(s, V2(5, 0.25)); !colorApprox(got, Green, 1e-2) {
			t.Errorf("u=5 got %+v, want right edge green", got)
		}
		if got := tex.Sample(s, V2(-5, 0.75)); !colorApprox(got, Blue, 1e-2) {
			t.Errorf("u=-5 got %+v, want left edge blue", got)
		}
	})
}

func TestBilinearBlends(t *testing.T) {
	tex := checker2x2()
	// The texture center is equidistant from all four texel centers, so
	// bilinear yields their average.
	got := tex.Sample(LinearSampler, V2(0.5, 0.5))
	want := RGBA{0.5, 0.5, 0.5, 1}
	if !colorApprox(got, want, 1e-2) {
		t.Errorf("center sample = %+v, want average %+v", got, want)
	}

	// At a texel center bilinear degenerates to that texel.
	got = tex.Sample(LinearSampler, V2(0.25, 0.25))
	if !colorApprox(got, Red, 1e-2) {
		t.Errorf("texel-center sample = %+v, want red", got)
	}
}

func TestSampleNaNUV(t *testing.T) {
	tex := checker2x2()
	nan := float32(math.NaN())
	for _, s := range []Sampler{{Filter: FilterNearest}, LinearSampler} {
		got := tex.Sample(s, V2(nan, nan))
		// NaN coordinates resolve to texel (0,0); no NaN may escape.
		if !colorApprox(got, Red, 1e-2) {
			t.Errorf("sampler %+v: NaN uv = %+v, want texel (0,0) red", s, got)
		}
	}
}

func TestResized(t *testing.T) {
	tex := NewSolidTexture(Green).Resized(8, 4)
	if tex.Width() != 8 || tex.Height() != 4 {
		t.Fatalf("resized to %dx%d, want 8x4", tex.Width(), tex.Height())
	}
	got := tex.Sample(Sampler{}, V2(0.5, 0.5))
	if !colorApprox(got, Green, 1e-2) {
		t.Errorf("resized sample = %+v, want green", got)
	}
}
