package shade

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Filter selects the texture minification/magnification filter.
type Filter int

const (
	// FilterNearest samples the nearest texel.
	FilterNearest Filter = iota

	// FilterBilinear blends the four nearest texels.
	FilterBilinear
)

// Wrap selects how texture coordinates outside [0, 1] are handled.
type Wrap int

const (
	// WrapRepeat tiles the texture.
	WrapRepeat Wrap = iota

	// WrapClamp clamps coordinates to the edge texels.
	WrapClamp
)

// Sampler configures texture sampling. The zero value is a nearest-filter,
// repeat-wrap sampler.
type Sampler struct {
	Filter Filter
	Wrap   Wrap
}

// LinearSampler is the bilinear, repeating sampler GPU pipelines default to.
var LinearSampler = Sampler{Filter: FilterBilinear, Wrap: WrapRepeat}

// Texture is a CPU-resident 2D image sampled by the shading stage.
//
// Pixels are stored as straight-alpha RGBA8; Sample returns them as linear
// float colors in [0, 1]. A texture is read-only for the duration of any
// draw that references it, so it may be shared between concurrent fragment
// invocations without locking.
type Texture struct {
	pix *image.NRGBA
}

// NewTexture converts any image to a texture. The source is copied once
// into straight-alpha RGBA8 storage.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return &Texture{pix: dst}
}

// NewSolidTexture creates a 1x1 texture of the given color. Convenient for
// tests and as a neutral binding.
func NewSolidTexture(c RGBA) *Texture {
	dst := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	dst.SetNRGBA(0, 0, c.NRGBA())
	return &Texture{pix: dst}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.pix.Bounds().Dx() }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.pix.Bounds().Dy() }

// Image returns the backing image.
func (t *Texture) Image() *image.NRGBA { return t.pix }

// Resized returns a copy scaled to the given size using bilinear filtering.
func (t *Texture) Resized(width, height int) *Texture {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), t.pix, t.pix.Bounds(), xdraw.Src, nil)
	return &Texture{pix: dst}
}

// Sample reads the texture at the given UV coordinate. U runs left to
// right, V top to bottom, both in [0, 1]; out-of-range coordinates follow
// the sampler's wrap mode. NaN coordinates resolve to texel (0, 0).
func (t *Texture) Sample(s Sampler, uv mgl32.Vec2) RGBA {
	w, h := t.Width(), t.Height()
	if s.Filter == FilterNearest {
		x := wrapTexel(floorTexel(uv.X()*float32(w)), w, s.Wrap)
		y := wrapTexel(floorTexel(uv.Y()*float32(h)), h, s.Wrap)
		return t.texel(x, y)
	}

	// Bilinear: sample at texel centers and blend the 2x2 neighborhood.
	fx := uv.X()*float32(w) - 0.5
	fy := uv.Y()*float32(h) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)
	if math32.IsNaN(tx) {
		tx, x0 = 0, 0
	}
	if math32.IsNaN(ty) {
		ty, y0 = 0, 0
	}

	c00 := t.texel(wrapTexel(x0, w, s.Wrap), wrapTexel(y0, h, s.Wrap))
	c10 := t.texel(wrapTexel(x0+1, w, s.Wrap), wrapTexel(y0, h, s.Wrap))
	c01 := t.texel(wrapTexel(x0, w, s.Wrap), wrapTexel(y0+1, h, s.Wrap))
	c11 := t.texel(wrapTexel(x0+1, w, s.Wrap), wrapTexel(y0+1, h, s.Wrap))

	return c00.Lerp(c10, tx).Lerp(c01.Lerp(c11, tx), ty)
}

func (t *Texture) texel(x, y int) RGBA {
	c := t.pix.NRGBAAt(x, y)
	return RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func floorTexel(v float32) int {
	if math32.IsNaN(v) {
		return 0
	}
	return int(math32.Floor(v))
}

func wrapTexel(i, n int, w Wrap) int {
	if n <= 0 {
		return 0
	}
	switch w {
	case WrapClamp:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	default:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}
