// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shade"
)

// RenderTarget defines where rendering output goes.
//
// Targets may support CPU access (Pixels), GPU access (TextureView), or
// both; the renderer chooses the appropriate access method.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU texture view for this target.
	// Returns nil for CPU-only targets.
	TextureView() TextureView

	// Pixels returns direct access to pixel data.
	// Returns nil for GPU-only targets.
	// For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a CPU-backed render target over straight-alpha RGBA8
// pixels. It is the destination of the software renderer.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	r.DrawMesh(target, mesh, cam, actor, variant, tex, light)
//	img := target.Image()
type PixmapTarget struct {
	img *image.NRGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.NRGBA as a render
// target. The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.NRGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *PixmapTarget) TextureView() TextureView {
	return nil
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.NRGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.NRGBA {
	return t.img
}

// SetPixel writes a shaded color at the given coordinates.
// Out-of-bounds writes are ignored.
func (t *PixmapTarget) SetPixel(x, y int, c shade.RGBA) {
	t.img.SetNRGBA(x, y, c.NRGBA())
}

// PixelAt returns the color at the given coordinates as a linear RGBA.
func (t *PixmapTarget) PixelAt(x, y int) shade.RGBA {
	return shade.FromColor(t.img.NRGBAAt(x, y))
}

// Resize replaces the backing image with a new one of the given
// dimensions. The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Ensure PixmapTarget implements RenderTarget.
var _ RenderTarget = (*PixmapTarget)(nil)

// TextureTarget is a GPU texture-backed render target for offscreen
// passes: the 3D scene renders into it, then a blit material presents it.
//
// Note: texture allocation requires the GPU draw path; see GPURenderer.
type TextureTarget struct {
	desc TextureDescriptor
	view TextureView
}

// NewTextureTarget creates a new GPU texture render target using the
// device owned by the host application. The backing texture is described
// by DefaultTextureDescriptor: single mip level, no multisampling, usable
// as both a render attachment and a sampled binding, so a finished pass
// can feed a blit material.
func NewTextureTarget(handle DeviceHandle, width, height int, format gputypes.TextureFormat) (*TextureTarget, error) {
	if handle == nil {
		return nil, errNilDeviceHandle
	}
	desc := DefaultTextureDescriptor(uint32(width), uint32(height), format)
	desc.Label = "shade offscreen target"
	return &TextureTarget{desc: desc}, nil
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int {
	return int(t.desc.Width)
}

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int {
	return int(t.desc.Height)
}

// Format returns the pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat {
	return t.desc.Format
}

// Descriptor returns the descriptor the backing texture is allocated from.
func (t *TextureTarget) Descriptor() TextureDescriptor {
	return t.desc
}

// TextureView returns the GPU texture view.
func (t *TextureTarget) TextureView() TextureView {
	return t.view
}

// Pixels returns nil as this is a GPU-only target.
func (t *TextureTarget) Pixels() []byte {
	return nil
}

// Stride returns 0 as this is a GPU-only target.
func (t *TextureTarget) Stride() int {
	return 0
}

// Destroy releases GPU resources.
func (t *TextureTarget) Destroy() {
	if t.view != nil {
		t.view.Destroy()
		t.view = nil
	}
}

// Ensure TextureTarget implements RenderTarget.
var _ RenderTarget = (*TextureTarget)(nil)
