// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"sync"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/wgsl"
)

// ErrGPUTargetUnsupported is returned for GPU-only targets until the hal
// draw path is wired.
var ErrGPUTargetUnsupported = errors.New("render: GPU-only targets not yet supported")

// GPURenderer is a renderer backed by a GPU device owned by the host
// application. It compiles each material variant's generated WGSL program
// to SPIR-V on first use and caches the result.
//
// The draw path currently executes through the software renderer; GPU
// pipeline submission lands once the hal render-pass surface stabilizes.
// Shader compilation is real, so a host can already validate its material
// set against the full compile chain.
type GPURenderer struct {
	mu sync.Mutex

	// handle is the GPU device handle from the host application.
	handle DeviceHandle

	// modules caches compiled SPIR-V per variant name.
	modules map[string][]uint32

	// softwareFallback executes draws until the GPU path is wired.
	softwareFallback *SoftwareRenderer

	// fallbackOnce gates the fallback warning to the first draw.
	fallbackOnce sync.Once
}

// NewGPURenderer creates a GPU renderer over a host-provided device.
//
// The DeviceHandle must be provided by the host application; the renderer
// does NOT create its own GPU device.
func NewGPURenderer(handle DeviceHandle, width, height int) (*GPURenderer, error) {
	if handle == nil {
		return nil, errNilDeviceHandle
	}
	shade.Logger().Info("GPU renderer created", "width", width, "height", height)
	return &GPURenderer{
		handle:           handle,
		modules:          make(map[string][]uint32),
		softwareFallback: NewSoftwareRenderer(width, height),
	}, nil
}

// ShaderModule returns the compiled SPIR-V words for a variant, compiling
// and caching on first use.
func (r *GPURenderer) ShaderModule(v shade.Variant) ([]uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if words, ok := r.modules[v.Name]; ok {
		return words, nil
	}
	words, err := wgsl.CompileVariant(v)
	if err != nil {
		return nil, err
	}
	r.modules[v.Name] = words
	return words, nil
}

// Clear fills the target and resets depth.
func (r *GPURenderer) Clear(target RenderTarget, c shade.RGBA) error {
	return r.softwareFallback.Clear(target, c)
}

// DrawMesh renders a mesh with the given material variant.
//
// CPU targets draw through the software path; GPU-only targets are not yet
// supported.
func (r *GPURenderer) DrawMesh(target RenderTarget, mesh *Mesh, cam shade.Camera, actor shade.Actor,
	v shade.Variant, tex shade.TextureBinding, light shade.Light) error {

	if target == nil {
		return ErrNilTarget
	}
	if _, err := r.ShaderModule(v); err != nil {
		return err
	}
	if target.Pixels() != nil {
		r.fallbackOnce.Do(func() {
			shade.Logger().Warn("GPU draws falling back to software")
		})
		return r.softwareFallback.DrawMesh(target, mesh, cam, actor, v, tex, light)
	}
	return ErrGPUTargetUnsupported
}

// Blit presents a texture across the full target.
func (r *GPURenderer) Blit(target RenderTarget, v shade.Variant, tex *shade.Texture, sampler shade.Sampler) error {
	if target == nil {
		return ErrNilTarget
	}
	if _, err := r.ShaderModule(v); err != nil {
		return err
	}
	if target.Pixels() != nil {
		r.fallbackOnce.Do(func() {
			shade.Logger().Warn("GPU draws falling back to software")
		})
		return r.softwareFallback.Blit(target, v, tex, sampler)
	}
	return ErrGPUTargetUnsupported
}

// Flush ensures all submitted work is complete. The software path has
// nothing pending.
func (r *GPURenderer) Flush() error {
	return nil
}

// DeviceHandle returns the underlying device handle, allowing the host to
// run custom passes against the same device.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}
