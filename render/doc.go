// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes shade materials against render targets.
//
// The package provides:
//   - RenderTarget: an abstraction over rendering destinations, with
//     PixmapTarget as the CPU-backed default
//   - SoftwareRenderer: a depth-buffered triangle rasterizer that runs the
//     shade CPU core per covered fragment
//   - GPURenderer: a renderer that accepts a GPU device from the host
//     application and compiles variant shaders, currently drawing through
//     the software path
//   - Mesh helpers (cube, quad) feeding the renderers
//
// The renderer owns no resources beyond its depth buffer: camera, actor,
// texture, and light data are supplied per draw call and are read-only for
// the duration of that draw.
package render
