// Package wgsl generates WGSL shader source for shade material variants.
//
// The historical shader programs were hand-duplicated permutations of one
// algorithm; this package is the single source of truth that specializes
// them instead. Source produces a complete vertex+fragment program for any
// variant in the material table, honoring the bind group contract declared
// by the shade package (group 0 camera/actor, group 1 texture toggle/
// texture/sampler; blit programs use their own group 0 of texture/sampler
// and share nothing with the 3D path).
//
// Compile lowers generated WGSL to SPIR-V words via gogpu/naga, ready for
// hal.Device.CreateShaderModule.
package wgsl
