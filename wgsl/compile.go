package wgsl

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shade"
)

// Compile lowers WGSL source to SPIR-V uint32 words via naga.
func Compile(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("wgsl: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return words, nil
}

// CompileVariant generates and compiles the program for a variant.
func CompileVariant(v shade.Variant) ([]uint32, error) {
	source := Source(v)
	shade.Logger().Debug("compiling variant shader",
		"variant", v.Name, "sourceBytes", len(source))
	words, err := Compile(source)
	if err != nil {
		return nil, fmt.Errorf("wgsl: variant %s: %w", v.Name, err)
	}
	return words, nil
}

// CreateShaderModule creates a HAL shader module from compiled SPIR-V.
// The device is owned by the host application.
func CreateShaderModule(device hal.Device, label string, words []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
}
