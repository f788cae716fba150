//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/line.wgsl
var lineShaderSource string

// LineShaderSource returns the WGSL source of the line shader.
func LineShaderSource() string { return lineShaderSource }

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile shader: SPIR-V size %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// lineShaderDescriptor returns the shader module descriptor for the line
// shader, either as WGSL for the backend to translate or precompiled to
// SPIR-V through naga.
func lineShaderDescriptor(spirv bool) (*hal.ShaderModuleDescriptor, error) {
	if lineShaderSource == "" {
		return nil, fmt.Errorf("line shader source is empty")
	}
	if !spirv {
		return &hal.ShaderModuleDescriptor{
			Label:  "line_shader",
			Source: hal.ShaderSource{WGSL: lineShaderSource},
		}, nil
	}
	code, err := compileSPIRV(lineShaderSource)
	if err != nil {
		return nil, err
	}
	return &hal.ShaderModuleDescriptor{
		Label:  "line_shader_spirv",
		Source: hal.ShaderSource{SPIRV: code},
	}, nil
}
