package render

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

// StrokeShaderWGSL is the source of the stroke shader, with entry points
// VertexEntryPoint and FragmentEntryPoint.
//
//go:embed shaders/stroke.wgsl
var StrokeShaderWGSL string

// Entry points of the stroke shader.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// CompileStrokeShader compiles the stroke shader to a SPIR-V byte stream.
func CompileStrokeShader() ([]byte, error) {
	return Compile(StrokeShaderWGSL)
}

// Compile compiles WGSL source to a SPIR-V byte stream.
func Compile(wgslSource string) ([]byte, error) {
	spirv, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	tracer().Debugf("compiled shader to %d bytes of SPIR-V", len(spirv))
	return spirv, nil
}

// Words converts a SPIR-V byte stream to little-endian 32-bit words.
func Words(spirv []byte) []uint32 {
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words
}
