package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightUniformSource is the canonical WGSL definition of the LightUniform struct.
// Matches GPULightUniform layout exactly (32 bytes, std140 aligned).
//
//go:embed assets/light.wgsl
var GPULightUniformSource string

// GPULightUniform is the GPU-aligned representation of the scene's point light.
// Matches the WGSL LightUniform struct layout exactly (see GPULightUniformSource).
// Size: 32 bytes (two vec3s padded to vec4 boundaries).
type GPULightUniform struct {
	Position [3]float32 // offset  0: world-space light position (12 bytes)
	_pad1    uint32     // offset 12: padding (4 bytes)
	Color    [3]float32 // offset 16: RGB light color (12 bytes)
	_pad2    uint32     // offset 28: padding (4 bytes)
}

// NewGPULightUniform creates a GPULightUniform populated from the given light.
//
// Parameters:
//   - l: the light to snapshot
//
// Returns:
//   - *GPULightUniform: the GPU representation of the light
func NewGPULightUniform(l Light) *GPULightUniform {
	return &GPULightUniform{
		Position: l.Position(),
		Color:    l.Color(),
	}
}

// Update refreshes the uniform in place from the given light.
//
// Parameters:
//   - l: the light to snapshot
func (g *GPULightUniform) Update(l Light) {
	g.Position = l.Position()
	g.Color = l.Color()
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0) // padding
	return buf
}
