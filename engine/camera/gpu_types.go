package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (80 bytes, std140 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 80 bytes.
type GPUCameraUniform struct {
	ViewPosition [4]float32  // offset  0: eye position in homogeneous coordinates (w = 1)
	ViewProj     [16]float32 // offset 16: combined view-projection matrix (mat4x4<f32>, column-major)
}

// NewGPUCameraUniform creates a camera uniform with a zero eye position and
// an identity view-projection matrix.
//
// Returns:
//   - GPUCameraUniform: the default uniform value
func NewGPUCameraUniform() GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj: [16]float32{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		},
	}
}

// UpdateViewProj overwrites the uniform in place from the camera's current
// state: eye position with w = 1 and the combined view-projection matrix.
//
// Parameters:
//   - cam: the camera to read from
func (g *GPUCameraUniform) UpdateViewProj(cam Camera) {
	eye := cam.Eye()
	g.ViewPosition = [4]float32{eye.X(), eye.Y(), eye.Z(), 1.0}
	g.ViewProj = [16]float32(cam.BuildViewProjectionMatrix())
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewPosition[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.ViewProj[i]))
	}
	return buf
}
