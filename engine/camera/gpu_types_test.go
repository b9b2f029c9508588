package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestGPUCameraUniformDefault(t *testing.T) {
	u := NewGPUCameraUniform()

	assert.Equal(t, [4]float32{0, 0, 0, 0}, u.ViewPosition)
	assert.Equal(t, [16]float32(mgl32.Ident4()), u.ViewProj)
	assert.Equal(t, 80, u.Size())
}

func TestGPUCameraUniformUpdateViewProj(t *testing.T) {
	cam := NewOrbitCamera(3.0, 0, 0, mgl32.Vec3{1, 2, 3}, 1.0)
	u := NewGPUCameraUniform()
	u.UpdateViewProj(cam)

	eye := cam.Eye()
	assert.InDelta(t, eye.X(), u.ViewPosition[0], 1e-6)
	assert.InDelta(t, eye.Y(), u.ViewPosition[1], 1e-6)
	assert.InDelta(t, eye.Z(), u.ViewPosition[2], 1e-6)
	assert.Equal(t, float32(1), u.ViewPosition[3])
	assert.Equal(t, [16]float32(cam.BuildViewProjectionMatrix()), u.ViewProj)
}

func TestGPUCameraUniformMarshalLayout(t *testing.T) {
	cam := NewOrbitCamera(3.0, 0.2, 0.4, mgl32.Vec3{}, 1.5)
	u := NewGPUCameraUniform()
	u.UpdateViewProj(cam)

	buf := u.Marshal()
	assert.Len(t, buf, 80)

	// Eye position occupies the first 16 bytes, w = 1 at offset 12.
	w := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16]))
	assert.Equal(t, float32(1), w)

	// Matrix follows at offset 16, column-major.
	m00 := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20]))
	assert.Equal(t, u.ViewProj[0], m00)
	m33 := math.Float32frombits(binary.LittleEndian.Uint32(buf[76:80]))
	assert.Equal(t, u.ViewProj[15], m33)
}
