package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertexSize(t *testing.T) {
	v := &GPUVertex{}
	assert.Equal(t, 32, v.Size())
}

func TestGPUVertexMarshalLayout(t *testing.T) {
	v := &GPUVertex{
		Position: [3]float32{1.0, 2.0, 3.0},
		Color:    [4]float32{0.5, 0.0, 0.5, 1.0},
	}
	buf := v.Marshal()
	require.Len(t, buf, 32)

	assert.Equal(t, float32(1.0), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(3.0), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	// Color starts at offset 16, after the alignment padding.
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
	assert.Equal(t, float32(1.0), math.Float32frombits(binary.LittleEndian.Uint32(buf[28:32])))
}

func TestGPUModelDataSize(t *testing.T) {
	d := &GPUModelData{}
	assert.Equal(t, 64, d.Size())
}

func TestMarshalVertices(t *testing.T) {
	buf := MarshalVertices(pentagonVertices)
	assert.Len(t, buf, 5*32)
}

func TestMarshalIndices(t *testing.T) {
	buf := MarshalIndices([]uint32{0, 1, 4})
	require.Len(t, buf, 12)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(buf[8:12]))
}

func TestComputeBoundingRadius(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{3, 4, 0}},
		{Position: [3]float32{1, 1, 1}},
	}
	assert.InDelta(t, 5.0, ComputeBoundingRadius(vertices), 1e-6)
}

func TestVertexBufferLayout(t *testing.T) {
	layout := VertexBufferLayout()
	assert.Equal(t, uint64(32), layout.ArrayStride)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint64(16), layout.Attributes[1].Offset)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)
	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
}

func TestNewPentagon(t *testing.T) {
	m := NewPentagon()
	assert.Equal(t, "pentagon", m.Name())
	assert.Equal(t, 9, m.IndexCount())
	assert.Len(t, m.VertexData(), 5*32)
	assert.Len(t, m.IndexData(), 9*4)
	assert.Greater(t, m.BoundingRadius(), float32(1.0))
}

func TestNewCube(t *testing.T) {
	m := NewCube()
	assert.Equal(t, "cube", m.Name())
	assert.Equal(t, 36, m.IndexCount())
	assert.Len(t, m.VertexData(), 8*32)
	// Corner at (±0.5, ±0.5, ±0.5) is sqrt(0.75) from the origin.
	assert.InDelta(t, math.Sqrt(0.75), float64(m.BoundingRadius()), 1e-6)
}

func TestNewModelOptions(t *testing.T) {
	m := NewModel(
		WithName("test"),
		WithIndexCount(12),
		WithBoundingRadius(2.5),
	)
	assert.Equal(t, "test", m.Name())
	assert.Equal(t, 12, m.IndexCount())
	assert.Equal(t, float32(2.5), m.BoundingRadius())
	assert.Nil(t, m.MeshProvider())
}
