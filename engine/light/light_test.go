package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	assert.Equal(t, [3]float32{2, 2, 2}, l.Position())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
}

func TestLightOptions(t *testing.T) {
	l := NewLight(
		WithPosition(0, 5, 0),
		WithColor(1, 0.5, 0.25),
	)
	assert.Equal(t, [3]float32{0, 5, 0}, l.Position())
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, l.Color())
}

func TestLightSetters(t *testing.T) {
	l := NewLight()
	l.SetPosition(-1, 2, -3)
	l.SetColor(0, 1, 0)
	assert.Equal(t, [3]float32{-1, 2, -3}, l.Position())
	assert.Equal(t, [3]float32{0, 1, 0}, l.Color())
}

func TestGPULightUniformSize(t *testing.T) {
	u := NewGPULightUniform(NewLight())
	assert.Equal(t, 32, u.Size())
}

func TestGPULightUniformMarshal(t *testing.T) {
	l := NewLight(WithPosition(2, 2, 2), WithColor(1, 1, 1))
	u := NewGPULightUniform(l)
	buf := u.Marshal()
	require.Len(t, buf, 32)

	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	// Padding word between position and color.
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[12:16]))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[28:32]))
}

func TestGPULightUniformUpdate(t *testing.T) {
	l := NewLight()
	u := NewGPULightUniform(l)
	l.SetPosition(4, 0, 4)
	u.Update(l)
	assert.Equal(t, [3]float32{4, 0, 4}, u.Position)
}
