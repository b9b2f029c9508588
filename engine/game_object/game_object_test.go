package game_object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	assert.True(t, obj.Enabled())

	sx, sy, sz := obj.Scale()
	assert.Equal(t, float32(1), sx)
	assert.Equal(t, float32(1), sy)
	assert.Equal(t, float32(1), sz)

	x, y, z := obj.Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, z)
}

func TestGameObjectOptions(t *testing.T) {
	obj := NewGameObject(
		WithID(7),
		WithPosition(1, 2, 3),
		WithScale(2, 2, 2),
		WithRotationSpeed(0, 0.5, 0),
	)
	assert.Equal(t, uint64(7), obj.ID())

	x, y, z := obj.Position()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), y)
	assert.Equal(t, float32(3), z)

	_, ry, _ := obj.RotationSpeed()
	assert.Equal(t, float32(0.5), ry)
}

func TestAdvanceIntegratesRotation(t *testing.T) {
	obj := NewGameObject(WithRotationSpeed(0.1, 0.2, 0.3))
	obj.Advance(2.0)

	rx, ry, rz := obj.Rotation()
	assert.InDelta(t, 0.2, rx, 1e-6)
	assert.InDelta(t, 0.4, ry, 1e-6)
	assert.InDelta(t, 0.6, rz, 1e-6)

	obj.Advance(1.0)
	rx, _, _ = obj.Rotation()
	assert.InDelta(t, 0.3, rx, 1e-6)
}

func TestAdvanceZeroSpeedLeavesRotation(t *testing.T) {
	obj := NewGameObject(WithRotation(0.5, 0, 0))
	obj.Advance(10.0)
	rx, ry, rz := obj.Rotation()
	assert.Equal(t, float32(0.5), rx)
	assert.Zero(t, ry)
	assert.Zero(t, rz)
}

func TestModelMatrixIdentity(t *testing.T) {
	obj := NewGameObject()
	assert.Equal(t, mgl32.Ident4(), obj.ModelMatrix())
}

func TestModelMatrixTranslation(t *testing.T) {
	obj := NewGameObject(WithPosition(1, 2, 3))
	m := obj.ModelMatrix()
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 1.0, origin.X(), 1e-6)
	assert.InDelta(t, 2.0, origin.Y(), 1e-6)
	assert.InDelta(t, 3.0, origin.Z(), 1e-6)
}

func TestModelMatrixScaleThenTranslate(t *testing.T) {
	obj := NewGameObject(WithPosition(5, 0, 0), WithScale(2, 2, 2))
	m := obj.ModelMatrix()
	// Scale applies before translation: (1,0,0) -> (2,0,0) -> (7,0,0).
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 7.0, p.X(), 1e-6)
}

func TestModelMatrixRotationY(t *testing.T) {
	obj := NewGameObject(WithRotation(0, mgl32.DegToRad(90), 0))
	m := obj.ModelMatrix()
	// +X rotated 90 degrees around Y lands on -Z.
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0.0, p.X(), 1e-6)
	assert.InDelta(t, -1.0, p.Z(), 1e-6)
}
