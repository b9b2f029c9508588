package scene

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"orbitview/engine/camera"
	"orbitview/engine/game_object"
	"orbitview/engine/light"
	"orbitview/engine/model"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera(t *testing.T) camera.OrbitCamera {
	t.Helper()
	return camera.NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{0, 0, 0}, 16.0/9.0)
}

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene("test", testCamera(t))
	assert.Equal(t, "test", s.Name())
	assert.False(t, s.Active())
	assert.Zero(t, s.Count())
	require.NotNil(t, s.Light())
	assert.Equal(t, [3]float32{2, 2, 2}, s.Light().Position())
	assert.Equal(t, "test_lit", s.PipelineKey())
}

func TestSceneOptions(t *testing.T) {
	l := light.NewLight(light.WithPosition(0, 10, 0))
	s := NewScene("test", testCamera(t),
		WithActive(true),
		WithLight(l),
		WithWorkers(2),
	)
	assert.True(t, s.Active())
	assert.Equal(t, [3]float32{0, 10, 0}, s.Light().Position())
}

func TestAddAssignsIDsAndSlots(t *testing.T) {
	s := NewScene("test", testCamera(t))

	a := game_object.NewGameObject(game_object.WithModel(model.NewPentagon()))
	b := game_object.NewGameObject(game_object.WithModel(model.NewCube()))

	idA := s.Add(a)
	idB := s.Add(b)

	assert.NotZero(t, idA)
	assert.NotEqual(t, idA, idB)
	assert.Equal(t, 2, s.Count())
	assert.Same(t, a, s.Get(idA))
	assert.Same(t, b, s.Get(idB))
	assert.Nil(t, s.Get(999))
}

func TestAddWithoutModelPanics(t *testing.T) {
	s := NewScene("test", testCamera(t))
	assert.Panics(t, func() {
		s.Add(game_object.NewGameObject())
	})
}

func TestAddBeyondCapacityPanics(t *testing.T) {
	s := NewScene("test", testCamera(t), WithMaxInstances(1))
	s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube())))
	assert.Panics(t, func() {
		s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube())))
	})
}

func TestRemoveSwapsLastSlot(t *testing.T) {
	s := NewScene("test", testCamera(t))

	idA := s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube()), game_object.WithPosition(1, 0, 0)))
	idB := s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube()), game_object.WithPosition(2, 0, 0)))
	idC := s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube()), game_object.WithPosition(3, 0, 0)))

	s.Remove(idA)
	assert.Equal(t, 2, s.Count())
	assert.Nil(t, s.Get(idA))
	assert.NotNil(t, s.Get(idB))
	assert.NotNil(t, s.Get(idC))

	// The swapped object keeps working through the registry.
	s.Remove(idC)
	assert.Equal(t, 1, s.Count())
	assert.NotNil(t, s.Get(idB))
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	s := NewScene("test", testCamera(t))
	s.Remove(42)
	assert.Zero(t, s.Count())
}

func TestClear(t *testing.T) {
	s := NewScene("test", testCamera(t))
	id := s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube())))
	s.Clear()
	assert.Zero(t, s.Count())
	assert.Nil(t, s.Get(id))
}

func TestAdvanceRebuildsInstanceData(t *testing.T) {
	s := NewScene("test", testCamera(t), WithWorkers(2))

	obj := game_object.NewGameObject(
		game_object.WithModel(model.NewCube()),
		game_object.WithPosition(1, 2, 3),
	)
	s.Add(obj)
	s.Advance(0)

	data := s.InstanceData()
	require.Len(t, data, 64)

	// A pure translation matrix stores the offset in the last column
	// (column-major floats 12..14).
	tx := math.Float32frombits(binary.LittleEndian.Uint32(data[48:52]))
	ty := math.Float32frombits(binary.LittleEndian.Uint32(data[52:56]))
	tz := math.Float32frombits(binary.LittleEndian.Uint32(data[56:60]))
	assert.InDelta(t, 1.0, tx, 1e-6)
	assert.InDelta(t, 2.0, ty, 1e-6)
	assert.InDelta(t, 3.0, tz, 1e-6)
}

func TestAdvanceAppliesRotationSpeed(t *testing.T) {
	s := NewScene("test", testCamera(t))

	obj := game_object.NewGameObject(
		game_object.WithModel(model.NewCube()),
		game_object.WithRotationSpeed(0, 1.0, 0),
	)
	s.Add(obj)
	s.Advance(0.5)

	_, ry, _ := obj.Rotation()
	assert.InDelta(t, 0.5, ry, 1e-6)
}

func TestInstanceDataSlotOrder(t *testing.T) {
	s := NewScene("test", testCamera(t), WithWorkers(4))

	s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube()), game_object.WithPosition(10, 0, 0)))
	s.Add(game_object.NewGameObject(game_object.WithModel(model.NewCube()), game_object.WithPosition(20, 0, 0)))
	s.Advance(0)

	data := s.InstanceData()
	require.Len(t, data, 128)

	tx0 := math.Float32frombits(binary.LittleEndian.Uint32(data[48:52]))
	tx1 := math.Float32frombits(binary.LittleEndian.Uint32(data[112:116]))
	assert.InDelta(t, 10.0, tx0, 1e-6)
	assert.InDelta(t, 20.0, tx1, 1e-6)
}

func TestUploadFrameStateWithoutRendererErrors(t *testing.T) {
	s := NewScene("test", testCamera(t))
	assert.Error(t, s.UploadFrameState())
	assert.Error(t, s.DrawCalls())
	assert.Error(t, s.InitGPUResources())
}

func TestShaderSourceComposition(t *testing.T) {
	src := ShaderSource()
	// All four canonical struct definitions plus both entry points.
	assert.Contains(t, src, "struct CameraUniform")
	assert.Contains(t, src, "struct VertexInput")
	assert.Contains(t, src, "struct ModelData")
	assert.Contains(t, src, "struct LightUniform")
	assert.Contains(t, src, "fn vs_main")
	assert.Contains(t, src, "fn fs_main")
	// Struct sources must precede their first use.
	assert.Less(t, strings.Index(src, "struct CameraUniform"), strings.Index(src, "var<uniform> camera"))
}

func TestBindGroupLayoutDescriptors(t *testing.T) {
	camDesc := cameraBindGroupLayoutDescriptor()
	require.Len(t, camDesc.Entries, 1)
	assert.Equal(t, uint64(80), camDesc.Entries[0].Buffer.MinBindingSize)

	s := NewScene("test", testCamera(t)).(*scene)
	sceneDesc := s.sceneBindGroupLayoutDescriptor()
	require.Len(t, sceneDesc.Entries, 2)
	assert.Equal(t, uint64(64), sceneDesc.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, uint64(32), sceneDesc.Entries[1].Buffer.MinBindingSize)
}
