package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAddDistanceClampsToBounds(t *testing.T) {
	cam := NewOrbitCamera(2.0, 0, 0, mgl32.Vec3{}, 1.0, WithDistanceBounds(1.1, 10.0))

	cam.AddDistance(-5)
	assert.InDelta(t, 1.1, cam.Distance(), 1e-6)

	cam.AddDistance(100)
	assert.InDelta(t, 10.0, cam.Distance(), 1e-6)

	cam.AddDistance(-3)
	assert.InDelta(t, 7.0, cam.Distance(), 1e-6)
}

func TestDistanceFloorWithoutBounds(t *testing.T) {
	cam := NewOrbitCamera(2.0, 0, 0, mgl32.Vec3{}, 1.0)

	cam.AddDistance(-100)
	assert.Greater(t, cam.Distance(), float32(0))

	cam.SetDistance(-1)
	assert.Greater(t, cam.Distance(), float32(0))
}

func TestPitchStaysInsideOpenInterval(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)

	cam.AddPitch(10)
	assert.Less(t, cam.Pitch(), float32(math.Pi/2))

	cam.AddPitch(-20)
	assert.Greater(t, cam.Pitch(), float32(-math.Pi/2))

	// Configured bounds wider than the hard interval do not loosen it.
	cam.SetBounds(OrbitCameraBounds{
		MinPitch: ptr(float32(-10)),
		MaxPitch: ptr(float32(10)),
	})
	cam.SetPitch(5)
	assert.Less(t, cam.Pitch(), float32(math.Pi/2))
	cam.SetPitch(-5)
	assert.Greater(t, cam.Pitch(), float32(-math.Pi/2))
}

func TestPitchBoundsNarrowerThanHardInterval(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0, WithPitchBounds(-0.5, 0.5))

	cam.AddPitch(2)
	assert.InDelta(t, 0.5, cam.Pitch(), 1e-6)
	cam.AddPitch(-4)
	assert.InDelta(t, -0.5, cam.Pitch(), 1e-6)
}

func TestYawUnbounded(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)

	cam.AddYaw(100)
	assert.InDelta(t, 100.0, cam.Yaw(), 1e-4)
	cam.AddYaw(-300)
	assert.InDelta(t, -200.0, cam.Yaw(), 1e-4)
}

func TestEyePlacementAtZeroAngles(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	cam := NewOrbitCamera(4.0, 0, 0, target, 1.0)

	eye := cam.Eye()
	assert.InDelta(t, target.X(), eye.X(), 1e-5)
	assert.InDelta(t, target.Y(), eye.Y(), 1e-5)
	assert.InDelta(t, target.Z()+4.0, eye.Z(), 1e-5)
}

func TestEyePlacementAtQuarterYaw(t *testing.T) {
	cam := NewOrbitCamera(2.0, 0, math.Pi/2, mgl32.Vec3{}, 1.0)

	eye := cam.Eye()
	assert.InDelta(t, 2.0, eye.X(), 1e-5)
	assert.InDelta(t, 0.0, eye.Y(), 1e-5)
	assert.InDelta(t, 0.0, eye.Z(), 1e-5)
}

func TestViewProjectionDeterministic(t *testing.T) {
	cam := NewOrbitCamera(3.0, 0.4, 1.2, mgl32.Vec3{0.5, -1, 2}, 16.0/9.0)

	a := cam.BuildViewProjectionMatrix()
	b := cam.BuildViewProjectionMatrix()
	assert.Equal(t, a, b)
}

func TestViewProjectionMapsTargetInsideClipVolume(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	cam := NewOrbitCamera(5.0, 0.3, 0.7, target, 1.5)

	vp := cam.BuildViewProjectionMatrix()
	clip := vp.Mul4x1(target.Vec4(1))
	ndcZ := clip.Z() / clip.W()

	// WebGPU clip space: depth in [0, 1].
	assert.Greater(t, ndcZ, float32(0))
	assert.Less(t, ndcZ, float32(1))
}

func TestResizeProjectionIgnoresZeroHeight(t *testing.T) {
	cam := NewOrbitCamera(2.0, 0, 0, mgl32.Vec3{}, 2.0)

	cam.ResizeProjection(800, 0)
	assert.InDelta(t, 2.0, cam.Aspect(), 1e-6)

	cam.ResizeProjection(800, 400)
	assert.InDelta(t, 2.0, cam.Aspect(), 1e-6)

	cam.ResizeProjection(800, 600)
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), 1e-6)
}

func TestPanMovesTargetInCameraPlane(t *testing.T) {
	cam := NewOrbitCamera(2.0, 0, 0, mgl32.Vec3{}, 1.0)

	// Eye sits on +Z looking toward -Z; right = forward cross worldUp = +X.
	cam.Pan(1, 0)
	target := cam.Target()
	assert.InDelta(t, 1.0, target.X(), 1e-5)
	assert.InDelta(t, 0.0, target.Y(), 1e-5)
	assert.InDelta(t, 0.0, target.Z(), 1e-5)

	// Distance and orientation are unchanged; the eye moved rigidly.
	assert.InDelta(t, 2.0, cam.Distance(), 1e-6)
	eye := cam.Eye()
	assert.InDelta(t, target.X(), eye.X(), 1e-5)
	assert.InDelta(t, target.Z()+2.0, eye.Z(), 1e-5)
}

func TestPanVerticalAtZeroPitchFollowsWorldUp(t *testing.T) {
	cam := NewOrbitCamera(2.0, 0, 0, mgl32.Vec3{}, 1.0)

	cam.Pan(0, 1)
	target := cam.Target()
	assert.InDelta(t, 0.0, target.X(), 1e-5)
	assert.InDelta(t, 1.0, target.Y(), 1e-5)
	assert.InDelta(t, 0.0, target.Z(), 1e-5)
}

func TestSetBoundsReclampsState(t *testing.T) {
	cam := NewOrbitCamera(50.0, 1.0, 0, mgl32.Vec3{}, 1.0)

	cam.SetBounds(OrbitCameraBounds{
		MinDistance: ptr(float32(1)),
		MaxDistance: ptr(float32(10)),
		MaxPitch:    ptr(float32(0.5)),
	})
	assert.InDelta(t, 10.0, cam.Distance(), 1e-6)
	assert.InDelta(t, 0.5, cam.Pitch(), 1e-6)
}

func ptr[T any](v T) *T {
	return &v
}
