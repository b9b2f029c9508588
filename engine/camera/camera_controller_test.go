package camera

import (
	"testing"

	"orbitview/common"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDragRotateAppliesYawAndPitch(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)
	cc := NewCameraController()

	redraw := cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: true}, cam)
	assert.False(t, redraw)
	assert.True(t, cc.IsDragRotate())

	redraw = cc.ProcessDeviceEvent(MotionEvent{DX: 10, DY: 0}, cam)
	assert.True(t, redraw)
	assert.InDelta(t, -0.025, cam.Yaw(), 1e-6)
	assert.InDelta(t, 0.0, cam.Pitch(), 1e-6)

	redraw = cc.ProcessDeviceEvent(MotionEvent{DX: 0, DY: 4}, cam)
	assert.True(t, redraw)
	assert.InDelta(t, 0.01, cam.Pitch(), 1e-6)
}

func TestMotionWithoutDragIsIgnored(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0.2, 0.3, mgl32.Vec3{}, 1.0)
	cc := NewCameraController()

	redraw := cc.ProcessDeviceEvent(MotionEvent{DX: 100, DY: 100}, cam)
	assert.False(t, redraw)
	assert.InDelta(t, 0.3, cam.Yaw(), 1e-6)
	assert.InDelta(t, 0.2, cam.Pitch(), 1e-6)
}

func TestReleaseEndsDragRotate(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)
	cc := NewCameraController()

	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: true}, cam)
	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: false}, cam)
	assert.False(t, cc.IsDragRotate())

	redraw := cc.ProcessDeviceEvent(MotionEvent{DX: 10, DY: 10}, cam)
	assert.False(t, redraw)
	assert.InDelta(t, 0.0, cam.Yaw(), 1e-6)
}

func TestScrollZoomsRegardlessOfDragState(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)
	cc := NewCameraController()

	redraw := cc.ProcessDeviceEvent(ScrollEvent{Delta: 3}, cam)
	assert.True(t, redraw)
	assert.InDelta(t, 4.7, cam.Distance(), 1e-6)

	redraw = cc.ProcessDeviceEvent(ScrollEvent{Delta: -2}, cam)
	assert.True(t, redraw)
	assert.InDelta(t, 4.9, cam.Distance(), 1e-6)
}

func TestShiftEntersPanModeWithoutMovingTarget(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	cam := NewOrbitCamera(5.0, 0, 0, target, 1.0)
	cc := NewCameraController()

	cc.ProcessKeyEvent(common.KeyLeftShift, true)
	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: true}, cam)
	assert.True(t, cc.IsPan())
	assert.False(t, cc.IsDragRotate())
	assert.Equal(t, target, cam.Target())
}

func TestPanDragMovesTarget(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)
	cc := NewCameraController()

	cc.ProcessKeyEvent(common.KeyLeftShift, true)
	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: true}, cam)
	redraw := cc.ProcessDeviceEvent(MotionEvent{DX: 10, DY: 0}, cam)
	assert.True(t, redraw)

	// Pan distance is dx * rotateSpeed along the camera's right axis (+X for
	// an eye on +Z, since right = forward cross worldUp). Yaw and pitch are
	// untouched.
	assert.InDelta(t, 0.025, cam.Target().X(), 1e-5)
	assert.InDelta(t, 0.0, cam.Yaw(), 1e-6)
	assert.InDelta(t, 0.0, cam.Pitch(), 1e-6)
}

func TestModifierPinsPanInBothPressOrders(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)

	// Shift first, then button: the button press holds the pan drag.
	cc := NewCameraController()
	cc.ProcessKeyEvent(common.KeyLeftShift, true)
	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: true}, cam)
	assert.True(t, cc.IsPan())
	assert.False(t, cc.IsDragRotate())

	// Button first, then shift: shift pins pan mode, but the rotate drag
	// already in progress keeps running and motion still routes to rotate.
	cc = NewCameraController()
	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: true}, cam)
	cc.ProcessKeyEvent(common.KeyLeftShift, true)
	assert.True(t, cc.IsPan())
	assert.True(t, cc.IsDragRotate())

	cc.ProcessDeviceEvent(MotionEvent{DX: 10, DY: 0}, cam)
	assert.InDelta(t, -0.025, cam.Yaw(), 1e-6)
	assert.Equal(t, mgl32.Vec3{}, cam.Target())
}

func TestShiftReleaseUnpinsPan(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)
	cc := NewCameraController()

	cc.ProcessKeyEvent(common.KeyLeftShift, true)
	assert.True(t, cc.IsPan())
	cc.ProcessKeyEvent(common.KeyLeftShift, false)
	assert.False(t, cc.IsPan())

	redraw := cc.ProcessDeviceEvent(MotionEvent{DX: 5, DY: 5}, cam)
	assert.False(t, redraw)
}

func TestNonPrimaryButtonsIgnored(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)
	cc := NewCameraController()

	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonRight, Pressed: true}, cam)
	assert.False(t, cc.IsDragRotate())
	assert.False(t, cc.IsPan())
}

func TestCustomSpeeds(t *testing.T) {
	cam := NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0)
	cc := NewCameraController(WithRotateSpeed(0.01), WithZoomSpeed(1.0))

	cc.ProcessDeviceEvent(ButtonEvent{Button: common.MouseButtonLeft, Pressed: true}, cam)
	cc.ProcessDeviceEvent(MotionEvent{DX: 10, DY: 0}, cam)
	assert.InDelta(t, -0.1, cam.Yaw(), 1e-6)

	cc.ProcessDeviceEvent(ScrollEvent{Delta: 1}, cam)
	assert.InDelta(t, 4.0, cam.Distance(), 1e-6)
}

func TestZoomInHonorsMinimumBound(t *testing.T) {
	cam := NewOrbitCamera(2.0, 0, 0, mgl32.Vec3{}, 1.0, WithDistanceBounds(1.1, 100))
	cc := NewCameraController(WithZoomSpeed(1.0))

	cc.ProcessDeviceEvent(ScrollEvent{Delta: 5}, cam)
	assert.InDelta(t, 1.1, cam.Distance(), 1e-6)
}
