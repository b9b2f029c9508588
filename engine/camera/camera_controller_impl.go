package camera

import (
	"sync"

	"orbitview/common"
)

const (
	defaultRotateSpeed = 0.0025
	defaultZoomSpeed   = 0.1
)

// cameraControllerImpl is the single implementation of CameraController.
// The flags mirror the two drag modes: isDragRotate is held by a primary
// button drag, isPan is pinned by the shift modifier and optionally held by a
// button drag started while pinned.
type cameraControllerImpl struct {
	mu *sync.Mutex

	rotateSpeed float32
	zoomSpeed   float32

	isDragRotate bool
	isPan        bool
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new input router with the default speeds
// (rotate 0.0025 rad/px, zoom 0.1 units/step).
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:          &sync.Mutex{},
		rotateSpeed: defaultRotateSpeed,
		zoomSpeed:   defaultZoomSpeed,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) ProcessDeviceEvent(event DeviceEvent, cam OrbitCamera) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	switch e := event.(type) {
	case ButtonEvent:
		if e.Button != common.MouseButtonLeft {
			return false
		}
		// While the modifier pins pan mode, the button holds or releases the
		// pan drag; otherwise it holds or releases the rotate drag.
		if cc.isPan {
			cc.isPan = e.Pressed
		} else {
			cc.isDragRotate = e.Pressed
		}
		return false
	case MotionEvent:
		if cc.isDragRotate {
			cam.AddYaw(-e.DX * cc.rotateSpeed)
			cam.AddPitch(e.DY * cc.rotateSpeed)
			return true
		}
		if cc.isPan {
			cam.Pan(e.DX*cc.rotateSpeed, e.DY*cc.rotateSpeed)
			return true
		}
		return false
	case ScrollEvent:
		cam.AddDistance(-e.Delta * cc.zoomSpeed)
		return true
	default:
		return false
	}
}

func (cc *cameraControllerImpl) ProcessKeyEvent(key int, pressed bool) {
	if key != common.KeyLeftShift && key != common.KeyRightShift {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.isPan = pressed
}

func (cc *cameraControllerImpl) RotateSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotateSpeed
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

func (cc *cameraControllerImpl) IsDragRotate() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.isDragRotate
}

func (cc *cameraControllerImpl) IsPan() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.isPan
}
