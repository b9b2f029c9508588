package camera

// DeviceEvent is a raw input event consumed by the CameraController. The
// window layer translates its callbacks into these values so the router can
// be driven (and tested) without a window.
type DeviceEvent interface {
	isDeviceEvent()
}

// ButtonEvent reports a mouse button press or release.
type ButtonEvent struct {
	// Button is the GLFW button number (common.MouseButtonLeft etc.).
	Button int

	// Pressed is true on press, false on release.
	Pressed bool
}

// MotionEvent reports relative cursor movement since the previous event.
// DX is positive when the cursor moves right, DY when it moves down.
type MotionEvent struct {
	DX float32
	DY float32
}

// ScrollEvent reports vertical scroll wheel movement. Delta is positive when
// scrolling up (away from the user).
type ScrollEvent struct {
	Delta float32
}

func (ButtonEvent) isDeviceEvent() {}
func (MotionEvent) isDeviceEvent() {}
func (ScrollEvent) isDeviceEvent() {}
