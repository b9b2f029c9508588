package camera

// CameraController routes raw device events into orbit camera mutations.
// It owns the drag-rotate and pan mode flags plus the input speed settings;
// it holds no reference to a camera between calls.
type CameraController interface {
	// ProcessDeviceEvent applies one device event to the given camera and
	// reports whether camera state changed (a redraw is needed). Unrecognized
	// events and buttons are ignored.
	//
	// Mode priority: the pan modifier key always wins. While the modifier
	// pins pan mode on, a primary-button transition writes into the pan flag;
	// otherwise it writes into the drag-rotate flag. Motion while rotating
	// turns into AddYaw(-dx*rotateSpeed) and AddPitch(dy*rotateSpeed); motion
	// while panning into Pan(dx*rotateSpeed, dy*rotateSpeed); a scroll of s
	// into AddDistance(-s*zoomSpeed).
	//
	// Parameters:
	//   - event: the device event to route
	//   - cam: the camera to mutate
	//
	// Returns:
	//   - bool: true if camera state changed
	ProcessDeviceEvent(event DeviceEvent, cam OrbitCamera) bool

	// ProcessKeyEvent tracks the pan modifier key (shift). Pressing it forces
	// pan mode on, releasing it forces pan mode off, regardless of button
	// state. All other keys are ignored.
	//
	// Parameters:
	//   - key: the GLFW key code
	//   - pressed: true on press, false on release
	ProcessKeyEvent(key int, pressed bool)

	// RotateSpeed returns the drag sensitivity in radians per pixel of cursor
	// movement. Pan uses the same factor as world units per pixel.
	//
	// Returns:
	//   - float32: radians (or world units) per pixel
	RotateSpeed() float32

	// ZoomSpeed returns the distance change per scroll step.
	//
	// Returns:
	//   - float32: world units per scroll step
	ZoomSpeed() float32

	// IsDragRotate reports whether a rotate drag is in progress.
	//
	// Returns:
	//   - bool: true while the primary button drags a rotation
	IsDragRotate() bool

	// IsPan reports whether pan mode is active.
	//
	// Returns:
	//   - bool: true while the pan modifier or a pan drag holds the mode
	IsPan() bool
}
