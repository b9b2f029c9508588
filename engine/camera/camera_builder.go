package camera

import (
	"orbitview/engine/renderer/bind_group_provider"
)

// OrbitCameraOption is a functional option for configuring an OrbitCamera.
type OrbitCameraOption func(*orbitCameraImpl)

// WithFovy sets the vertical field of view in degrees.
//
// Parameters:
//   - fovy: vertical field of view in degrees
//
// Returns:
//   - OrbitCameraOption: functional option to set the field of view
func WithFovy(fovy float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.fovy = fovy
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//   - far: far plane distance (must be > near)
//
// Returns:
//   - OrbitCameraOption: functional option to set the clip planes
func WithClipPlanes(near, far float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.znear = near
		c.zfar = far
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance.
//
// Parameters:
//   - min: minimum distance from the target
//   - max: maximum distance from the target
//
// Returns:
//   - OrbitCameraOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.bounds.MinDistance = &min
		c.bounds.MaxDistance = &max
	}
}

// WithPitchBounds sets the minimum and maximum pitch angles. The effective
// limits are the intersection with the hard (-pi/2, pi/2) interval.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set pitch bounds
func WithPitchBounds(min, max float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.bounds.MinPitch = &min
		c.bounds.MaxPitch = &max
	}
}

// WithBounds replaces the full set of orbit constraints.
//
// Parameters:
//   - bounds: the bounds to apply
//
// Returns:
//   - OrbitCameraOption: functional option to set the bounds
func WithBounds(bounds OrbitCameraBounds) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.bounds = bounds
	}
}

// WithBindGroupProvider attaches a bind group provider to the camera.
// The provider describes the GPU binding requirements for camera uniforms.
//
// Parameters:
//   - provider: the bind group provider to attach
//
// Returns:
//   - OrbitCameraOption: functional option to set the bind group provider
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.bindGroupProvider = provider
	}
}
