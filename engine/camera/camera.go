package camera

import (
	"strconv"
	"sync"
	"sync/atomic"

	"orbitview/common"
	"orbitview/engine/renderer/bind_group_provider"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// worldUp is the fixed world up axis. The orbit model never rolls.
var worldUp = mgl32.Vec3{0, 1, 0}

const (
	// pitchEpsilon keeps the pitch strictly inside (-pi/2, pi/2) so the view
	// direction never becomes collinear with worldUp.
	pitchEpsilon = 0.01

	// minDistanceEpsilon is the hard floor on the orbit distance when no
	// explicit minimum bound is configured. The eye never reaches the target.
	minDistanceEpsilon = 1e-4
)

// cameraCount is an atomic counter used to generate unique bind group provider names for each camera instance.
var cameraCount atomic.Uint64

// OrbitCameraBounds constrains the orbit camera's spherical coordinates.
// Nil fields leave the corresponding limit unconstrained. Yaw is never
// constrained. Pitch limits are intersected with the hard (-pi/2, pi/2)
// interval, distance limits with the hard positive floor.
type OrbitCameraBounds struct {
	MinDistance *float32
	MaxDistance *float32
	MinPitch    *float32
	MaxPitch    *float32
}

type orbitCameraImpl struct {
	mu *sync.Mutex

	distance float32
	pitch    float32
	yaw      float32
	target   mgl32.Vec3
	bounds   OrbitCameraBounds

	aspect float32
	fovy   float32 // degrees
	znear  float32
	zfar   float32

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera is the capability required by the renderer: a view-projection matrix
// and the world-space eye position. The orbit model is the only concrete
// implementation.
type Camera interface {
	// BuildViewProjectionMatrix computes the combined view-projection matrix
	// from the current camera state. Pure query: the same state always yields
	// the same matrix. The result is in WebGPU clip space (depth 0..1),
	// column-major.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	BuildViewProjectionMatrix() mgl32.Mat4

	// Eye returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3
}

// OrbitCamera is a camera orbiting a target point on a sphere described by
// distance, pitch and yaw. Pitch is the vertical angle from the horizontal
// plane, yaw the horizontal angle around the world Y axis; yaw 0 places the
// eye on the +Z side of the target.
type OrbitCamera interface {
	Camera

	// Distance returns the current orbit distance from the target.
	//
	// Returns:
	//   - float32: distance from target
	Distance() float32

	// SetDistance sets the orbit distance, clamped to the configured bounds
	// and the hard positive floor.
	//
	// Parameters:
	//   - distance: new distance from target
	SetDistance(distance float32)

	// AddDistance adds delta to the orbit distance, clamped to the configured
	// bounds and the hard positive floor.
	//
	// Parameters:
	//   - delta: distance change (positive moves away from the target)
	AddDistance(delta float32)

	// Pitch returns the current vertical angle in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// SetPitch sets the vertical angle, clamped to the configured bounds
	// intersected with the hard (-pi/2, pi/2) interval.
	//
	// Parameters:
	//   - pitch: new vertical angle in radians
	SetPitch(pitch float32)

	// AddPitch adds delta to the vertical angle, clamped to the configured
	// bounds intersected with the hard (-pi/2, pi/2) interval.
	//
	// Parameters:
	//   - delta: pitch change in radians
	AddPitch(delta float32)

	// Yaw returns the current horizontal angle in radians. Yaw is unbounded
	// and never wrapped.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// SetYaw sets the horizontal angle. No constraint applies.
	//
	// Parameters:
	//   - yaw: new horizontal angle in radians
	SetYaw(yaw float32)

	// AddYaw adds delta to the horizontal angle. No constraint applies.
	//
	// Parameters:
	//   - delta: yaw change in radians
	AddYaw(delta float32)

	// Target returns the world-space point the camera orbits and looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the target position
	Target() mgl32.Vec3

	// SetTarget moves the orbit target. Distance, pitch and yaw are retained,
	// so the eye moves rigidly with the target.
	//
	// Parameters:
	//   - target: new world-space target position
	SetTarget(target mgl32.Vec3)

	// Pan translates the target in the camera-local plane derived from the
	// current orientation: dx along the camera's right axis, dy along the
	// camera's up axis. Orientation and distance are unchanged.
	//
	// Parameters:
	//   - dx: translation along the camera-local right axis
	//   - dy: translation along the camera-local up axis
	Pan(dx, dy float32)

	// ResizeProjection updates the projection aspect ratio from new viewport
	// dimensions. A height of zero is ignored and the previous aspect ratio
	// is retained.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	ResizeProjection(width, height uint32)

	// Aspect returns the current projection aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Bounds returns the configured orbit constraints.
	//
	// Returns:
	//   - OrbitCameraBounds: the active bounds
	Bounds() OrbitCameraBounds

	// SetBounds replaces the orbit constraints and re-clamps the current
	// distance and pitch against them.
	//
	// Parameters:
	//   - bounds: the new bounds
	SetBounds(bounds OrbitCameraBounds)

	// BindGroupProvider returns the camera's bind group provider for GPU resources.
	// Returns nil if not set.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetBindGroupProvider sets the camera's bind group provider.
	//
	// Parameters:
	//   - provider: the bind group provider to set
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ OrbitCamera = &orbitCameraImpl{}

// NewOrbitCamera creates a new OrbitCamera at the given spherical coordinates
// around target. The initial distance and pitch are clamped the same way the
// mutators clamp them.
//
// Parameters:
//   - distance: initial distance from the target
//   - pitch: initial vertical angle in radians
//   - yaw: initial horizontal angle in radians
//   - target: world-space point to orbit
//   - aspect: initial projection aspect ratio (width / height)
//   - options: functional options to configure the camera
//
// Returns:
//   - OrbitCamera: the newly created camera
func NewOrbitCamera(distance, pitch, yaw float32, target mgl32.Vec3, aspect float32, options ...OrbitCameraOption) OrbitCamera {
	c := &orbitCameraImpl{
		mu:       &sync.Mutex{},
		distance: distance,
		pitch:    pitch,
		yaw:      yaw,
		target:   target,
		aspect:   aspect,
		fovy:     45.0,
		znear:    0.1,
		zfar:     1000.0,
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"camera_" + strconv.FormatUint(cameraCount.Load(), 10),
		),
	}
	for _, option := range options {
		option(c)
	}
	c.distance = c.clampDistance(c.distance)
	c.pitch = c.clampPitch(c.pitch)
	cameraCount.Add(1)
	return c
}

func (c *orbitCameraImpl) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *orbitCameraImpl) SetDistance(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = c.clampDistance(distance)
}

func (c *orbitCameraImpl) AddDistance(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = c.clampDistance(c.distance + delta)
}

func (c *orbitCameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *orbitCameraImpl) SetPitch(pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = c.clampPitch(pitch)
}

func (c *orbitCameraImpl) AddPitch(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = c.clampPitch(c.pitch + delta)
}

func (c *orbitCameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *orbitCameraImpl) SetYaw(yaw float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = yaw
}

func (c *orbitCameraImpl) AddYaw(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += delta
}

func (c *orbitCameraImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *orbitCameraImpl) SetTarget(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

func (c *orbitCameraImpl) Pan(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	forward := c.target.Sub(c.eyeLocked()).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	c.target = c.target.Add(right.Mul(dx)).Add(up.Mul(dy))
}

func (c *orbitCameraImpl) ResizeProjection(width, height uint32) {
	if height == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = float32(width) / float32(height)
}

func (c *orbitCameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *orbitCameraImpl) Bounds() OrbitCameraBounds {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bounds
}

func (c *orbitCameraImpl) SetBounds(bounds OrbitCameraBounds) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bounds = bounds
	c.distance = c.clampDistance(c.distance)
	c.pitch = c.clampPitch(c.pitch)
}

func (c *orbitCameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eyeLocked()
}

func (c *orbitCameraImpl) BuildViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := mgl32.LookAtV(c.eyeLocked(), c.target, worldUp)
	proj := mgl32.Perspective(mgl32.DegToRad(c.fovy), c.aspect, c.znear, c.zfar)
	return common.ClipSpaceGLToWGPU.Mul4(proj).Mul4(view)
}

func (c *orbitCameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindGroupProvider
}

func (c *orbitCameraImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindGroupProvider = provider
}

// eyeLocked computes the eye position from the spherical coordinates.
// Caller must hold the mutex.
func (c *orbitCameraImpl) eyeLocked() mgl32.Vec3 {
	cosP := math32.Cos(c.pitch)
	sinP := math32.Sin(c.pitch)
	cosY := math32.Cos(c.yaw)
	sinY := math32.Sin(c.yaw)

	return mgl32.Vec3{
		c.target.X() + c.distance*cosP*sinY,
		c.target.Y() + c.distance*sinP,
		c.target.Z() + c.distance*cosP*cosY,
	}
}

// clampDistance applies the configured distance bounds and the hard positive
// floor. Caller must hold the mutex.
func (c *orbitCameraImpl) clampDistance(v float32) float32 {
	lo := float32(minDistanceEpsilon)
	if c.bounds.MinDistance != nil {
		lo = math32.Max(lo, *c.bounds.MinDistance)
	}
	v = math32.Max(v, lo)
	if c.bounds.MaxDistance != nil {
		v = math32.Min(v, *c.bounds.MaxDistance)
	}
	return v
}

// clampPitch applies the configured pitch bounds intersected with the hard
// (-pi/2, pi/2) interval. Caller must hold the mutex.
func (c *orbitCameraImpl) clampPitch(v float32) float32 {
	lo := float32(-math32.Pi/2 + pitchEpsilon)
	hi := float32(math32.Pi/2 - pitchEpsilon)
	if c.bounds.MinPitch != nil {
		lo = math32.Max(lo, *c.bounds.MinPitch)
	}
	if c.bounds.MaxPitch != nil {
		hi = math32.Min(hi, *c.bounds.MaxPitch)
	}
	return common.Clamp(v, lo, hi)
}
