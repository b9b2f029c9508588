package scene

import (
	"orbitview/engine/light"
	"orbitview/engine/renderer"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithRenderer attaches a renderer to the scene at construction time.
// Call InitGPUResources afterwards to create the scene's GPU resources.
//
// Parameters:
//   - r: the renderer to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.r = r
	}
}

// WithLight sets the scene's point light. When not specified, the scene
// creates a default white light.
//
// Parameters:
//   - l: the light to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lgt = l
	}
}

// WithMaxInstances sets the capacity of the per-instance model matrix storage
// buffer, which bounds the number of objects the scene can hold. Must be set
// before InitGPUResources, as the buffer is allocated once. Default is 256.
//
// Parameters:
//   - n: the maximum object count (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaxInstances(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.maxObj = n
	}
}

// WithWorkers sets the number of worker goroutines used during the parallel
// instance matrix rebuild in Advance. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.tickWorkers = n
	}
}
