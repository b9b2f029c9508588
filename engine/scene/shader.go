package scene

import (
	_ "embed"

	"orbitview/engine/camera"
	"orbitview/engine/light"
	"orbitview/engine/model"

	"github.com/cogentcore/webgpu/wgpu"
)

// sceneShaderBody is the vertex/fragment stage source for the lit scene
// pipeline. The struct definitions it references (CameraUniform, VertexInput,
// ModelData, LightUniform) are prepended from their canonical embedded sources
// so the WGSL structs always match the Go GPU types byte for byte.
//
//go:embed assets/scene.wgsl
var sceneShaderBody string

// ShaderSource composes the full WGSL module for the scene's lit render
// pipeline from the canonical struct sources and the scene shader body.
//
// Returns:
//   - string: the complete WGSL source
func ShaderSource() string {
	return camera.GPUCameraUniformSource +
		model.GPUVertexSource +
		model.GPUModelDataSource +
		light.GPULightUniformSource +
		sceneShaderBody
}

// cameraBindGroupLayoutDescriptor describes @group(0): the camera uniform.
// Visible to both stages; the vertex stage reads view_proj and the fragment
// stage reads view_position for specular lighting.
func cameraBindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 80,
				},
			},
		},
	}
}

// sceneBindGroupLayoutDescriptor describes @group(1): the per-instance model
// matrix storage array and the light uniform.
func (s *scene) sceneBindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Scene Data Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeReadOnlyStorage,
					MinBindingSize: instanceStride,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 32,
				},
			},
		},
	}
}
