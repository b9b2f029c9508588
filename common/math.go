package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ClipSpaceGLToWGPU remaps OpenGL clip space (depth -1..1) to WebGPU clip
// space (depth 0..1). mgl32 builds GL-convention projection matrices, so the
// composed projection*view matrix is left-multiplied by this constant before
// upload. Column-major.
var ClipSpaceGLToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Clamp limits v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound of the interval
//   - hi: upper bound of the interval
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}

