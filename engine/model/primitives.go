package model

// Pentagon vertex positions. Two vertices sit off the z=0 plane so the shape
// reads as three-dimensional when orbited.
var pentagonVertices = []GPUVertex{
	{Position: [3]float32{-0.0868241, 0.49240386, 0.1}, Color: [4]float32{0.5, 0.0, 0.5, 1.0}},
	{Position: [3]float32{-0.49513406, 0.06958647, 0.0}, Color: [4]float32{0.5, 0.0, 0.5, 1.0}},
	{Position: [3]float32{-0.21918549, -0.44939706, 0.0}, Color: [4]float32{0.5, 0.0, 0.5, 1.0}},
	{Position: [3]float32{0.35966998, -0.3473291, 1.0}, Color: [4]float32{0.5, 0.0, 0.5, 1.0}},
	{Position: [3]float32{0.44147372, 0.2347359, 0.0}, Color: [4]float32{0.5, 0.0, 0.5, 1.0}},
}

var pentagonIndices = []uint32{0, 1, 4, 1, 2, 4, 2, 3, 4}

// NewPentagon creates a Model for the vertex-colored pentagon primitive.
// The mesh has 5 vertices fanned into 3 triangles around vertex 4.
//
// Parameters:
//   - options: additional ModelBuilderOption functions applied after the mesh data
//
// Returns:
//   - Model: the pentagon model with vertex/index data and bounding radius set
func NewPentagon(options ...ModelBuilderOption) Model {
	opts := []ModelBuilderOption{
		WithName("pentagon"),
		WithVertexData(MarshalVertices(pentagonVertices)),
		WithIndexData(MarshalIndices(pentagonIndices)),
		WithIndexCount(len(pentagonIndices)),
		WithBoundingRadius(ComputeBoundingRadius(pentagonVertices)),
	}
	opts = append(opts, options...)
	return NewModel(opts...)
}

// Unit cube centered at the origin, one color per face corner pair.
var cubeVertices = []GPUVertex{
	// -Z face
	{Position: [3]float32{-0.5, -0.5, -0.5}, Color: [4]float32{1.0, 0.0, 0.0, 1.0}},
	{Position: [3]float32{0.5, -0.5, -0.5}, Color: [4]float32{0.0, 1.0, 0.0, 1.0}},
	{Position: [3]float32{0.5, 0.5, -0.5}, Color: [4]float32{0.0, 0.0, 1.0, 1.0}},
	{Position: [3]float32{-0.5, 0.5, -0.5}, Color: [4]float32{1.0, 1.0, 0.0, 1.0}},
	// +Z face
	{Position: [3]float32{-0.5, -0.5, 0.5}, Color: [4]float32{1.0, 0.0, 1.0, 1.0}},
	{Position: [3]float32{0.5, -0.5, 0.5}, Color: [4]float32{0.0, 1.0, 1.0, 1.0}},
	{Position: [3]float32{0.5, 0.5, 0.5}, Color: [4]float32{1.0, 1.0, 1.0, 1.0}},
	{Position: [3]float32{-0.5, 0.5, 0.5}, Color: [4]float32{0.5, 0.5, 0.5, 1.0}},
}

// Counter-clockwise winding viewed from outside each face.
var cubeIndices = []uint32{
	0, 2, 1, 0, 3, 2, // -Z
	4, 5, 6, 4, 6, 7, // +Z
	0, 1, 5, 0, 5, 4, // -Y
	3, 7, 6, 3, 6, 2, // +Y
	0, 4, 7, 0, 7, 3, // -X
	1, 2, 6, 1, 6, 5, // +X
}

// NewCube creates a Model for a unit cube primitive centered at the origin.
// Each of the 8 corners carries a distinct color so faces shade across
// their interior when interpolated.
//
// Parameters:
//   - options: additional ModelBuilderOption functions applied after the mesh data
//
// Returns:
//   - Model: the cube model with vertex/index data and bounding radius set
func NewCube(options ...ModelBuilderOption) Model {
	opts := []ModelBuilderOption{
		WithName("cube"),
		WithVertexData(MarshalVertices(cubeVertices)),
		WithIndexData(MarshalIndices(cubeIndices)),
		WithIndexCount(len(cubeIndices)),
		WithBoundingRadius(ComputeBoundingRadius(cubeVertices)),
	}
	opts = append(opts, options...)
	return NewModel(opts...)
}
