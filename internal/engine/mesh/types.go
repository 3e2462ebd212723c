// Package mesh tessellates parametric surfaces into shared-vertex triangle
// meshes ready for GPU upload.
package mesh

import "github.com/Faultbox/nurbs-editor/pkg/math"

// Material describes how a surface reflects light.
type Material struct {
	Color math.Vec3 // Base vertex color
	Ka    math.Vec3 // Ambient reflectance
	Kd    math.Vec3 // Diffuse reflectance
	Ks    math.Vec3 // Specular reflectance
	P     float32   // Specular exponent
}

// DefaultMaterial returns the orange plastic-like material used at startup.
func DefaultMaterial() *Material {
	return &Material{
		Color: math.Vec3{X: 1, Y: 0.5, Z: 0.2},
		Ka:    math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		Kd:    math.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
		Ks:    math.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
		P:     10,
	}
}

// Vertex is a sampled surface point. ID is its position in Mesh.Vertices
// and in the element buffer; Polygons lists the triangles using it.
type Vertex struct {
	ID       uint32
	Position math.Vec3
	Normal   math.Vec3
	Polygons []int
}

// Polygon is a triangle referencing three vertices by index.
type Polygon struct {
	Vertices [3]uint32
	Normal   math.Vec3
	Material *Material
}

// Mesh holds one tessellation pass. It is rebuilt, not patched.
type Mesh struct {
	Vertices []Vertex
	Polygons []Polygon
	UCount   int
	VCount   int
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// LineVertices returns the 12 box edges as 24 xyz endpoints for GL_LINES.
func (b Bounds) LineVertices() []float32 {
	lo, hi := b.Min, b.Max
	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Verticals
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}
