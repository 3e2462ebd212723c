package mesh

import "github.com/Faultbox/nurbs-editor/pkg/math"

// Transform places the surface in the world.
type Transform struct {
	Origin   math.Vec3
	Scale    math.Vec3
	Rotation math.Vec3 // Euler angles in radians, applied X, then Y, then Z
}

// IdentityTransform returns a transform that leaves geometry unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// ModelMatrix returns translate * rotX * rotY * rotZ * scale.
func (t Transform) ModelMatrix() math.Mat4 {
	rotation := math.RotateX(t.Rotation.X).
		Mul(math.RotateY(t.Rotation.Y)).
		Mul(math.RotateZ(t.Rotation.Z))

	return math.Translate(t.Origin.X, t.Origin.Y, t.Origin.Z).
		Mul(rotation).
		Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}
