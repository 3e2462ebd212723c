// Package lighting provides the light sources of the editor scene.
package lighting

import "github.com/Faultbox/nurbs-editor/pkg/math"

// AmbientLight is a uniform light reaching every surface.
type AmbientLight struct {
	Intensity math.Vec3 // RGB intensity
}

// PointLight is an omnidirectional light.
type PointLight struct {
	Position    math.Vec3 // World position
	Intensity   math.Vec3 // RGB intensity
	Attenuation float32   // Quadratic falloff coefficient
}

// DefaultAmbient returns a white ambient light.
func DefaultAmbient() AmbientLight {
	return AmbientLight{Intensity: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// DefaultPointLight returns a white light hovering above the origin.
func DefaultPointLight() PointLight {
	return PointLight{
		Position:    math.Vec3{Y: 3},
		Intensity:   math.Vec3{X: 1, Y: 1, Z: 1},
		Attenuation: 0.05,
	}
}

// ViewPosition returns the light position in view space.
func (l PointLight) ViewPosition(view math.Mat4) math.Vec3 {
	return view.TransformPoint(l.Position)
}

// Falloff returns the intensity scale at the given distance:
// 1 / (1 + attenuation * distance^2).
func (l PointLight) Falloff(distance float32) float32 {
	return 1 / (1 + l.Attenuation*distance*distance)
}

// Buffer returns the position as a single xyz vertex for the light marker.
func (l PointLight) Buffer() []float32 {
	return []float32{l.Position.X, l.Position.Y, l.Position.Z}
}
