package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nurbs-editor/internal/engine/mesh"
	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// reflect mirrors the light direction l around the normal n:
// r = 2(n.l)n - l. Both inputs are expected to be unit length.
func reflect(l, n math.Vec3) math.Vec3 {
	return n.Scale(2 * n.Dot(l)).Sub(l)
}

// shade is the CPU reference for the lighting shaders, evaluated at one
// surface point:
//
//	I = ambient*Ka + falloff * (light*Kd*max(n.l, 0) + light*Ks*max(v.r, 0)^p)
//
// With blinn set the specular term uses max(n.h, 0)^p, h = normalize(l+v).
// All positions share one space; eye is the viewer position.
func shade(pos, normal, eye math.Vec3, mat *mesh.Material, ambient AmbientLight, light PointLight, blinn bool) math.Vec3 {
	n := normal.Normalize()
	toLight := light.Position.Sub(pos)
	l := toLight.Normalize()
	v := eye.Sub(pos).Normalize()

	var spec float32
	if blinn {
		h := l.Add(v).Normalize()
		spec = math32.Pow(max(n.Dot(h), 0), mat.P)
	} else {
		spec = math32.Pow(max(v.Dot(reflect(l, n)), 0), mat.P)
	}

	diffuse := light.Intensity.Mul(mat.Kd).Scale(max(n.Dot(l), 0))
	specular := light.Intensity.Mul(mat.Ks).Scale(spec)

	return ambient.Intensity.Mul(mat.Ka).
		Add(diffuse.Add(specular).Scale(light.Falloff(toLight.Length())))
}
