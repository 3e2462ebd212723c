package shading

import (
	"github.com/Faultbox/nurbs-editor/internal/engine/lighting"
	"github.com/Faultbox/nurbs-editor/internal/engine/mesh"
	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// Uniform names shared by the GLSL programs.
const (
	UniformModel          = "model"
	UniformView           = "view"
	UniformProj           = "proj"
	UniformUseSingleColor = "useSingleColor"
	UniformSingleColor    = "singleColor"
	UniformKa             = "material.Ka"
	UniformKd             = "material.Kd"
	UniformKs             = "material.Ks"
	UniformP              = "material.p"
	UniformAmbient        = "ambientIntensity"
	UniformLightIntensity = "light.intensity"
	UniformLightPos       = "light.pos"
	UniformAttenuation    = "light.attenuation"
	UniformBlinn          = "blinn"
)

// Backend is the rendering side of a draw: a program switch, uniform
// setters addressed by name and an indexed triangle draw.
type Backend interface {
	UseProgram(p Program)
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	DrawTriangles(indexCount int)
}

// Frame carries everything a filled-surface draw needs.
type Frame struct {
	Model, View, Proj math.Mat4
	Material          *mesh.Material
	Ambient           lighting.AmbientLight
	Light             lighting.PointLight
	IndexCount        int
}

// Draw selects the program for mode, uploads its parameters and issues
// the triangle draw. The light position is sent in view space.
func Draw(b Backend, mode Mode, f Frame) Plan {
	plan := Select(mode)

	b.UseProgram(plan.Program)
	b.SetMat4(UniformModel, f.Model)
	b.SetMat4(UniformView, f.View)
	b.SetMat4(UniformProj, f.Proj)
	if plan.Program != ProgramPhong {
		b.SetInt(UniformUseSingleColor, 0)
	}

	if plan.Lit && f.Material != nil {
		b.SetVec3(UniformKa, f.Material.Ka)
		b.SetVec3(UniformKd, f.Material.Kd)
		b.SetVec3(UniformKs, f.Material.Ks)
		b.SetFloat(UniformP, f.Material.P)
		b.SetVec3(UniformAmbient, f.Ambient.Intensity)
		b.SetVec3(UniformLightIntensity, f.Light.Intensity)
		b.SetVec3(UniformLightPos, f.Light.ViewPosition(f.View))
		b.SetFloat(UniformAttenuation, f.Light.Attenuation)
	}
	if plan.Program == ProgramPhong {
		var blinn int32
		if plan.Blinn {
			blinn = 1
		}
		b.SetInt(UniformBlinn, blinn)
	}

	b.DrawTriangles(f.IndexCount)
	return plan
}
