package editor

import (
	"github.com/Faultbox/nurbs-editor/internal/config"
	"github.com/Faultbox/nurbs-editor/internal/engine/camera"
	"github.com/Faultbox/nurbs-editor/internal/engine/lighting"
	"github.com/Faultbox/nurbs-editor/internal/engine/mesh"
	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
	"github.com/Faultbox/nurbs-editor/pkg/spline"
)

// StateFromConfig builds the startup surface editor state. The grid is
// the default saddle; presets are applied by the caller.
func StateFromConfig(cfg *config.Config, aspect float32) *State {
	cam := camera.New(
		cfg.Camera.Position.Math(),
		cfg.Camera.Target.Math(),
		cfg.Camera.Up.Math(),
		aspect,
		math.Radians(cfg.Camera.FOV),
		cfg.Camera.Near,
		cfg.Camera.Far,
	)

	s := NewState(nurbs.DefaultGrid(), cam)
	s.SetTransform(TransformFromConfig(cfg.Object))
	s.SetMaterial(&mesh.Material{
		Color: cfg.Material.Color.Math(),
		Ka:    cfg.Material.Ka.Math(),
		Kd:    cfg.Material.Kd.Math(),
		Ks:    cfg.Material.Ks.Math(),
		P:     cfg.Material.P,
	})
	s.Ambient = lighting.AmbientLight{Intensity: cfg.Light.Ambient.Math()}
	s.SetLight(lighting.PointLight{
		Position:    cfg.Light.Position.Math(),
		Intensity:   cfg.Light.Intensity.Math(),
		Attenuation: cfg.Light.Attenuation,
	})
	s.SetTessellation(cfg.Editor.UCount, cfg.Editor.VCount)

	s.Shading = cfg.Editor.Shading
	s.ShowPoints = cfg.Editor.ShowPoints
	s.ShowNet = cfg.Editor.ShowNet
	s.ShowLight = cfg.Editor.ShowLight
	s.ShowBounds = cfg.Editor.ShowBounds
	s.ShowNormals = cfg.Editor.ShowNormals
	s.NormalLength = cfg.Editor.NormalLength
	s.Wireframe = cfg.Editor.Wireframe
	s.Fill = cfg.Editor.Fill
	s.FOVStep = math.Radians(cfg.Editor.FOVStep)

	s.Snap.SetSize(cfg.Editor.GridSize)
	s.Snap.SetEnabled(cfg.Editor.Snapping)
	return s
}

// TransformFromConfig converts the configured object placement.
func TransformFromConfig(o config.ObjectConfig) mesh.Transform {
	r := o.Rotation.Math()
	return mesh.Transform{
		Origin: o.Origin.Math(),
		Scale:  o.Scale.Math(),
		Rotation: math.Vec3{
			X: math.Radians(r.X),
			Y: math.Radians(r.Y),
			Z: math.Radians(r.Z),
		},
	}
}

// SplineControllerFromConfig builds the startup spline editor.
func SplineControllerFromConfig(cfg *config.Config) *SplineController {
	s := spline.Default()
	s.TangentFactor = cfg.Spline.TangentFactor

	c := NewSplineController(s, cfg.Spline.Approximation)
	c.ShowPoints = cfg.Spline.ShowPoints
	c.ShowTangents = cfg.Spline.ShowTangents
	c.SetViewport(cfg.Window.Width, cfg.Window.Height)
	return c
}
