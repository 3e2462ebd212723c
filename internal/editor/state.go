// Package editor holds the interactive state of the surface and spline
// editors and the pointer state machines that mutate it.
package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/engine/camera"
	"github.com/Faultbox/nurbs-editor/internal/engine/lighting"
	"github.com/Faultbox/nurbs-editor/internal/engine/mesh"
	"github.com/Faultbox/nurbs-editor/internal/engine/shading"
	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
)

// MinTessellation and MaxTessellation bound the samples per axis.
const (
	MinTessellation = 1
	MaxTessellation = 200
)

// DefaultNormalLength is the drawn normal length when none is configured.
const DefaultNormalLength = 0.2

// State is everything the surface editor draws and edits.
// Fields that feed cached data are private and changed through setters
// so the matching Dirty flag is never missed.
type State struct {
	Camera  *camera.Camera
	Ambient lighting.AmbientLight
	Shading shading.Mode

	ShowPoints  bool
	ShowNet     bool
	ShowLight   bool
	ShowBounds  bool
	ShowNormals bool
	Wireframe   bool
	Fill        bool

	// NormalLength is the drawn length of vertex normals in model units.
	NormalLength float32

	// FOVStep is the field of view change per wheel notch, in radians.
	FOVStep float32

	Snap  *Snap
	Dirty Dirty

	grid      *nurbs.Grid
	transform mesh.Transform
	material  *mesh.Material
	light     lighting.PointLight
	uCount    int
	vCount    int

	mesh *mesh.Mesh
}

// NewState creates a state around grid and cam with default material,
// lights and toggles. Everything starts dirty.
func NewState(grid *nurbs.Grid, cam *camera.Camera) *State {
	return &State{
		Camera:       cam,
		Ambient:      lighting.DefaultAmbient(),
		Shading:      shading.Phong,
		ShowPoints:   true,
		ShowNet:      true,
		ShowLight:    true,
		Fill:         true,
		NormalLength: DefaultNormalLength,
		FOVStep:      math.Radians(1),
		Snap:         NewSnap(0.5),
		Dirty:        DirtyAll,
		grid:         grid,
		transform:    mesh.IdentityTransform(),
		material:     mesh.DefaultMaterial(),
		light:        lighting.DefaultPointLight(),
		uCount:       20,
		vCount:       20,
	}
}

// Grid returns the control grid being edited.
func (s *State) Grid() *nurbs.Grid {
	return s.grid
}

// SetGrid replaces the control grid, e.g. after loading a preset.
func (s *State) SetGrid(g *nurbs.Grid) {
	s.grid = g
	s.Dirty.Mark(DirtyModel | DirtyClipSpace)
}

// GridChanged must be called after the grid was edited in place.
func (s *State) GridChanged() {
	s.Dirty.Mark(DirtyModel | DirtyClipSpace)
}

// Transform returns the object transform.
func (s *State) Transform() mesh.Transform {
	return s.transform
}

// SetTransform places the surface in the world.
func (s *State) SetTransform(t mesh.Transform) {
	s.transform = t
	s.Dirty.Mark(DirtyClipSpace)
}

// ModelMatrix returns the object transform as a matrix.
func (s *State) ModelMatrix() math.Mat4 {
	return s.transform.ModelMatrix()
}

// Material returns the surface material.
func (s *State) Material() *mesh.Material {
	return s.material
}

// SetMaterial replaces the surface material. Vertex colours come from it,
// so the mesh is rebuilt.
func (s *State) SetMaterial(m *mesh.Material) {
	s.material = m
	s.Dirty.Mark(DirtyModel)
}

// Light returns the point light.
func (s *State) Light() lighting.PointLight {
	return s.light
}

// SetLight replaces the point light.
func (s *State) SetLight(l lighting.PointLight) {
	s.light = l
	s.Dirty.Mark(DirtyLight)
}

// MoveLight shifts the point light by d.
func (s *State) MoveLight(d math.Vec3) {
	s.light.Position = s.light.Position.Add(d)
	s.Dirty.Mark(DirtyLight)
}

// Tessellation returns the samples per axis.
func (s *State) Tessellation() (uCount, vCount int) {
	return s.uCount, s.vCount
}

// SetTessellation changes the samples per axis, clamped to
// [MinTessellation, MaxTessellation].
func (s *State) SetTessellation(uCount, vCount int) {
	uCount = max(MinTessellation, min(uCount, MaxTessellation))
	vCount = max(MinTessellation, min(vCount, MaxTessellation))
	if uCount == s.uCount && vCount == s.vCount {
		return
	}
	s.uCount, s.vCount = uCount, vCount
	s.Dirty.Mark(DirtyModel)
}

// SetViewport updates the camera aspect for a new drawable size.
func (s *State) SetViewport(width, height int) {
	s.Camera.SetAspect(width, height)
	s.Dirty.Mark(DirtyClipSpace)
}

// Pickable reports whether control points can be grabbed. Hidden points
// and a hidden net leave nothing to aim at.
func (s *State) Pickable() bool {
	return s.ShowPoints || s.ShowNet
}

// Mesh returns the tessellated surface, rebuilding it when DirtyModel is
// set. The second result reports a rebuild, i.e. GPU buffers are stale.
func (s *State) Mesh() (*mesh.Mesh, bool) {
	if !s.Dirty.Take(DirtyModel) && s.mesh != nil {
		return s.mesh, false
	}
	s.mesh = mesh.Tessellate(s.grid, s.uCount, s.vCount, s.material)
	logger.Debug("surface regenerated",
		zap.Int("u", s.uCount),
		zap.Int("v", s.vCount),
		zap.Int("vertices", len(s.mesh.Vertices)),
		zap.Int("polygons", len(s.mesh.Polygons)),
	)
	return s.mesh, true
}
