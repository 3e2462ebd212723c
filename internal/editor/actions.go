package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/engine/shading"
	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// Action is a discrete editor command, usually bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionShadingNone
	ActionShadingGouraud
	ActionShadingPhong
	ActionShadingBlinnPhong
	ActionToggleSnapping
	ActionToggleWireframe
	ActionToggleFill
	ActionTogglePoints
	ActionToggleNet
	ActionToggleLight
	ActionToggleBounds
	ActionToggleNormals
	ActionRollLeft
	ActionRollRight
	ActionFinerMesh
	ActionCoarserMesh
)

// RollStep is the camera roll per key press, in radians.
var RollStep = math.Radians(1)

// MeshStep is the tessellation change per key press.
const MeshStep = 5

// Apply runs a. It reports whether a was recognised.
func (s *State) Apply(a Action) bool {
	switch a {
	case ActionShadingNone:
		s.Shading = shading.None
	case ActionShadingGouraud:
		s.Shading = shading.Gouraud
	case ActionShadingPhong:
		s.Shading = shading.Phong
	case ActionShadingBlinnPhong:
		s.Shading = shading.BlinnPhong
	case ActionToggleSnapping:
		s.Snap.SetEnabled(!s.Snap.Enabled())
	case ActionToggleWireframe:
		s.Wireframe = !s.Wireframe
	case ActionToggleFill:
		s.Fill = !s.Fill
	case ActionTogglePoints:
		s.ShowPoints = !s.ShowPoints
	case ActionToggleNet:
		s.ShowNet = !s.ShowNet
	case ActionToggleLight:
		s.ShowLight = !s.ShowLight
	case ActionToggleBounds:
		s.ShowBounds = !s.ShowBounds
	case ActionToggleNormals:
		s.ShowNormals = !s.ShowNormals
	case ActionRollLeft:
		s.Camera.Roll(RollStep)
		s.Dirty.Mark(DirtyClipSpace)
	case ActionRollRight:
		s.Camera.Roll(-RollStep)
		s.Dirty.Mark(DirtyClipSpace)
	case ActionFinerMesh:
		s.SetTessellation(s.uCount+MeshStep, s.vCount+MeshStep)
	case ActionCoarserMesh:
		s.SetTessellation(s.uCount-MeshStep, s.vCount-MeshStep)
	default:
		return false
	}
	logger.Debug("editor action", zap.Int("action", int(a)), zap.Stringer("shading", s.Shading))
	return true
}
