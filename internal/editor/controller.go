package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/engine/picking"
	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
)

// Button identifies a pointer button. Values match SDL button numbers.
type Button uint8

const (
	ButtonNone      Button = 0
	ButtonPrimary   Button = 1 // left: drag point or orbit
	ButtonTertiary  Button = 2 // middle: move light
	ButtonSecondary Button = 3 // right: pan target
)

// Phase is the controller state.
type Phase int

const (
	Idle Phase = iota
	DraggingPoint
	RotatingCamera
	PanningTarget
	MovingLight
)

var phaseNames = [...]string{
	Idle:           "idle",
	DraggingPoint:  "dragging point",
	RotatingCamera: "rotating camera",
	PanningTarget:  "panning target",
	MovingLight:    "moving light",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Controller turns pointer events into surface edits and camera moves.
// Only one button is tracked at a time; presses of other buttons while
// one is held are ignored.
type Controller struct {
	state     *State
	projector *picking.Projector

	phase  Phase
	button Button
	active int
	last   math.Vec2
}

// NewController creates a controller editing s. tolerance is the pick
// radius in NDC; non-positive selects picking.DefaultTolerance.
func NewController(s *State, tolerance float32) *Controller {
	return &Controller{
		state:     s,
		projector: picking.NewProjector(tolerance),
		active:    -1,
	}
}

// Phase returns the current state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Active returns the grid coordinates of the point being dragged.
func (c *Controller) Active() (i, j int, ok bool) {
	if c.phase != DraggingPoint {
		return 0, 0, false
	}
	i, j = nurbs.Coords(c.active)
	return i, j, true
}

// Projector exposes the projection cache, mainly for overlays.
func (c *Controller) Projector() *picking.Projector {
	return c.projector
}

// Pick returns the control point under cursor. Projections are refreshed
// first if anything in clip space changed since the last pick.
func (c *Controller) Pick(cursor math.Vec2) (int, bool) {
	if !c.state.Pickable() {
		return -1, false
	}
	if c.state.Dirty.Take(DirtyClipSpace) {
		c.projector.RecomputeProjections(
			c.state.Grid(),
			c.state.ModelMatrix(),
			c.state.Camera.ScaledViewMatrix(),
			c.state.Camera.ProjectionMatrix(),
		)
	}
	return c.projector.FindPoint(cursor)
}

// ButtonDown starts an interaction at cursor (NDC).
func (c *Controller) ButtonDown(b Button, cursor math.Vec2) {
	if c.button != ButtonNone {
		return
	}

	switch b {
	case ButtonPrimary:
		if n, ok := c.Pick(cursor); ok {
			c.phase = DraggingPoint
			c.active = n
			c.state.Snap.Reset()
			i, j := nurbs.Coords(n)
			logger.Debug("grabbed control point", zap.Int("i", i), zap.Int("j", j))
		} else {
			c.phase = RotatingCamera
		}
	case ButtonSecondary:
		c.phase = PanningTarget
	case ButtonTertiary:
		c.phase = MovingLight
	default:
		return
	}
	c.button = b
	c.last = cursor
}

// Move continues the current interaction.
func (c *Controller) Move(cursor math.Vec2) {
	if c.phase == Idle {
		c.last = cursor
		return
	}

	s := c.state
	switch c.phase {
	case DraggingPoint:
		d := s.Snap.Apply(s.Camera.ScreenDelta(c.last, cursor))
		if d != (math.Vec3{}) {
			i, j := nurbs.Coords(c.active)
			s.Grid().Move(i, j, d)
			s.GridChanged()
		}
	case RotatingCamera:
		s.Camera.Orbit(c.last, cursor)
		s.Dirty.Mark(DirtyClipSpace)
	case PanningTarget:
		if s.Camera.Pan(c.last, cursor) {
			s.Dirty.Mark(DirtyClipSpace)
		} else {
			logger.Debug("pan rejected, camera would degenerate")
		}
	case MovingLight:
		s.MoveLight(s.Camera.ScreenDelta(c.last, cursor))
	}
	c.last = cursor
}

// ButtonUp ends any interaction. There is no cancel; edits made so far
// stay.
func (c *Controller) ButtonUp(b Button, cursor math.Vec2) {
	c.phase = Idle
	c.button = ButtonNone
	c.active = -1
	c.last = cursor
}

// Wheel handles notches of scrolling at cursor. Over a control point it
// changes that point's weight by one per notch, never below zero;
// elsewhere it zooms the field of view.
func (c *Controller) Wheel(notches int, cursor math.Vec2) {
	if notches == 0 {
		return
	}
	s := c.state
	if n, ok := c.Pick(cursor); ok {
		i, j := nurbs.Coords(n)
		g := s.Grid()
		g.SetWeight(i, j, max(g.Weight(i, j)+float32(notches), 0))
		s.GridChanged()
		logger.Debug("weight changed",
			zap.Int("i", i), zap.Int("j", j),
			zap.Float32("weight", g.Weight(i, j)),
		)
		return
	}
	s.Camera.Zoom(-float32(notches) * s.FOVStep)
	s.Dirty.Mark(DirtyClipSpace)
}
