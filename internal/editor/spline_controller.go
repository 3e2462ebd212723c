package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/spline"
)

// SplineController edits a 2D spline drawn directly in NDC.
//
// Primary drag moves a point or tangent tip. Secondary click on empty
// space appends a point and on a point removes it; secondary on a tangent
// tip does nothing.
type SplineController struct {
	Spline       *spline.Spline
	ShowPoints   bool
	ShowTangents bool

	approximation int
	width, height float32
	dirty         bool

	dragging bool
	handle   spline.Handle
	last     math.Vec2
}

// NewSplineController creates a controller for s sampled approximation
// times per segment.
func NewSplineController(s *spline.Spline, approximation int) *SplineController {
	return &SplineController{
		Spline:        s,
		ShowPoints:    true,
		ShowTangents:  true,
		approximation: max(approximation, 1),
		width:         1,
		height:        1,
		dirty:         true,
	}
}

// SetViewport sets the pixel size used for the pick tolerance.
func (c *SplineController) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = float32(width), float32(height)
}

// Tolerance returns the pick radius in NDC for the current viewport.
func (c *SplineController) Tolerance() float32 {
	return spline.PickTolerance(c.width, c.height)
}

// Approximation returns the samples per segment.
func (c *SplineController) Approximation() int {
	return c.approximation
}

// SetApproximation changes the samples per segment, minimum 1.
func (c *SplineController) SetApproximation(n int) {
	n = max(n, 1)
	if n != c.approximation {
		c.approximation = n
		c.dirty = true
	}
}

// SetTangentFactor scales every tangent during evaluation.
func (c *SplineController) SetTangentFactor(f float32) {
	if f != c.Spline.TangentFactor {
		c.Spline.TangentFactor = f
		c.dirty = true
	}
}

// Dragging returns the handle being dragged.
func (c *SplineController) Dragging() (spline.Handle, bool) {
	return c.handle, c.dragging
}

// TakeDirty reports whether the spline changed since the last call.
func (c *SplineController) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Buffers returns the curve line strip and the handle buffer.
func (c *SplineController) Buffers() (curve, handles []float32) {
	return c.Spline.Sample(c.approximation), c.Spline.HandlesBuffer()
}

// ButtonDown handles a press at cursor (NDC). Presses during a drag are
// ignored.
func (c *SplineController) ButtonDown(b Button, cursor math.Vec2) {
	if c.dragging {
		return
	}
	h, hit := c.Spline.FindHandle(cursor, c.Tolerance(), c.ShowPoints, c.ShowTangents)

	switch b {
	case ButtonPrimary:
		if hit {
			c.dragging = true
			c.handle = h
			c.last = cursor
		}
	case ButtonSecondary:
		switch {
		case !hit:
			c.Spline.AddPoint(cursor)
			c.dirty = true
			logger.Debug("spline point added", zap.Int("points", c.Spline.Len()))
		case h.Kind == spline.HandlePoint:
			if c.Spline.RemovePoint(h.Index) {
				c.dirty = true
				logger.Debug("spline point removed", zap.Int("points", c.Spline.Len()))
			}
		}
	}
}

// Move drags the grabbed handle.
func (c *SplineController) Move(cursor math.Vec2) {
	if c.dragging {
		c.Spline.MoveHandle(c.handle, cursor.Sub(c.last))
		c.dirty = true
	}
	c.last = cursor
}

// ButtonUp releases the grabbed handle.
func (c *SplineController) ButtonUp(b Button, cursor math.Vec2) {
	c.dragging = false
	c.last = cursor
}
