// Package spline implements a 2D piecewise cubic Hermite spline whose
// tangents are scaled by a shared tangent factor.
package spline

import (
	"fmt"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// MinPoints is the smallest number of points a spline keeps.
const MinPoints = 2

// HandleKind identifies what a pick landed on.
type HandleKind int

const (
	// HandlePoint is a control point.
	HandlePoint HandleKind = iota
	// HandleForward is the tangent tip at P+D.
	HandleForward
	// HandleBackward is the mirrored tangent tip at P-D.
	HandleBackward
)

func (k HandleKind) String() string {
	switch k {
	case HandlePoint:
		return "point"
	case HandleForward:
		return "forward"
	case HandleBackward:
		return "backward"
	}
	return fmt.Sprintf("HandleKind(%d)", int(k))
}

// Handle addresses a point or one of its tangent tips.
type Handle struct {
	Kind  HandleKind
	Index int
}

// Spline is an open sequence of points with one tangent per point.
// Points and Tangents always have the same length.
type Spline struct {
	Points        []math.Vec2
	Tangents      []math.Vec2
	TangentFactor float32
}

// New creates a two-point spline.
func New(a, b, da, db math.Vec2, tangentFactor float32) *Spline {
	return &Spline{
		Points:        []math.Vec2{a, b},
		Tangents:      []math.Vec2{da, db},
		TangentFactor: tangentFactor,
	}
}

// Default returns the startup spline: a short horizontal segment with
// opposing vertical tangents.
func Default() *Spline {
	return New(
		math.Vec2{X: -0.2}, math.Vec2{X: 0.2},
		math.Vec2{Y: 0.5}, math.Vec2{Y: -0.5},
		1,
	)
}

// Len returns the number of points.
func (s *Spline) Len() int {
	return len(s.Points)
}

// Segments returns the number of curve segments.
func (s *Spline) Segments() int {
	return len(s.Points) - 1
}

// Segment evaluates segment i (between points i and i+1) at t in [0, 1].
func (s *Spline) Segment(i int, t float32) math.Vec2 {
	p0, p1 := s.Points[i], s.Points[i+1]
	d0 := s.Tangents[i].Scale(s.TangentFactor)
	d1 := s.Tangents[i+1].Scale(s.TangentFactor)

	a := p1.Sub(p0).Sub(d0)
	b := p0.Sub(p1).Scale(2).Add(d0).Add(d1)

	// p0 + t*(d0 + t*(a + b*(t-1)))
	inner := a.Add(b.Scale(t - 1))
	return p0.Add(d0.Add(inner.Scale(t)).Scale(t))
}

// Sample returns approximation samples per segment followed by the last
// point, as a flat xy buffer ready for a line strip.
func (s *Spline) Sample(approximation int) []float32 {
	if approximation < 1 {
		approximation = 1
	}
	buf := make([]float32, 0, (s.Segments()*approximation+1)*2)
	for i := 0; i < s.Segments(); i++ {
		for k := 0; k < approximation; k++ {
			p := s.Segment(i, float32(k)/float32(approximation))
			buf = append(buf, p.X, p.Y)
		}
	}
	last := s.Points[len(s.Points)-1]
	return append(buf, last.X, last.Y)
}

// HandlesBuffer returns the points followed by the P+D, P-D pair of every
// point, as a flat xy buffer. The pairs can be drawn as lines.
func (s *Spline) HandlesBuffer() []float32 {
	n := len(s.Points)
	buf := make([]float32, 0, n*6)
	for _, p := range s.Points {
		buf = append(buf, p.X, p.Y)
	}
	for i, p := range s.Points {
		fwd := p.Add(s.Tangents[i])
		back := p.Sub(s.Tangents[i])
		buf = append(buf, fwd.X, fwd.Y, back.X, back.Y)
	}
	return buf
}

// HandlePosition returns where h currently sits.
func (s *Spline) HandlePosition(h Handle) math.Vec2 {
	p := s.Points[h.Index]
	switch h.Kind {
	case HandleForward:
		return p.Add(s.Tangents[h.Index])
	case HandleBackward:
		return p.Sub(s.Tangents[h.Index])
	}
	return p
}

// FindHandle returns the first handle within epsilon of pos. Tangent tips
// are checked before points, and only the enabled groups are searched.
func (s *Spline) FindHandle(pos math.Vec2, epsilon float32, points, tangents bool) (Handle, bool) {
	if tangents {
		for i := range s.Tangents {
			for _, kind := range [...]HandleKind{HandleForward, HandleBackward} {
				h := Handle{Kind: kind, Index: i}
				if s.HandlePosition(h).Distance(pos) < epsilon {
					return h, true
				}
			}
		}
	}
	if points {
		for i, p := range s.Points {
			if p.Distance(pos) < epsilon {
				return Handle{Kind: HandlePoint, Index: i}, true
			}
		}
	}
	return Handle{}, false
}

// MoveHandle drags h by delta. Dragging the backward tip moves the
// tangent the opposite way so the tip follows the cursor.
func (s *Spline) MoveHandle(h Handle, delta math.Vec2) {
	switch h.Kind {
	case HandlePoint:
		s.Points[h.Index] = s.Points[h.Index].Add(delta)
	case HandleForward:
		s.Tangents[h.Index] = s.Tangents[h.Index].Add(delta)
	case HandleBackward:
		s.Tangents[h.Index] = s.Tangents[h.Index].Sub(delta)
	}
}

// AddPoint appends p with a quarter-length tangent pointing away from
// the previous last point.
func (s *Spline) AddPoint(p math.Vec2) {
	last := s.Points[len(s.Points)-1]
	s.Tangents = append(s.Tangents, p.Sub(last).Normalize().Scale(0.25))
	s.Points = append(s.Points, p)
}

// RemovePoint deletes point i and its tangent. It reports false and does
// nothing when i is out of range or only MinPoints remain.
func (s *Spline) RemovePoint(i int) bool {
	if len(s.Points) <= MinPoints || i < 0 || i >= len(s.Points) {
		return false
	}
	s.Points = append(s.Points[:i], s.Points[i+1:]...)
	s.Tangents = append(s.Tangents[:i], s.Tangents[i+1:]...)
	return true
}

// PickTolerance returns the NDC radius matching a 10 pixel cursor box
// in a width x height viewport.
func PickTolerance(width, height float32) float32 {
	return math.Vec2{X: 10 / width, Y: 10 / height}.Length()
}
