// Package picking resolves cursor positions to surface control points.
package picking

import (
	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
)

// DefaultTolerance is the pick radius in normalized device coordinates.
const DefaultTolerance float32 = 0.03

// Projector caches the NDC position of every control point.
// The cache is only as fresh as the last RecomputeProjections call.
type Projector struct {
	Tolerance float32

	ndc [nurbs.PointCount]math.Vec3
}

// NewProjector creates a projector. A non-positive tolerance selects
// DefaultTolerance.
func NewProjector(tolerance float32) *Projector {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Projector{Tolerance: tolerance}
}

// RecomputeProjections projects every control point of g through
// proj * view * model and stores the perspective-divided result.
func (p *Projector) RecomputeProjections(g *nurbs.Grid, model, view, proj math.Mat4) {
	mvp := proj.Mul(view).Mul(model)
	for n := range p.ndc {
		p.ndc[n] = mvp.MulVec4(g.Point(n).Vec4(1)).PerspectiveDivide()
	}
}

// Projection returns the cached NDC position of control point n.
func (p *Projector) Projection(n int) math.Vec3 {
	return p.ndc[n]
}

// FindPoint returns the control point under cursor. Candidates must lie
// within Tolerance in x/y and inside the depth range [-1, 1]; the nearest
// (smallest depth) wins. A miss returns -1, false.
func (p *Projector) FindPoint(cursor math.Vec2) (int, bool) {
	found := -1
	for n, q := range p.ndc {
		if !q.IsFinite() || q.Z < -1 || q.Z > 1 {
			continue
		}
		if (math.Vec2{X: q.X, Y: q.Y}).Distance(cursor) >= p.Tolerance {
			continue
		}
		if found < 0 || q.Z < p.ndc[found].Z {
			found = n
		}
	}
	return found, found >= 0
}
