package picking

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
)

// farGrid places every control point well outside the view.
func farGrid() *nurbs.Grid {
	g := &nurbs.Grid{}
	for n := 0; n < nurbs.PointCount; n++ {
		i, j := nurbs.Coords(n)
		g.Set(i, j, math.Vec3{X: 5 + float32(n), Y: 5})
		g.SetWeight(i, j, 1)
	}
	return g
}

func TestFindPointPrefersNearerDepth(t *testing.T) {
	g := farGrid()
	g.Set(0, 2, math.Vec3{X: 0.01, Y: 0, Z: 0.2})  // B, index 2
	g.Set(2, 1, math.Vec3{X: 0, Y: 0.01, Z: -0.5}) // A, index 9

	p := NewProjector(0)
	id := math.Identity()
	p.RecomputeProjections(g, id, id, id)

	got, ok := p.FindPoint(math.Vec2{})
	require.True(t, ok)
	assert.Equal(t, 9, got)
}

func TestFindPointMiss(t *testing.T) {
	p := NewProjector(DefaultTolerance)
	id := math.Identity()
	p.RecomputeProjections(farGrid(), id, id, id)

	got, ok := p.FindPoint(math.Vec2{})
	assert.False(t, ok)
	assert.Equal(t, -1, got)
}

func TestFindPointRejectsOutsideDepthRange(t *testing.T) {
	g := farGrid()
	g.Set(1, 1, math.Vec3{Z: 1.5})
	g.Set(1, 2, math.Vec3{Z: -1.01})

	p := NewProjector(0)
	id := math.Identity()
	p.RecomputeProjections(g, id, id, id)

	_, ok := p.FindPoint(math.Vec2{})
	assert.False(t, ok)
}

func TestFindPointTolerance(t *testing.T) {
	g := farGrid()
	g.Set(3, 3, math.Vec3{X: 0.02})

	p := NewProjector(0)
	id := math.Identity()
	p.RecomputeProjections(g, id, id, id)

	got, ok := p.FindPoint(math.Vec2{})
	require.True(t, ok)
	assert.Equal(t, 15, got)

	_, ok = p.FindPoint(math.Vec2{X: -0.02})
	assert.False(t, ok)

	p.Tolerance = 0.05
	_, ok = p.FindPoint(math.Vec2{X: -0.02})
	assert.True(t, ok)
}

func TestFindPointThroughPerspective(t *testing.T) {
	g := farGrid()
	g.Set(0, 0, math.Vec3{Z: -1}) // behind the origin as seen from +Z
	g.Set(0, 1, math.Vec3{Z: 1})

	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(float32(stdmath.Pi/4), 1, 1, 100)

	p := NewProjector(0)
	p.RecomputeProjections(g, math.Identity(), view, proj)

	got, ok := p.FindPoint(math.Vec2{})
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Less(t, p.Projection(1).Z, p.Projection(0).Z)
}

func TestRecomputeUsesModelMatrix(t *testing.T) {
	g := farGrid()
	g.Set(2, 2, math.Vec3{X: -3})

	p := NewProjector(0)
	id := math.Identity()
	p.RecomputeProjections(g, math.Translate(3, 0, 0), id, id)

	got, ok := p.FindPoint(math.Vec2{})
	require.True(t, ok)
	assert.Equal(t, 10, got)
}
