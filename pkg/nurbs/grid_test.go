package nurbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()

	assert.Equal(t, math.Vec3{X: -3, Y: 4, Z: -3}, g.Get(0, 0))
	assert.Equal(t, math.Vec3{X: -3, Y: 0, Z: -1}, g.Get(0, 1))
	assert.Equal(t, math.Vec3{X: 1, Y: 0, Z: 3}, g.Get(2, 3))
	assert.Equal(t, math.Vec3{X: 3, Y: 4, Z: 3}, g.Get(3, 3))

	assert.Equal(t, float32(5), g.Weight(0, 0))
	assert.Equal(t, float32(2), g.Weight(1, 0))
	assert.Equal(t, float32(1), g.Weight(2, 2))
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := DefaultGrid()
	assert.Panics(t, func() { g.Get(4, 0) })
	assert.Panics(t, func() { g.Set(0, -1, math.Vec3{}) })
	assert.Panics(t, func() { g.Weight(0, 4) })
	assert.Panics(t, func() { Coords(PointCount) })
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	for n := 0; n < PointCount; n++ {
		i, j := Coords(n)
		assert.Equal(t, n, Index(i, j))
	}
}

func TestSetWeightFloor(t *testing.T) {
	g := DefaultGrid()
	g.SetWeight(1, 1, -3)
	assert.Zero(t, g.Weight(1, 1))
}

func TestMove(t *testing.T) {
	g := DefaultGrid()
	g.Move(1, 2, math.Vec3{X: 0.5, Y: -1})
	assert.Equal(t, math.Vec3{X: -0.5, Y: -1, Z: 1}, g.Get(1, 2))
}

func TestPointsBuffer(t *testing.T) {
	g := DefaultGrid()
	buf := g.PointsBuffer()
	require.Len(t, buf, PointCount*3)

	for n := 0; n < PointCount; n++ {
		p := g.Point(n)
		assert.Equal(t, []float32{p.X, p.Y, p.Z}, buf[n*3:n*3+3])
	}
}

func TestControlNetVisitsEveryEdge(t *testing.T) {
	edges := map[[2]uint32]bool{}
	for k := 1; k < len(ControlNetIndices); k++ {
		a, b := ControlNetIndices[k-1], ControlNetIndices[k]
		if a > b {
			a, b = b, a
		}
		edges[[2]uint32{a, b}] = true
	}

	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			n := uint32(Index(i, j))
			if j+1 < Size {
				assert.True(t, edges[[2]uint32{n, n + 1}], "row edge %d-%d", n, n+1)
			}
			if i+1 < Size {
				assert.True(t, edges[[2]uint32{n, n + Size}], "column edge %d-%d", n, n+Size)
			}
		}
	}
	assert.Len(t, PointColors, PointCount*3)
}
