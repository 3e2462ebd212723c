package nurbs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

func uniformWeights(g *Grid, w float32) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			g.SetWeight(i, j, w)
		}
	}
}

func assertVec(t *testing.T, want, got math.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestEvaluateUniformWeightsCentre(t *testing.T) {
	g := DefaultGrid()
	uniformWeights(g, 1)

	// Only the four raised corners contribute to y, each by (1/48)^2 * 4.
	assertVec(t, math.Vec3{X: 0, Y: 16.0 / 2304, Z: 0}, g.Evaluate(0.5, 0.5), 1e-6)
}

func TestEvaluateWeightScaleInvariant(t *testing.T) {
	a := DefaultGrid()
	b := DefaultGrid()
	uniformWeights(a, 1)
	uniformWeights(b, 7)

	for _, uv := range [][2]float32{{0, 0}, {0.25, 0.8}, {1, 0.5}} {
		assertVec(t, a.Evaluate(uv[0], uv[1]), b.Evaluate(uv[0], uv[1]), 1e-5)
	}
}

func TestEvaluateDefaultWeightsCentre(t *testing.T) {
	g := DefaultGrid()

	// Corner weight 5: numerator 4*5*4/2304, denominator 2504/2304.
	assertVec(t, math.Vec3{X: 0, Y: 80.0 / 2504, Z: 0}, g.Evaluate(0.5, 0.5), 1e-6)
}

func TestEvaluateDoesNotInterpolateCorner(t *testing.T) {
	g := DefaultGrid()
	uniformWeights(g, 1)

	got := g.Evaluate(0, 0)
	assert.NotEqual(t, g.Get(0, 0), got)
	assert.InDelta(t, -1.0, got.X, 1e-6)
	assert.InDelta(t, -1.0, got.Z, 1e-6)

	g = DefaultGrid()
	assert.Greater(t, g.Get(0, 0).Distance(g.Evaluate(0, 0)), float32(0.1))
}

func TestEvaluateZeroWeightsStaysFinite(t *testing.T) {
	g := DefaultGrid()
	uniformWeights(g, 0)

	got := g.Evaluate(0.3, 0.6)
	assert.True(t, got.IsFinite())
	assert.Equal(t, math.Vec3{}, got)
}
