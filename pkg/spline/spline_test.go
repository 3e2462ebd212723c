package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

func assertVec2(t *testing.T, want, got math.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-5, "y")
}

func TestSegmentEndpoints(t *testing.T) {
	s := Default()
	assertVec2(t, s.Points[0], s.Segment(0, 0))
	assertVec2(t, s.Points[1], s.Segment(0, 1))
}

func TestSegmentStraightLine(t *testing.T) {
	// Tangents equal to the chord give linear motion.
	s := New(math.Vec2{}, math.Vec2{X: 2}, math.Vec2{X: 2}, math.Vec2{X: 2}, 1)
	assertVec2(t, math.Vec2{X: 0.5}, s.Segment(0, 0.25))
	assertVec2(t, math.Vec2{X: 1}, s.Segment(0, 0.5))
}

func TestSegmentTangentFactor(t *testing.T) {
	s := Default()
	s.TangentFactor = 0
	// Zero tangents give the smoothstep blend, which is 1/2 at t=1/2.
	assertVec2(t, math.Vec2{}, s.Segment(0, 0.5))

	s.TangentFactor = 1
	// At t=1/2: p = (p0+p1)/2 + (d0-d1)/8.
	assertVec2(t, math.Vec2{Y: 0.125}, s.Segment(0, 0.5))
}

func TestSample(t *testing.T) {
	s := Default()
	s.AddPoint(math.Vec2{X: 0.6})

	buf := s.Sample(10)
	require.Len(t, buf, (2*10+1)*2)
	assert.Equal(t, []float32{0.6, 0}, buf[len(buf)-2:])
	assertVec2(t, s.Points[1], math.Vec2{X: buf[20], Y: buf[21]})
}

func TestFindHandlePrefersTangents(t *testing.T) {
	s := New(math.Vec2{}, math.Vec2{X: 1}, math.Vec2{X: 0.01}, math.Vec2{Y: 0.5}, 1)

	h, ok := s.FindHandle(math.Vec2{}, 0.05, true, true)
	require.True(t, ok)
	assert.Equal(t, Handle{Kind: HandleForward, Index: 0}, h)

	h, ok = s.FindHandle(math.Vec2{}, 0.05, true, false)
	require.True(t, ok)
	assert.Equal(t, Handle{Kind: HandlePoint, Index: 0}, h)

	h, ok = s.FindHandle(math.Vec2{X: 1, Y: -0.5}, 0.05, false, true)
	require.True(t, ok)
	assert.Equal(t, Handle{Kind: HandleBackward, Index: 1}, h)

	_, ok = s.FindHandle(math.Vec2{X: 5}, 0.05, true, true)
	assert.False(t, ok)
}

func TestMoveHandle(t *testing.T) {
	s := Default()
	d := math.Vec2{X: 0.1, Y: 0.2}

	s.MoveHandle(Handle{Kind: HandlePoint, Index: 1}, d)
	assertVec2(t, math.Vec2{X: 0.3, Y: 0.2}, s.Points[1])

	s.MoveHandle(Handle{Kind: HandleForward, Index: 0}, d)
	assertVec2(t, math.Vec2{X: 0.1, Y: 0.7}, s.Tangents[0])

	back := Handle{Kind: HandleBackward, Index: 0}
	before := s.HandlePosition(back)
	s.MoveHandle(back, d)
	assertVec2(t, before.Add(d), s.HandlePosition(back))
}

func TestAddPoint(t *testing.T) {
	s := Default()
	s.AddPoint(math.Vec2{X: 0.2, Y: 2})

	require.Equal(t, 3, s.Len())
	assertVec2(t, math.Vec2{Y: 0.25}, s.Tangents[2])
}

func TestRemovePoint(t *testing.T) {
	s := Default()
	assert.False(t, s.RemovePoint(0), "two points must remain")

	s.AddPoint(math.Vec2{X: 1})
	assert.False(t, s.RemovePoint(3))
	assert.False(t, s.RemovePoint(-1))
	assert.True(t, s.RemovePoint(1))
	assert.Equal(t, []math.Vec2{{X: -0.2}, {X: 1}}, s.Points)
	assert.Len(t, s.Tangents, 2)
}

func TestHandlesBuffer(t *testing.T) {
	s := Default()
	buf := s.HandlesBuffer()
	require.Len(t, buf, 12)
	assert.Equal(t, []float32{-0.2, 0, 0.2, 0}, buf[:4])
	assert.Equal(t, []float32{-0.2, 0.5, -0.2, -0.5}, buf[4:8])
}

func TestPickTolerance(t *testing.T) {
	assert.InDelta(t, 0.0279508, PickTolerance(800, 400), 1e-6)
	assert.InDelta(t, 0.0176777, PickTolerance(800, 800), 1e-6)
}
