package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

func TestSnapDisabledPassesThrough(t *testing.T) {
	s := NewSnap(1)
	d := math.Vec3{X: 0.3, Y: -0.7, Z: 2.2}
	assert.Equal(t, d, s.Apply(d))
	assert.Equal(t, math.Vec3{}, s.Carry())
}

func TestSnapTruncatesTowardZero(t *testing.T) {
	s := NewSnap(1)
	s.SetEnabled(true)

	got := s.Apply(math.Vec3{X: 1.5, Y: -1.5})
	assert.Equal(t, math.Vec3{X: 1, Y: -1}, got)
	assert.InDelta(t, 0.5, s.Carry().X, 1e-6)
	assert.InDelta(t, -0.5, s.Carry().Y, 1e-6)

	// Opposite motion cancels the carry before stepping back.
	got = s.Apply(math.Vec3{X: -0.4})
	assert.Equal(t, float32(0), got.X)
	assert.InDelta(t, 0.1, s.Carry().X, 1e-6)
}

func TestSnapGridSize(t *testing.T) {
	s := NewSnap(0.25)
	s.SetEnabled(true)

	got := s.Apply(math.Vec3{Z: 0.6})
	assert.InDelta(t, 0.5, got.Z, 1e-6)
	assert.InDelta(t, 0.1, s.Carry().Z, 1e-6)
}

func TestSnapSizeChangeDropsCarry(t *testing.T) {
	s := NewSnap(1)
	s.SetEnabled(true)
	s.Apply(math.Vec3{X: 0.5})

	s.SetSize(0)
	assert.Equal(t, float32(1), s.Size())
	assert.InDelta(t, 0.5, s.Carry().X, 1e-6)

	s.SetSize(2)
	assert.Equal(t, math.Vec3{}, s.Carry())
}
