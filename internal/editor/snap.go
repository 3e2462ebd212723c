package editor

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// Snap quantizes drag displacements to a grid. Sub-step motion is carried
// over to the next call so slow drags still advance.
type Snap struct {
	enabled bool
	size    float32
	carry   math.Vec3
}

// NewSnap creates a disabled snapper with the given grid size.
func NewSnap(size float32) *Snap {
	s := &Snap{size: 1}
	s.SetSize(size)
	return s
}

// Enabled reports whether snapping is on.
func (s *Snap) Enabled() bool {
	return s.enabled
}

// Size returns the grid size.
func (s *Snap) Size() float32 {
	return s.size
}

// Carry returns the displacement not yet applied.
func (s *Snap) Carry() math.Vec3 {
	return s.carry
}

// SetEnabled turns snapping on or off. A change drops the carry.
func (s *Snap) SetEnabled(on bool) {
	if on == s.enabled {
		return
	}
	s.enabled = on
	s.carry = math.Vec3{}
}

// SetSize changes the grid size and drops the carry. Non-positive sizes
// are ignored.
func (s *Snap) SetSize(size float32) {
	if size <= 0 || size == s.size {
		return
	}
	s.size = size
	s.carry = math.Vec3{}
}

// Reset drops the carry.
func (s *Snap) Reset() {
	s.carry = math.Vec3{}
}

// Apply returns the part of d that should move the point. With snapping
// off that is d itself; with snapping on it is the whole grid steps of
// carry+d, and the remainder becomes the new carry.
func (s *Snap) Apply(d math.Vec3) math.Vec3 {
	if !s.enabled {
		return d
	}
	total := s.carry.Add(d)
	step := math.Vec3{
		X: s.quantize(total.X),
		Y: s.quantize(total.Y),
		Z: s.quantize(total.Z),
	}
	s.carry = total.Sub(step)
	return step
}

func (s *Snap) quantize(v float32) float32 {
	return math32.Trunc(v/s.size) * s.size
}
