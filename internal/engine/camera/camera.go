// Package camera provides the look-at camera used by the editors.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

const (
	// MinFOV and MaxFOV bound the vertical field of view (radians).
	MinFOV = math32.Pi / 180
	MaxFOV = 179 * math32.Pi / 180

	// degenerateEpsilon is the squared-length threshold below which the
	// eye-target offset or the rebuilt up vector is treated as zero.
	degenerateEpsilon = 1e-6
)

// Camera looks from Position at Target. Up is kept orthogonal to the
// viewing direction; operations that would break that are rejected.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	Aspect float32 // Width / height
	FOV    float32 // Vertical field of view (radians)
	Near   float32
	Far    float32
}

// New creates a camera and orthogonalizes up against the view direction.
func New(position, target, up math.Vec3, aspect, fov, near, far float32) *Camera {
	c := &Camera{
		Position: position,
		Target:   target,
		Up:       up.Normalize(),
		Aspect:   aspect,
		FOV:      clampFOV(fov),
		Near:     near,
		Far:      far,
	}
	c.Up = c.back().Cross(c.Right()).Normalize()
	return c
}

// Default returns the startup camera: above and in front of the origin
// with a 45 degree field of view.
func Default(aspect float32) *Camera {
	return New(
		math.Vec3{Y: 5, Z: 10},
		math.Vec3{},
		math.Vec3{Y: 1},
		aspect,
		math32.Pi/4,
		1, 100,
	)
}

// back is the unnormalized offset from target to eye.
func (c *Camera) back() math.Vec3 {
	return c.Position.Sub(c.Target)
}

// Distance returns the eye-target distance.
func (c *Camera) Distance() float32 {
	return c.back().Length()
}

// Right returns normalize(cross(up, position - target)).
func (c *Camera) Right() math.Vec3 {
	return c.Up.Cross(c.back()).Normalize()
}

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	back := c.back().Normalize()
	right := c.Up.Cross(back).Normalize()
	up := back.Cross(right)
	return math.Basis(right, up, back, c.Position)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// AutoScale shrinks x and y on narrow viewports so the scene keeps its
// apparent size when the window is taller than wide.
func (c *Camera) AutoScale() math.Mat4 {
	s := min(c.Aspect, 1)
	return math.Scale(s, s, 1)
}

// ScaledViewMatrix returns AutoScale * ViewMatrix, the view used for
// drawing and picking.
func (c *Camera) ScaledViewMatrix() math.Mat4 {
	return c.AutoScale().Mul(c.ViewMatrix())
}

// SetAspect updates the aspect ratio from a viewport size.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// SetPosition moves the eye and rebuilds up from the previous right
// vector. It reports false and changes nothing when the eye would
// coincide with the target or the frame would degenerate.
func (c *Camera) SetPosition(p math.Vec3) bool {
	up, ok := c.rebuildUp(p, c.Target)
	if !ok {
		return false
	}
	c.Position = p
	c.Up = up
	return true
}

// SetTarget moves the look-at point, with the same guard as SetPosition.
func (c *Camera) SetTarget(t math.Vec3) bool {
	up, ok := c.rebuildUp(c.Position, t)
	if !ok {
		return false
	}
	c.Target = t
	c.Up = up
	return true
}

func (c *Camera) rebuildUp(position, target math.Vec3) (math.Vec3, bool) {
	offset := position.Sub(target)
	if offset.LengthSquared() < degenerateEpsilon {
		return math.Vec3{}, false
	}
	up := offset.Normalize().Cross(c.Right())
	if up.LengthSquared() < degenerateEpsilon {
		return math.Vec3{}, false
	}
	return up.Normalize(), true
}

// ScreenDelta converts a cursor move between two NDC positions into a
// world-space displacement in the camera plane.
func (c *Camera) ScreenDelta(from, to math.Vec2) math.Vec3 {
	d := to.Sub(from)
	return c.Up.Scale(2 * d.Y).Add(c.Right().Scale(2 * c.Aspect * d.X))
}

// Orbit rotates the eye and up vector around the target for a cursor
// move between two NDC positions: horizontal motion turns about up,
// vertical motion about right. The eye-target distance is preserved.
func (c *Camera) Orbit(from, to math.Vec2) {
	yaw := math.QuatFromAxisAngle(c.Up, 2*c.Aspect*(from.X-to.X))
	pitch := math.QuatFromAxisAngle(c.Right(), 2*(to.Y-from.Y))
	q := pitch.Mul(yaw)

	offset := c.back()
	rotated := q.Rotate(offset).Normalize().Scale(offset.Length())
	up := q.Rotate(c.Up)

	c.Position = c.Target.Add(rotated)
	right := up.Cross(rotated).Normalize()
	c.Up = rotated.Cross(right).Normalize()
}

// Pan drags the target with the cursor.
func (c *Camera) Pan(from, to math.Vec2) bool {
	return c.SetTarget(c.Target.Sub(c.ScreenDelta(from, to)))
}

// Roll turns up around the viewing axis by angle radians.
func (c *Camera) Roll(angle float32) {
	c.Up = math.QuatFromAxisAngle(c.back(), angle).Rotate(c.Up).Normalize()
}

// SetFOV sets the field of view, clamped to [MinFOV, MaxFOV].
func (c *Camera) SetFOV(fov float32) {
	c.FOV = clampFOV(fov)
}

// Zoom widens (positive delta) or narrows the field of view.
func (c *Camera) Zoom(delta float32) {
	c.SetFOV(c.FOV + delta)
}

func clampFOV(fov float32) float32 {
	return max(MinFOV, min(fov, MaxFOV))
}
