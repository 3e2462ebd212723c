package math

// ScreenToNDC converts pixel coordinates to normalized device coordinates
// (-1 to 1, Y up).
func ScreenToNDC(px, py, width, height float32) Vec2 {
	return Vec2{
		X: px/width*2 - 1,
		Y: 1 - py/height*2,
	}
}
