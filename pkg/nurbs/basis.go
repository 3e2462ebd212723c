// Package nurbs implements a 4x4 rational bicubic surface patch over the
// uniform cubic B-spline basis.
package nurbs

// Basis returns the i-th uniform cubic B-spline basis value at t.
// Indices outside 0..3 contribute nothing and yield 0.
func Basis(i int, t float32) float32 {
	switch i {
	case 0:
		s := 1 - t
		return s * s * s / 6
	case 1:
		return ((3*t-6)*t*t + 4) / 6
	case 2:
		return (((-3*t+3)*t+3)*t + 1) / 6
	case 3:
		return t * t * t / 6
	}
	return 0
}

// BasisVector returns all four basis values at t.
func BasisVector(t float32) [Size]float32 {
	return [Size]float32{Basis(0, t), Basis(1, t), Basis(2, t), Basis(3, t)}
}
