package nurbs

import "github.com/Faultbox/nurbs-editor/pkg/math"

// DenominatorEpsilon is the floor applied to the rational denominator.
// A neighbourhood of all-zero weights evaluates to the origin rather
// than NaN.
const DenominatorEpsilon float32 = 1e-6

// Evaluate returns the surface point at (u, v). Parameters outside [0, 1]
// extrapolate the patch polynomials.
func (g *Grid) Evaluate(u, v float32) math.Vec3 {
	bu := BasisVector(u)
	bv := BasisVector(v)

	var num math.Vec3
	var den float32
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			c := bu[i] * bv[j] * g.Weights[i][j]
			num = num.Add(g.Points[i][j].Scale(c))
			den += c
		}
	}
	if den < DenominatorEpsilon {
		den = DenominatorEpsilon
	}
	return num.Scale(1 / den)
}
