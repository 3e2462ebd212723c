package nurbs

import (
	"fmt"

	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// Size is the number of control points along each grid axis.
const Size = 4

// PointCount is the total number of control points in a grid.
const PointCount = Size * Size

// Grid holds the control points and weights of one patch.
// Points[i][j] is row i, column j; Index(i, j) gives its flat position.
type Grid struct {
	Points  [Size][Size]math.Vec3
	Weights [Size][Size]float32
}

// DefaultGrid returns the startup saddle: a flat sheet with the four
// corners raised and heavier corner and edge weights.
func DefaultGrid() *Grid {
	g := &Grid{}
	coords := [Size]float32{-3, -1, 1, 3}
	weights := [Size][Size]float32{
		{5, 2, 2, 5},
		{2, 1, 1, 2},
		{2, 1, 1, 2},
		{5, 2, 2, 5},
	}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			var y float32
			if (i == 0 || i == Size-1) && (j == 0 || j == Size-1) {
				y = 4
			}
			g.Points[i][j] = math.Vec3{X: coords[i], Y: y, Z: coords[j]}
		}
	}
	g.Weights = weights
	return g
}

// Index returns the row-major flat index of (i, j).
func Index(i, j int) int {
	checkBounds(i, j)
	return i*Size + j
}

// Coords is the inverse of Index.
func Coords(index int) (i, j int) {
	if index < 0 || index >= PointCount {
		panic(fmt.Sprintf("nurbs: control point index %d out of range", index))
	}
	return index / Size, index % Size
}

// Get returns the control point at (i, j). Out-of-range indices panic.
func (g *Grid) Get(i, j int) math.Vec3 {
	checkBounds(i, j)
	return g.Points[i][j]
}

// Set replaces the control point at (i, j).
func (g *Grid) Set(i, j int, p math.Vec3) {
	checkBounds(i, j)
	g.Points[i][j] = p
}

// Move displaces the control point at (i, j) by d.
func (g *Grid) Move(i, j int, d math.Vec3) {
	checkBounds(i, j)
	g.Points[i][j] = g.Points[i][j].Add(d)
}

// Weight returns the weight at (i, j).
func (g *Grid) Weight(i, j int) float32 {
	checkBounds(i, j)
	return g.Weights[i][j]
}

// SetWeight replaces the weight at (i, j). Negative weights are stored as 0.
func (g *Grid) SetWeight(i, j int, w float32) {
	checkBounds(i, j)
	if w < 0 {
		w = 0
	}
	g.Weights[i][j] = w
}

// Point returns the control point at a flat index.
func (g *Grid) Point(index int) math.Vec3 {
	i, j := Coords(index)
	return g.Points[i][j]
}

// PointsBuffer flattens the 16 control points into xyz triples for the
// overlay vertex buffer.
func (g *Grid) PointsBuffer() []float32 {
	buf := make([]float32, 0, PointCount*3)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			p := g.Points[i][j]
			buf = append(buf, p.X, p.Y, p.Z)
		}
	}
	return buf
}

// ControlNetIndices walks every row and every column of the grid as a
// single line strip.
var ControlNetIndices = []uint32{
	0, 1, 2, 3, 7, 6, 5, 4, 8, 9, 10, 11, 15, 14, 13, 12,
	8, 4, 0, 1, 5, 9, 13, 14, 10, 6, 2, 3, 7, 11, 15,
}

// PointColors is an RGB triple per control point, in flat index order.
var PointColors = []float32{
	1, 0, 0,
	1, 0.375, 0,
	1, 0.75, 0,
	0.875, 1, 0,
	0.5, 1, 0,
	0.125, 1, 0,
	0, 1, 0.25,
	0, 1, 0.625,
	0, 1, 1,
	0, 0.625, 1,
	0, 0.25, 1,
	0.125, 0, 1,
	0.5, 0, 1,
	0.875, 0, 1,
	1, 0, 0.75,
	1, 0, 0.375,
}

func checkBounds(i, j int) {
	if i < 0 || i >= Size || j < 0 || j >= Size {
		panic(fmt.Sprintf("nurbs: control point (%d, %d) out of range", i, j))
	}
}
