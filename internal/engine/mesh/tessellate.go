package mesh

import "github.com/Faultbox/nurbs-editor/pkg/math"

// Evaluator is a parametric surface defined over [0,1]x[0,1].
type Evaluator interface {
	Evaluate(u, v float32) math.Vec3
}

// Tessellate samples surf on a (uCount+1) x (vCount+1) parameter grid and
// builds two triangles per cell. Vertex ids are row-major, u-major.
// Counts below 1 are raised to 1.
func Tessellate(surf Evaluator, uCount, vCount int, mat *Material) *Mesh {
	uCount = max(uCount, 1)
	vCount = max(vCount, 1)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (uCount+1)*(vCount+1)),
		Polygons: make([]Polygon, 0, 2*uCount*vCount),
		UCount:   uCount,
		VCount:   vCount,
	}

	for i := 0; i <= uCount; i++ {
		u := param(i, uCount)
		for j := 0; j <= vCount; j++ {
			m.Vertices = append(m.Vertices, Vertex{
				ID:       uint32(len(m.Vertices)),
				Position: surf.Evaluate(u, param(j, vCount)),
			})
		}
	}

	row := uint32(vCount + 1)
	for i := 0; i < uCount; i++ {
		for j := 0; j < vCount; j++ {
			a := uint32(i)*row + uint32(j) // (i, j)
			b := a + 1                     // (i, j+1)
			c := a + row                   // (i+1, j)
			d := c + 1                     // (i+1, j+1)
			m.addPolygon(a, b, c, mat)
			m.addPolygon(c, b, d, mat)
		}
	}

	m.computeVertexNormals()
	m.updateBounds()
	return m
}

// param returns step k of n on [0, 1], with the last step exactly 1.
func param(k, n int) float32 {
	if k == n {
		return 1
	}
	return float32(k) / float32(n)
}

func (m *Mesh) addPolygon(a, b, c uint32, mat *Material) {
	pa := m.Vertices[a].Position
	pb := m.Vertices[b].Position
	pc := m.Vertices[c].Position

	idx := len(m.Polygons)
	m.Polygons = append(m.Polygons, Polygon{
		Vertices: [3]uint32{a, b, c},
		Normal:   pb.Sub(pa).Cross(pc.Sub(pa)).Normalize(),
		Material: mat,
	})
	for _, v := range [...]uint32{a, b, c} {
		m.Vertices[v].Polygons = append(m.Vertices[v].Polygons, idx)
	}
}

// computeVertexNormals sets every vertex normal to the normalized sum of
// its polygons' face normals.
func (m *Mesh) computeVertexNormals() {
	for i := range m.Vertices {
		var sum math.Vec3
		for _, p := range m.Vertices[i].Polygons {
			sum = sum.Add(m.Polygons[p].Normal)
		}
		m.Vertices[i].Normal = sum.Normalize()
	}
}

func (m *Mesh) updateBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	m.Bounds = b
}
