package mesh

// FloatsPerVertex is the interleaved layout: position, color, normal.
const FloatsPerVertex = 9

// Buffers flattens the mesh for upload: an interleaved vertex buffer of
// position, color and normal triples, and a triangle index buffer.
// The color comes from the material of the vertex's first polygon.
func (m *Mesh) Buffers() (vertices []float32, indices []uint32) {
	vertices = make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		var r, g, b float32 = 1, 1, 1
		if len(v.Polygons) > 0 {
			if mat := m.Polygons[v.Polygons[0]].Material; mat != nil {
				r, g, b = mat.Color.X, mat.Color.Y, mat.Color.Z
			}
		}
		vertices = append(vertices,
			v.Position.X, v.Position.Y, v.Position.Z,
			r, g, b,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}

	indices = make([]uint32, 0, len(m.Polygons)*3)
	for _, p := range m.Polygons {
		indices = append(indices, p.Vertices[:]...)
	}
	return vertices, indices
}

// NormalLines returns one GL_LINES segment per vertex, from the vertex
// along its normal for length units.
func (m *Mesh) NormalLines(length float32) []float32 {
	lines := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		tip := v.Position.Add(v.Normal.Scale(length))
		lines = append(lines,
			v.Position.X, v.Position.Y, v.Position.Z,
			tip.X, tip.Y, tip.Z,
		)
	}
	return lines
}
