package stlmesh

import "fmt"

// Mesh is an indexed triangle mesh as read from an STL file.
type Mesh struct {
	// Name is the text after "solid" on the first line of an ASCII file.
	Name string

	// Header is the opaque 80-byte header of a binary file.
	Header [headerSize]byte

	// Points holds every distinct vertex, indexed by PointID.
	Points []Point

	// Triangles lists the facets in file order.
	Triangles []Triangle
}

func (m *Mesh) NumberOfPoints() int {
	return len(m.Points)
}

func (m *Mesh) NumberOfCells() int {
	return len(m.Triangles)
}

// TrianglePoints returns the coordinates of the i-th triangle's vertices.
func (m *Mesh) TrianglePoints(i int) [3]Point {
	t := m.Triangles[i]
	return [3]Point{m.Points[t[0]], m.Points[t[1]], m.Points[t[2]]}
}

// TriangleNormal recomputes the normal of the i-th triangle.
func (m *Mesh) TriangleNormal(i int) Normal {
	p := m.TrianglePoints(i)
	return ComputeNormal(p[0], p[1], p[2])
}

// PointBuffer exposes the mesh points as a float32 buffer.
func (m *Mesh) PointBuffer() PointBuffer {
	data := make([]float32, 0, 3*len(m.Points))
	for _, p := range m.Points {
		data = append(data, p.X, p.Y, p.Z)
	}
	return NewPointBuffer(data)
}

// CellBuffer exposes the triangles as triangle cells.
func (m *Mesh) CellBuffer() CellBuffer {
	cells := make(CellBuffer, 0, 5*len(m.Triangles))
	for _, t := range m.Triangles {
		cells = cells.AppendCell(TriangleCell, uint64(t[0]), uint64(t[1]), uint64(t[2]))
	}
	return cells
}

// Validate checks that every triangle refers to an existing point.
func (m *Mesh) Validate() error {
	for i, t := range m.Triangles {
		for _, id := range t {
			if id < 0 || int(id) >= len(m.Points) {
				return fmt.Errorf("%w: triangle %d refers to point %d of %d", ErrInvalidCell, i, id, len(m.Points))
			}
		}
	}
	return nil
}

// meshBuilder owns the point table and triangle list of one read.
type meshBuilder struct {
	points    *PointTable
	triangles *TriangleList
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{
		points:    NewPointTable(),
		triangles: NewTriangleList(),
	}
}

func (b *meshBuilder) reserve(n int) {
	b.triangles = NewTriangleListWithCapacity(n)
}

func (b *meshBuilder) addTriangle(p0, p1, p2 Point) {
	b.triangles.AddTriangle(Triangle{
		b.points.Insert(p0),
		b.points.Insert(p1),
		b.points.Insert(p2),
	})
}

func (b *meshBuilder) mesh() *Mesh {
	return &Mesh{
		Points:    b.points.Points(),
		Triangles: b.triangles.Triangles(),
	}
}

// facet is one triangle ready to be written.
type facet struct {
	normal Normal
	vertex [3]Point
}

// collectFacets narrows the points and keeps the triangle-shaped cells,
// computing each normal. It also returns the number of points. Nothing is
// written, so every configuration error surfaces before output starts.
func collectFacets(pts PointBuffer, cells CellBuffer) ([]facet, int, error) {
	points, err := pts.Points()
	if err != nil {
		return nil, 0, err
	}

	facets := make([]facet, 0)
	cell := 0
	err = cells.Walk(func(ct CellType, ids []uint64) error {
		defer func() { cell++ }()
		if !IsTriangle(ct, len(ids)) {
			return nil
		}
		if len(ids) != 3 {
			return fmt.Errorf("%w: cell %d: triangle with %d vertices", ErrInvalidCell, cell, len(ids))
		}

		var f facet
		for k, id := range ids {
			if id >= uint64(len(points)) {
				return fmt.Errorf("%w: cell %d: point %d out of range (%d points)", ErrInvalidCell, cell, id, len(points))
			}
			f.vertex[k] = points[id]
		}
		f.normal = ComputeNormal(f.vertex[0], f.vertex[1], f.vertex[2])
		facets = append(facets, f)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if uint64(len(facets)) > maxTriangles {
		return nil, 0, fmt.Errorf("%w: %d triangles do not fit a binary STL count", ErrInvalidCell, len(facets))
	}

	return facets, len(points), nil
}

const maxTriangles = 1<<32 - 1
