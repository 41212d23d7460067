package stlmesh

import "gonum.org/v1/gonum/spatial/r3"

func (p Point) toR3() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Bounds returns the smallest box holding every point of the mesh. An empty
// mesh has zero bounds.
func (m *Mesh) Bounds() (min, max Point) {
	if len(m.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = m.Points[0], m.Points[0]
	for _, p := range m.Points[1:] {
		min.X, max.X = minMax(p.X, min.X, max.X)
		min.Y, max.Y = minMax(p.Y, min.Y, max.Y)
		min.Z, max.Z = minMax(p.Z, min.Z, max.Z)
	}
	return min, max
}

func minMax(v, lo, hi float32) (float32, float32) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}

// SurfaceArea sums the area of every triangle.
func (m *Mesh) SurfaceArea() float64 {
	area := 0.0
	for i := range m.Triangles {
		p := m.TrianglePoints(i)
		a, b, c := p[0].toR3(), p[1].toR3(), p[2].toR3()
		area += r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a))) / 2
	}
	return area
}

// Volume sums the signed volumes of the tetrahedra formed by the origin and
// each triangle. It is only meaningful for closed, consistently wound
// meshes, and is negative when the faces point inwards.
func (m *Mesh) Volume() float64 {
	volume := 0.0
	for i := range m.Triangles {
		p := m.TrianglePoints(i)
		a, b, c := p[0].toR3(), p[1].toR3(), p[2].toR3()
		volume += r3.Dot(a, r3.Cross(b, c)) / 6
	}
	return volume
}
