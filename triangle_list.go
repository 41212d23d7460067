package stlmesh

// TriangleList keeps triangles in the order they were read or written.
type TriangleList struct {
	triangles []Triangle
}

func NewTriangleList() *TriangleList {
	return &TriangleList{triangles: make([]Triangle, 0, 10)}
}

func NewTriangleListWithCapacity(n int) *TriangleList {
	return &TriangleList{triangles: make([]Triangle, 0, n)}
}

func (tl *TriangleList) AddTriangle(t Triangle) {
	tl.triangles = append(tl.triangles, t)
}

func (tl *TriangleList) GetTriangle(i int) Triangle {
	return tl.triangles[i]
}

func (tl *TriangleList) TriangleCount() int {
	return len(tl.triangles)
}

func (tl *TriangleList) Triangles() []Triangle {
	return tl.triangles
}
