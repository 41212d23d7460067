package stlmesh

import "fmt"

// CellType numbers cell geometries the way generic mesh containers do.
type CellType uint64

const (
	VertexCell CellType = iota
	LineCell
	TriangleCell
	QuadrilateralCell
	PolygonCell
	TetrahedronCell
	HexahedronCell
	QuadraticEdgeCell
	QuadraticTriangleCell
)

func (c CellType) String() string {
	switch c {
	case VertexCell:
		return "vertex"
	case LineCell:
		return "line"
	case TriangleCell:
		return "triangle"
	case QuadrilateralCell:
		return "quadrilateral"
	case PolygonCell:
		return "polygon"
	case TetrahedronCell:
		return "tetrahedron"
	case HexahedronCell:
		return "hexahedron"
	case QuadraticEdgeCell:
		return "quadratic edge"
	case QuadraticTriangleCell:
		return "quadratic triangle"
	}
	return fmt.Sprintf("CellType(%d)", uint64(c))
}

// IsTriangle reports whether a cell can be written as an STL facet: a
// triangle cell, or a polygon cell with exactly three vertices.
func IsTriangle(ct CellType, numberOfVertices int) bool {
	return ct == TriangleCell || (ct == PolygonCell && numberOfVertices == 3)
}

// CellBuffer holds cells as flat (cellType, vertexCount, ids...) tuples.
type CellBuffer []uint64

// AppendCell adds one cell and returns the grown buffer.
func (b CellBuffer) AppendCell(ct CellType, ids ...uint64) CellBuffer {
	b = append(b, uint64(ct), uint64(len(ids)))
	return append(b, ids...)
}

// Walk calls fn for every cell in order. The ids slice aliases the buffer
// and must not be retained. Walk stops at the first error, including a
// tuple that runs past the end of the buffer.
func (b CellBuffer) Walk(fn func(ct CellType, ids []uint64) error) error {
	for i, cell := 0, 0; i < len(b); cell++ {
		if i+2 > len(b) {
			return fmt.Errorf("%w: cell %d: truncated header at offset %d", ErrInvalidCell, cell, i)
		}
		ct := CellType(b[i])
		n := b[i+1]
		i += 2
		if n > uint64(len(b)-i) {
			return fmt.Errorf("%w: cell %d: %d vertices but only %d values left", ErrInvalidCell, cell, n, len(b)-i)
		}
		if err := fn(ct, b[i:i+int(n)]); err != nil {
			return err
		}
		i += int(n)
	}
	return nil
}

// Len returns the number of cells, or -1 if the buffer is malformed.
func (b CellBuffer) Len() int {
	count := 0
	err := b.Walk(func(CellType, []uint64) error {
		count++
		return nil
	})
	if err != nil {
		return -1
	}
	return count
}
