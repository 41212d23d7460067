package stlmesh

import (
	"cmp"
	"fmt"
)

// Point is a mesh vertex. All coordinates are stored as float32, whatever
// numeric type they were written from.
type Point struct {
	X float32
	Y float32
	Z float32
}

// PointID identifies a distinct Point within one PointTable. Ids are handed
// out in first-seen order starting at zero.
type PointID int

// Triangle is an ordered triple of point ids. The order carries the face
// winding.
type Triangle [3]PointID

func NewPoint(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// ComparePoints orders points lexicographically by X, then Y, then Z.
// It returns -1, 0 or +1. NaN sorts before every number and compares equal
// to itself, so the order is total.
func ComparePoints(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}
