package stlmesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Normal is a facet normal. It is always computed from the vertices, never
// taken from a file.
type Normal struct {
	X float32
	Y float32
	Z float32
}

func (p Point) vec() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// ComputeNormal returns (p2-p1) x (p0-p1). The result is not normalized:
// its length is twice the triangle's area, and degenerate triangles give a
// zero vector.
func ComputeNormal(p0, p1, p2 Point) Normal {
	v12 := p2.vec().Sub(p1.vec())
	v10 := p0.vec().Sub(p1.vec())
	n := v12.Cross(v10)
	return Normal{X: n[0], Y: n[1], Z: n[2]}
}

func (n Normal) Len() float32 {
	return math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
}

// Unit returns n scaled to length one, or the zero vector when n has no
// length.
func (n Normal) Unit() Normal {
	l := n.Len()
	if l == 0 {
		return Normal{}
	}
	return Normal{X: n.X / l, Y: n.Y / l, Z: n.Z / l}
}

func (n Normal) String() string {
	return fmt.Sprintf("(%g, %g, %g)", n.X, n.Y, n.Z)
}
