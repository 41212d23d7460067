package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/smasonuk/stlmesh"
)

// Camera turns the mesh around its centre and projects it orthographically
// onto the screen.
type Camera struct {
	angleX, angleY float32
	rot            mgl32.Mat4

	centre mgl32.Vec3
	scale  float32
}

// NewCamera frames the mesh so that its bounding box fits a screen of the
// given size.
func NewCamera(m *stlmesh.Mesh, width, height int) *Camera {
	bmin, bmax := m.Bounds()
	lo := mgl32.Vec3{bmin.X, bmin.Y, bmin.Z}
	hi := mgl32.Vec3{bmax.X, bmax.Y, bmax.Z}

	c := &Camera{
		centre: lo.Add(hi).Mul(0.5),
		rot:    mgl32.Ident4(),
		scale:  1,
	}
	if radius := hi.Sub(lo).Len() / 2; radius > 0 {
		c.scale = 0.45 * float32(min(width, height)) / radius
	}
	return c
}

func (c *Camera) AddAngle(x, y float32) {
	c.angleX += x
	c.angleY += y
	c.rot = mgl32.HomogRotate3DX(c.angleX).Mul4(mgl32.HomogRotate3DY(c.angleY))
}

// Project maps a mesh point to screen coordinates, with the origin at the
// screen centre (cx, cy).
func (c *Camera) Project(p stlmesh.Point, cx, cy float32) (float32, float32) {
	v := mgl32.Vec3{p.X, p.Y, p.Z}.Sub(c.centre)
	t := c.rot.Mul4x1(v.Vec4(1))
	return cx + t.X()*c.scale, cy - t.Y()*c.scale
}

// Facing returns how much a facet normal points at the viewer, from 0 (edge
// on or away) to 1.
func (c *Camera) Facing(n stlmesh.Normal) float32 {
	u := n.Unit()
	t := c.rot.Mul4x1(mgl32.Vec4{u.X, u.Y, u.Z, 0})
	return mgl32.Clamp(t.Z(), 0, 1)
}
