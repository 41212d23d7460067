package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/stlmesh"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

type Game struct {
	mesh    *stlmesh.Mesh
	normals []stlmesh.Normal
	camera  *Camera

	lastX, lastY int
	dragged      bool
}

func NewGame(m *stlmesh.Mesh) *Game {
	normals := make([]stlmesh.Normal, m.NumberOfCells())
	for i := range normals {
		normals[i] = m.TriangleNormal(i)
	}
	g := &Game{
		mesh:    m,
		normals: normals,
		camera:  NewCamera(m, screenWidth, screenHeight),
	}
	g.camera.AddAngle(-0.5, 0.6)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragged = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragged {
		x, y := ebiten.CursorPosition()
		dx := float32(x-g.lastX) / 200.0
		dy := float32(y-g.lastY) / 200.0
		g.camera.AddAngle(dy, dx)
		g.lastX, g.lastY = x, y
	} else {
		g.camera.AddAngle(0, 0.005)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragged = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	cx, cy := float32(screenWidth)/2, float32(screenHeight)/2
	for i := range g.mesh.Triangles {
		p := g.mesh.TrianglePoints(i)
		shade := uint8(60 + 195*g.camera.Facing(g.normals[i]))
		col := color.RGBA{R: shade, G: shade, B: shade, A: 255}

		var xs, ys [3]float32
		for k := range p {
			xs[k], ys[k] = g.camera.Project(p[k], cx, cy)
		}
		for k := range p {
			j := (k + 1) % 3
			drawLine(screen, xs[k], ys[k], xs[j], ys[j], col)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%d triangles, %d points  FPS: %0.2f",
		g.mesh.NumberOfCells(), g.mesh.NumberOfPoints(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func drawLine(screen *ebiten.Image, x0, y0, x1, y1 float32, col color.Color) {
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, col, false)
}
