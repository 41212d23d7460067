// Command stlview shows an STL file as a rotating wireframe. Drag with the
// left mouse button to turn it.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/stlmesh"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s FILE.stl", filepath.Base(os.Args[0]))
	}

	log.Println("Loading mesh...")
	m, err := stlmesh.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Error loading %s: %v", os.Args[1], err)
	}
	log.Printf("Points: %d", m.NumberOfPoints())
	log.Printf("Triangles: %d", m.NumberOfCells())

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("stlview - " + filepath.Base(os.Args[1]))
	if err := ebiten.RunGame(NewGame(m)); err != nil {
		log.Fatal(err)
	}
}
