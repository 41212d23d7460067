package stlmesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// unitCube returns a closed cube with outward facing triangles.
func unitCube() *Mesh {
	return &Mesh{
		Points: []Point{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		Triangles: []Triangle{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // front
			{3, 7, 6}, {3, 6, 2}, // back
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
		},
	}
}

// binarySTL lays out a binary file by hand. Stored normals are set to a
// nonsense value so tests notice if they are ever used.
func binarySTL(header string, tris ...[3]Point) []byte {
	var h [80]byte
	copy(h[:], header)

	buf := &bytes.Buffer{}
	buf.Write(h[:])
	binary.Write(buf, binary.LittleEndian, uint32(len(tris)))
	for _, tri := range tris {
		binary.Write(buf, binary.LittleEndian, [3]float32{9, 9, 9})
		for _, p := range tri {
			binary.Write(buf, binary.LittleEndian, [3]float32{p.X, p.Y, p.Z})
		}
		binary.Write(buf, binary.LittleEndian, uint16(0xbeef))
	}
	return buf.Bytes()
}

// sameShape checks that got describes the same triangles as want, allowing
// point ids to be renumbered consistently.
func sameShape(t *testing.T, got, want *Mesh) {
	t.Helper()

	if got.NumberOfPoints() != want.NumberOfPoints() {
		t.Errorf("NumberOfPoints() = %d, want %d", got.NumberOfPoints(), want.NumberOfPoints())
	}
	if got.NumberOfCells() != want.NumberOfCells() {
		t.Fatalf("NumberOfCells() = %d, want %d", got.NumberOfCells(), want.NumberOfCells())
	}

	ids := make(map[PointID]PointID)
	used := make(map[PointID]bool)
	for i := range want.Triangles {
		gp, wp := got.TrianglePoints(i), want.TrianglePoints(i)
		for k := range wp {
			if !gp[k].Equals(wp[k]) {
				t.Errorf("triangle %d vertex %d = %v, want %v", i, k, gp[k], wp[k])
			}

			w, g := want.Triangles[i][k], got.Triangles[i][k]
			if prev, ok := ids[w]; ok {
				if prev != g {
					t.Errorf("point %d maps to both %d and %d", w, prev, g)
				}
				continue
			}
			if used[g] {
				t.Errorf("point %d is shared by two expected points", g)
			}
			ids[w] = g
			used[g] = true
		}
	}
}

func float32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}
