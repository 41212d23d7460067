package stlmesh

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestMeshIOWriteRead(t *testing.T) {
	for _, ft := range []FileType{ASCII, Binary} {
		t.Run(ft.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cube.stl")
			cube := unitCube()

			w := NewMeshIO(path)
			w.SetFileType(ft)
			if !w.CanWriteFile() {
				t.Fatalf("CanWriteFile(%s) = false", path)
			}
			if err := w.WriteMesh(cube.PointBuffer(), cube.CellBuffer()); err != nil {
				t.Fatalf("WriteMesh() error = %v", err)
			}
			if w.GetNumberOfPoints() != 8 || w.GetNumberOfCells() != 12 {
				t.Errorf("after write: %d points, %d cells", w.GetNumberOfPoints(), w.GetNumberOfCells())
			}

			r := NewMeshIO(path)
			r.SetFileType(ft ^ 1) // ReadMesh detects the type itself
			if !r.CanReadFile() {
				t.Fatalf("CanReadFile(%s) = false", path)
			}
			m, err := r.ReadMesh()
			if err != nil {
				t.Fatalf("ReadMesh() error = %v", err)
			}
			if r.GetFileType() != ft {
				t.Errorf("GetFileType() = %v, want %v", r.GetFileType(), ft)
			}
			if r.GetNumberOfPoints() != 8 || r.GetNumberOfCells() != 12 {
				t.Errorf("after read: %d points, %d cells", r.GetNumberOfPoints(), r.GetNumberOfCells())
			}
			sameShape(t, m, cube)
		})
	}
}

func TestMeshIOBinaryHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.STL")
	mio := NewMeshIO(path)
	mio.SetFileType(Binary)
	mio.SetHeader("made by a test")
	cube := unitCube()
	if err := mio.WriteMesh(cube.PointBuffer(), cube.CellBuffer()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 84+12*50 {
		t.Fatalf("file is %d bytes, want %d", len(data), 84+12*50)
	}
	m, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(m.Header[80-len("made by a test"):]); got != "made by a test" {
		t.Errorf("header ends with %q", got)
	}
}

func TestFileHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	if err := WriteFile(path, ASCII, unitCube()); err != nil {
		t.Fatal(err)
	}
	m, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	sameShape(t, m, unitCube())
}

func TestHasSTLExtension(t *testing.T) {
	testCases := []struct {
		name string
		want bool
	}{
		{"part.stl", true},
		{"part.STL", true},
		{"dir/part.stl", true},
		{"part.Stl", false},
		{"part.obj", false},
		{"stl", false},
		{"part.stl.gz", false},
	}

	for _, tc := range testCases {
		if got := HasSTLExtension(tc.name); got != tc.want {
			t.Errorf("HasSTLExtension(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanReadFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.stl")
	if err := os.WriteFile(existing, []byte("solid\nendsolid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wrongExt := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(wrongExt, []byte("solid\nendsolid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dirWithExt := filepath.Join(dir, "d.stl")
	if err := os.Mkdir(dirWithExt, 0o755); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		path string
		want bool
	}{
		{existing, true},
		{wrongExt, false},
		{dirWithExt, false},
		{filepath.Join(dir, "missing.stl"), false},
	}

	for _, tc := range testCases {
		if got := NewMeshIO(tc.path).CanReadFile(); got != tc.want {
			t.Errorf("CanReadFile(%s) = %v, want %v", tc.path, got, tc.want)
		}
	}

	if !NewMeshIO(filepath.Join(dir, "missing.stl")).CanWriteFile() {
		t.Error("CanWriteFile() rejected a new .stl file")
	}
}

func TestReadMeshMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.stl"))

	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "open" {
		t.Fatalf("ReadFile() error = %v, want open IOError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadMeshParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.stl")
	if err := os.WriteFile(path, []byte("solid bad\n  facet 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Errorf("ReadFile() error = %v, want ParseError at line 2", err)
	}
}

func TestWriteMeshValidatesBeforeCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.stl")
	mio := NewMeshIO(path)
	pts := PointBuffer{Component: Float32, Dimension: 2, Data: []float32{0, 0, 1, 0, 0, 1}}

	err := mio.WriteMesh(pts, CellBuffer{uint64(TriangleCell), 3, 0, 1, 2})
	if !errors.Is(err, ErrUnsupportedDimension) {
		t.Errorf("WriteMesh() error = %v, want ErrUnsupportedDimension", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WriteMesh() created %s: %v", path, err)
	}
}

func TestWriteMeshCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "cube.stl")
	err := WriteFile(path, Binary, unitCube())

	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "create" || ioErr.Path != path {
		t.Errorf("WriteFile() error = %v, want create IOError for %s", err, path)
	}
}
