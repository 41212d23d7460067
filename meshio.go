package stlmesh

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MeshIO reads and writes one STL file. It holds the file name, the file
// type and, after ReadMesh, the counts of what was read.
type MeshIO struct {
	fileName string
	fileType FileType
	header   string

	numberOfPoints int
	numberOfCells  int
}

func NewMeshIO(fileName string) *MeshIO {
	return &MeshIO{
		fileName: fileName,
		fileType: ASCII,
		header:   defaultHeader,
	}
}

func (m *MeshIO) SetFileName(fileName string) {
	m.fileName = fileName
}

func (m *MeshIO) GetFileName() string {
	return m.fileName
}

// SetFileType selects the flavour WriteMesh produces. ReadMesh overwrites it
// with the flavour it detects.
func (m *MeshIO) SetFileType(ft FileType) {
	m.fileType = ft
}

func (m *MeshIO) GetFileType() FileType {
	return m.fileType
}

// SetHeader sets the header text of binary files written by WriteMesh.
func (m *MeshIO) SetHeader(text string) {
	m.header = text
}

func (m *MeshIO) GetNumberOfPoints() int {
	return m.numberOfPoints
}

func (m *MeshIO) GetNumberOfCells() int {
	return m.numberOfCells
}

// HasSTLExtension reports whether fileName ends in .stl or .STL.
func HasSTLExtension(fileName string) bool {
	ext := filepath.Ext(fileName)
	return ext == ".stl" || ext == ".STL"
}

// CanReadFile reports whether the file exists and has an STL extension.
func (m *MeshIO) CanReadFile() bool {
	info, err := os.Stat(m.fileName)
	if err != nil || info.IsDir() {
		return false
	}
	return HasSTLExtension(m.fileName)
}

// CanWriteFile reports whether the file name has an STL extension.
func (m *MeshIO) CanWriteFile() bool {
	return HasSTLExtension(m.fileName)
}

// ReadMesh reads the whole file. The file is closed before ReadMesh returns.
func (m *MeshIO) ReadMesh() (*Mesh, error) {
	file, err := os.Open(m.fileName)
	if err != nil {
		return nil, &IOError{Op: "open", Path: m.fileName, Err: err}
	}
	defer file.Close()

	mesh, ft, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("error reading STL file %s: %w", m.fileName, err)
	}

	m.fileType = ft
	m.numberOfPoints = mesh.NumberOfPoints()
	m.numberOfCells = mesh.NumberOfCells()

	return mesh, nil
}

// WriteMesh writes the triangle cells of cells to the file in the
// configured file type. Points and cells are validated before the file is
// created.
func (m *MeshIO) WriteMesh(pts PointBuffer, cells CellBuffer) (err error) {
	facets, numberOfPoints, err := collectFacets(pts, cells)
	if err != nil {
		return err
	}

	file, err := os.Create(m.fileName)
	if err != nil {
		return &IOError{Op: "create", Path: m.fileName, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: m.fileName, Err: cerr}
		}
	}()

	switch m.fileType {
	case ASCII:
		err = writeASCII(file, facets)
	case Binary:
		err = writeBinary(file, m.header, facets)
	default:
		err = fmt.Errorf("stlmesh: unknown file type %v", m.fileType)
	}
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = m.fileName
		}
		return err
	}

	m.numberOfPoints = numberOfPoints
	m.numberOfCells = len(facets)
	Logger().Debug("stlmesh: wrote file", "path", m.fileName, "type", m.fileType, "triangles", len(facets))
	return nil
}

// ReadFile reads the STL file at path.
func ReadFile(path string) (*Mesh, error) {
	return NewMeshIO(path).ReadMesh()
}

// WriteFile writes m to path as STL of type ft.
func WriteFile(path string, ft FileType, m *Mesh) error {
	mio := NewMeshIO(path)
	mio.SetFileType(ft)
	return mio.WriteMesh(m.PointBuffer(), m.CellBuffer())
}
