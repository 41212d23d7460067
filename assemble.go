package stlmesh

import (
	"fmt"
	"io"
)

// Decode reads an ASCII or binary STL stream, choosing the flavour with
// DetectFileType. Shared vertices are merged by exact equality.
func Decode(r io.Reader) (*Mesh, FileType, error) {
	ft, first, rest, err := detect(r)
	if err != nil {
		return nil, 0, err
	}
	Logger().Debug("stlmesh: detected file type", "type", ft)

	var m *Mesh
	switch ft {
	case ASCII:
		m, err = decodeASCIIBody(rest, first)
	default:
		m, err = DecodeBinary(rest)
	}
	if err != nil {
		return nil, ft, err
	}
	return m, ft, nil
}

// DecodeASCII reads an ASCII STL stream. The first line must contain
// "solid".
func DecodeASCII(r io.Reader) (*Mesh, error) {
	ft, first, rest, err := detect(r)
	if err != nil {
		return nil, err
	}
	if ft != ASCII {
		if len(first) > headerSize {
			first = first[:headerSize]
		}
		return nil, &ParseError{Line: 1, Expected: solidKeyword, Text: first}
	}
	return decodeASCIIBody(rest, first)
}

func decodeASCIIBody(rest io.Reader, first string) (*Mesh, error) {
	b := newMeshBuilder()
	if err := readASCII(newASCIIReader(rest, 1), b); err != nil {
		return nil, err
	}
	m := b.mesh()
	m.Name = solidName(first)
	Logger().Debug("stlmesh: read ascii mesh", "name", m.Name,
		"points", m.NumberOfPoints(), "triangles", m.NumberOfCells())
	return m, nil
}

// DecodeBinary reads a binary STL stream from its first header byte.
func DecodeBinary(r io.Reader) (*Mesh, error) {
	b := newMeshBuilder()
	header, err := readBinary(r, b)
	if err != nil {
		return nil, err
	}
	m := b.mesh()
	m.Header = header
	Logger().Debug("stlmesh: read binary mesh",
		"points", m.NumberOfPoints(), "triangles", m.NumberOfCells())
	return m, nil
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	header string
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{header: defaultHeader}
}

// WithHeader sets the text of a binary file's 80-byte header. Longer text
// is cut. ASCII output ignores it.
func WithHeader(text string) EncodeOption {
	return func(o *encodeOptions) {
		o.header = text
	}
}

// Encode writes the triangle cells of cells as STL of type ft.
//
// Triangle cells and three-vertex polygon cells become facets, every other
// cell is skipped. Normals are recomputed from the vertices. Points are
// narrowed to float32 and must be three dimensional. All validation happens
// before the first byte is written, so a failed Encode leaves w untouched.
func Encode(w io.Writer, ft FileType, pts PointBuffer, cells CellBuffer, opts ...EncodeOption) error {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	facets, _, err := collectFacets(pts, cells)
	if err != nil {
		return err
	}
	Logger().Debug("stlmesh: writing mesh", "type", ft, "triangles", len(facets))

	switch ft {
	case ASCII:
		return writeASCII(w, facets)
	case Binary:
		return writeBinary(w, o.header, facets)
	}
	return fmt.Errorf("stlmesh: unknown file type %v", ft)
}

// Encode writes m as STL of type ft.
func (m *Mesh) Encode(w io.Writer, ft FileType, opts ...EncodeOption) error {
	return Encode(w, ft, m.PointBuffer(), m.CellBuffer(), opts...)
}
