package stlmesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize = 80
	recordSize = 50

	// maxPrealloc bounds how many triangles a declared count may reserve up
	// front. Larger files still load; they grow as they are read.
	maxPrealloc = 1 << 20

	defaultHeader = "binary STL generated by stlmesh"
)

// short name, for convenience
var le = binary.LittleEndian

// readBinary reads a binary STL stream into b and returns its header.
//
// Every facet's vertices go through the point table, the same as for ASCII
// files. Stored normals and attribute byte counts are skipped.
func readBinary(r io.Reader, b *meshBuilder) ([headerSize]byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return header, &IOError{Op: "read header", Err: err}
	}

	var count [4]byte
	if _, err := io.ReadFull(r, count[:]); err != nil {
		return header, &IOError{Op: "read triangle count", Err: err}
	}
	num := le.Uint32(count[:])
	b.reserve(int(min(num, maxPrealloc)))

	var buf [recordSize]byte
	for i := uint32(0); i < num; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return header, &IOError{Op: fmt.Sprintf("read triangle %d of %d", i, num), Err: err}
		}
		// skip the stored normal at offset 0
		b.addTriangle(
			getPoint(buf[12:]),
			getPoint(buf[24:]),
			getPoint(buf[36:]),
		)
	}

	return header, nil
}

func getFloat(b []byte) float32 {
	return math.Float32frombits(le.Uint32(b))
}

func getPoint(b []byte) Point {
	return Point{X: getFloat(b[0:]), Y: getFloat(b[4:]), Z: getFloat(b[8:])}
}

func putFloat(b []byte, v float32) {
	le.PutUint32(b, math.Float32bits(v))
}

// formatBinaryHeader right-aligns text in 80 bytes padded with spaces,
// cutting it if it is too long.
func formatBinaryHeader(text string) []byte {
	if len(text) > headerSize {
		text = text[:headerSize]
	}
	return []byte(fmt.Sprintf("%*s", headerSize, text))
}

// writeBinary emits the header, the facet count and one 50-byte record per
// facet.
func writeBinary(w io.Writer, header string, facets []facet) error {
	bw := bufio.NewWriter(w)

	var start [headerSize + 4]byte
	copy(start[:headerSize], formatBinaryHeader(header))
	le.PutUint32(start[headerSize:], uint32(len(facets)))
	if _, err := bw.Write(start[:]); err != nil {
		return &IOError{Op: "write header", Err: err}
	}

	var buf [recordSize]byte
	for i := range facets {
		f := &facets[i]
		putFloat(buf[0:], f.normal.X)
		putFloat(buf[4:], f.normal.Y)
		putFloat(buf[8:], f.normal.Z)
		for v, p := range f.vertex {
			off := 12 + 12*v
			putFloat(buf[off:], p.X)
			putFloat(buf[off+4:], p.Y)
			putFloat(buf[off+8:], p.Z)
		}
		le.PutUint16(buf[48:], 0)
		if _, err := bw.Write(buf[:]); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}

	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
