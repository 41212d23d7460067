package stlmesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineLength = 1 << 20

var errMissingCoordinate = errors.New("expected three coordinates")

// asciiReader carries the cursor state of one ASCII parse: the scanner, the
// line waiting to be matched and the number of the last line read.
type asciiReader struct {
	sc      *bufio.Scanner
	line    string
	pending bool
	lineNo  int
}

// newASCIIReader continues a stream whose first firstLines lines were
// already consumed.
func newASCIIReader(r io.Reader, firstLines int) *asciiReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &asciiReader{sc: sc, lineNo: firstLines}
}

// next returns the current line without consuming it. Blank lines are
// skipped.
func (r *asciiReader) next() (string, error) {
	if r.pending {
		return r.line, nil
	}
	for r.sc.Scan() {
		r.lineNo++
		if strings.TrimSpace(r.sc.Text()) == "" {
			continue
		}
		r.line = r.sc.Text()
		r.pending = true
		return r.line, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", &IOError{Op: "read", Err: err}
	}
	return "", io.ErrUnexpectedEOF
}

func (r *asciiReader) consume() {
	r.pending = false
	r.line = ""
}

func (r *asciiReader) errorf(expected string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{Line: r.lineNo + 1, Expected: expected, Err: err}
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &ParseError{Line: r.lineNo, Text: r.line, Expected: expected, Err: err}
}

// check reports whether the next line contains keyword, consuming it only
// if it does.
func (r *asciiReader) check(keyword string) (bool, error) {
	line, err := r.next()
	if err != nil {
		return false, r.errorf(keyword, err)
	}
	if !strings.Contains(line, keyword) {
		return false, nil
	}
	r.consume()
	return true, nil
}

// expect consumes the next line, failing unless it contains keyword.
func (r *asciiReader) expect(keyword string) error {
	line, err := r.next()
	if err != nil {
		return r.errorf(keyword, err)
	}
	if !strings.Contains(line, keyword) {
		return r.errorf(keyword, nil)
	}
	r.consume()
	return nil
}

// vertex consumes a "vertex x y z" line. Anything after the third
// coordinate is ignored.
func (r *asciiReader) vertex() (Point, error) {
	line, err := r.next()
	if err != nil {
		return Point{}, r.errorf("vertex", err)
	}
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.Contains(fields[0], "vertex") {
		return Point{}, r.errorf("vertex", nil)
	}
	if len(fields) < 4 {
		return Point{}, r.errorf("", errMissingCoordinate)
	}

	var c [3]float32
	for i := range c {
		v, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return Point{}, r.errorf("", err)
		}
		c[i] = float32(v)
	}
	r.consume()
	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

type asciiState int

const (
	expectFacetOrEnd asciiState = iota
	insideFacetHeader
	insideVertexLoop
)

// readASCII parses facets until "endsolid". The "solid" line must already
// have been consumed. Facet normals are checked for their keyword only.
func readASCII(r *asciiReader, b *meshBuilder) error {
	state := expectFacetOrEnd
	for {
		switch state {
		case expectFacetOrEnd:
			done, err := r.check("endsolid")
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			if err := r.expect("facet normal"); err != nil {
				return err
			}
			state = insideFacetHeader

		case insideFacetHeader:
			if err := r.expect("outer loop"); err != nil {
				return err
			}
			state = insideVertexLoop

		case insideVertexLoop:
			var p [3]Point
			for i := range p {
				v, err := r.vertex()
				if err != nil {
					return err
				}
				p[i] = v
			}
			if err := r.expect("endloop"); err != nil {
				return err
			}
			if err := r.expect("endfacet"); err != nil {
				return err
			}
			b.addTriangle(p[0], p[1], p[2])
			state = expectFacetOrEnd
		}
	}
}

// solidName returns what follows "solid" on the first line.
func solidName(first string) string {
	_, name, found := strings.Cut(first, solidKeyword)
	if !found {
		return ""
	}
	return strings.TrimSpace(name)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func writeASCII(w io.Writer, facets []facet) error {
	bw := bufio.NewWriter(w)

	// bufio.Writer keeps the first error; Flush reports it.
	fmt.Fprintln(bw, "solid ascii")
	for i := range facets {
		f := &facets[i]
		fmt.Fprintf(bw, "  facet normal %s %s %s\n",
			formatFloat(f.normal.X), formatFloat(f.normal.Y), formatFloat(f.normal.Z))
		fmt.Fprintln(bw, "    outer loop")
		for _, p := range f.vertex {
			fmt.Fprintf(bw, "      vertex %s %s %s\n",
				formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintln(bw, "endsolid")

	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
