package stlmesh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FileType selects the STL flavour.
type FileType int

const (
	ASCII FileType = iota
	Binary
)

func (t FileType) String() string {
	switch t {
	case ASCII:
		return "ascii"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("FileType(%d)", int(t))
}

// ParseFileType accepts "ascii" or "binary", in any case.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(s) {
	case "ascii":
		return ASCII, nil
	case "binary":
		return Binary, nil
	}
	return 0, fmt.Errorf("stlmesh: unknown file type %q", s)
}

const solidKeyword = "solid"

// DetectFileType classifies a stream from its first line: if the line
// contains "solid" anywhere it is ASCII, otherwise binary.
//
// For ASCII the returned reader continues right after the first line. For
// binary it replays the stream from its first byte, so the 80-byte header
// can be read again. Binary files whose header happens to contain "solid"
// are reported as ASCII.
func DetectFileType(r io.Reader) (FileType, io.Reader, error) {
	ft, _, rest, err := detect(r)
	return ft, rest, err
}

func detect(r io.Reader) (FileType, string, io.Reader, error) {
	br := bufio.NewReader(r)
	first, err := br.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, "", nil, &IOError{Op: "read", Err: err}
	}

	if bytes.Contains(first, []byte(solidKeyword)) {
		return ASCII, string(first), br, nil
	}
	return Binary, string(first), io.MultiReader(bytes.NewReader(first), br), nil
}
