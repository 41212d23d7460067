package stlmesh

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDimension is returned when points are not three
	// dimensional.
	ErrUnsupportedDimension = errors.New("stlmesh: unsupported point dimension")

	// ErrUnsupportedElementType is returned when a PointBuffer carries a
	// component tag the codec cannot narrow, or data that does not match
	// its tag.
	ErrUnsupportedElementType = errors.New("stlmesh: unsupported point component type")

	ErrInvalidPointBuffer = errors.New("stlmesh: invalid point buffer")
	ErrInvalidCell        = errors.New("stlmesh: invalid cell buffer")
)

// IOError reports a failure to open, read, write or close a stream.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("stlmesh: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("stlmesh: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports an ASCII line that does not follow the STL grammar.
// Line is 1-based.
type ParseError struct {
	Line     int
	Text     string
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("stlmesh: parsing error in line %d: ", e.Line)
	if e.Expected != "" {
		msg += fmt.Sprintf("missed %q, ", e.Expected)
	}
	msg += fmt.Sprintf("found: %q", e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
