package stlmesh

import "fmt"

// ComponentType tags the element type of a PointBuffer's data.
type ComponentType int

const (
	UnknownComponentType ComponentType = iota
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
	Float64
)

var componentNames = map[ComponentType]string{
	UnknownComponentType: "unknown",
	Uint8:                "uint8",
	Int8:                 "int8",
	Uint16:               "uint16",
	Int16:                "int16",
	Uint32:               "uint32",
	Int32:                "int32",
	Uint64:               "uint64",
	Int64:                "int64",
	Float32:              "float32",
	Float64:              "float64",
}

func (c ComponentType) String() string {
	if name, ok := componentNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ComponentType(%d)", int(c))
}

// PointBuffer is a flat run of point coordinates. Data must be a slice
// whose element type matches Component ([]float64 for Float64 and so on),
// holding Dimension values per point.
type PointBuffer struct {
	Component ComponentType
	Dimension int
	Data      any
}

type number interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 |
		uint64 | int64 | float32 | float64
}

// NewPointBuffer builds a three dimensional buffer, inferring the
// component tag from T.
func NewPointBuffer[T number](data []T) PointBuffer {
	return PointBuffer{
		Component: componentOf[T](),
		Dimension: 3,
		Data:      data,
	}
}

func componentOf[T number]() ComponentType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case uint16:
		return Uint16
	case int16:
		return Int16
	case uint32:
		return Uint32
	case int32:
		return Int32
	case uint64:
		return Uint64
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return UnknownComponentType
}

type narrowFunc func(data any) ([]Point, error)

var narrowers = map[ComponentType]narrowFunc{
	Uint8:   narrow[uint8],
	Int8:    narrow[int8],
	Uint16:  narrow[uint16],
	Int16:   narrow[int16],
	Uint32:  narrow[uint32],
	Int32:   narrow[int32],
	Uint64:  narrow[uint64],
	Int64:   narrow[int64],
	Float32: narrow[float32],
	Float64: narrow[float64],
}

// narrow converts three dimensional coordinates of type T into Points.
func narrow[T number](data any) ([]Point, error) {
	src, ok := data.([]T)
	if !ok {
		return nil, fmt.Errorf("%w: data is %T, want %T", ErrUnsupportedElementType, data, src)
	}
	if len(src)%3 != 0 {
		return nil, fmt.Errorf("%w: %d values is not a whole number of points", ErrInvalidPointBuffer, len(src))
	}

	points := make([]Point, len(src)/3)
	for i := range points {
		points[i] = Point{
			X: float32(src[3*i]),
			Y: float32(src[3*i+1]),
			Z: float32(src[3*i+2]),
		}
	}
	return points, nil
}

// Points narrows the buffer to float32 Points. It fails with
// ErrUnsupportedDimension unless Dimension is 3 and with
// ErrUnsupportedElementType for unknown tags.
func (b PointBuffer) Points() ([]Point, error) {
	if b.Dimension != 3 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDimension, b.Dimension)
	}
	fn, ok := narrowers[b.Component]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedElementType, b.Component)
	}
	return fn(b.Data)
}
