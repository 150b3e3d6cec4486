package engine

import (
	"errors"
	"fmt"
)

// Shape identifies one of the seven tetrominoes.
type Shape byte

const (
	ShapeI Shape = 'I'
	ShapeO Shape = 'O'
	ShapeZ Shape = 'Z'
	ShapeS Shape = 'S'
	ShapeJ Shape = 'J'
	ShapeL Shape = 'L'
	ShapeT Shape = 'T'
)

// Shapes lists every shape in a stable order.
var Shapes = []Shape{ShapeI, ShapeO, ShapeZ, ShapeS, ShapeJ, ShapeL, ShapeT}

// ErrUnknownShape is returned by ParseShape for tags outside {I,O,Z,S,J,L,T}.
var ErrUnknownShape = errors.New("unknown shape")

type offset struct {
	col, row int
}

type shapeDef struct {
	size  int
	cells [4]offset
}

// Occupied (column, row) offsets inside each shape's box, row 0 on top.
var shapeDefs = map[Shape]shapeDef{
	ShapeI: {size: 4, cells: [4]offset{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
	ShapeO: {size: 2, cells: [4]offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	ShapeZ: {size: 3, cells: [4]offset{{0, 1}, {1, 1}, {1, 2}, {2, 2}}},
	ShapeS: {size: 3, cells: [4]offset{{1, 1}, {2, 1}, {0, 2}, {1, 2}}},
	ShapeJ: {size: 3, cells: [4]offset{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeL: {size: 3, cells: [4]offset{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeT: {size: 3, cells: [4]offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
}

// ParseShape converts a one-letter tag into a Shape.
func ParseShape(tag string) (Shape, error) {
	if len(tag) == 1 {
		s := Shape(tag[0])
		if s.Valid() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, tag)
}

// ParseShapes converts a string of tags such as "IOZ" into shapes.
func ParseShapes(tags string) ([]Shape, error) {
	shapes := make([]Shape, 0, len(tags))
	for i := 0; i < len(tags); i++ {
		s, err := ParseShape(tags[i : i+1])
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	_, ok := shapeDefs[s]
	return ok
}

// Size returns the side length of the shape's box.
func (s Shape) Size() int {
	return s.def().size
}

func (s Shape) String() string {
	return string(rune(s))
}

func (s Shape) def() shapeDef {
	def, ok := shapeDefs[s]
	if !ok {
		panic(fmt.Sprintf("unknown shape %q", rune(s)))
	}
	return def
}
