package engine

import "strconv"

// Tile is a numbered cell. The zero value is an empty cell; every occupied
// cell holds a value of at least 2.
type Tile int

// Empty is the absence of a tile.
const Empty Tile = 0

// Occupied reports whether t holds a number.
func (t Tile) Occupied() bool {
	return t != Empty
}

// Double returns the tile produced by merging two copies of t.
func (t Tile) Double() Tile {
	return t * 2
}

func (t Tile) String() string {
	if t == Empty {
		return "."
	}
	return strconv.Itoa(int(t))
}

// Point is a board-space position. Y grows upward from row 0 (the floor).
type Point struct {
	X, Y int
}

// Translate returns p moved by dx columns and dy rows.
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
