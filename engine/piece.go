package engine

import "fmt"

// Direction is a one-cell translation of a piece.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Cell is an occupied piece cell in board coordinates.
type Cell struct {
	Point
	Tile Tile
}

// Piece is a falling tetromino: a square tile matrix (row 0 on top) and the
// board position of the matrix's bottom-left cell.
type Piece struct {
	shape  Shape
	tiles  Matrix
	anchor Point
}

// NewPiece builds a piece of the given shape. values are assigned to the
// shape's four cells in definition order.
func NewPiece(shape Shape, values [4]Tile, anchor Point) *Piece {
	def := shape.def()
	tiles := NewMatrix(def.size, def.size)
	for i, c := range def.cells {
		if values[i] < 2 {
			panic(fmt.Sprintf("invalid tile value %d", values[i]))
		}
		tiles[c.row][c.col] = values[i]
	}
	return &Piece{shape: shape, tiles: tiles, anchor: anchor}
}

// Shape returns the piece's shape tag.
func (p *Piece) Shape() Shape { return p.shape }

// Anchor returns the board position of the matrix's bottom-left cell.
func (p *Piece) Anchor() Point { return p.anchor }

// Tiles returns a copy of the piece's matrix.
func (p *Piece) Tiles() Matrix { return p.tiles.Clone() }

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	return &Piece{shape: p.shape, tiles: p.tiles.Clone(), anchor: p.anchor}
}

// CellPosition returns the board position of the matrix cell (row, col).
func (p *Piece) CellPosition(row, col int) Point {
	n := len(p.tiles)
	return Point{X: p.anchor.X + col, Y: p.anchor.Y + (n - 1) - row}
}

// Cells returns the occupied cells in board coordinates, including any that
// still hang above the ceiling.
func (p *Piece) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for row := range p.tiles {
		for col, t := range p.tiles[row] {
			if t.Occupied() {
				cells = append(cells, Cell{Point: p.CellPosition(row, col), Tile: t})
			}
		}
	}
	return cells
}

// CanMove reports whether the piece can move one cell in dir on g.
// Only the leading cell of each row (left, right) or column (down) is
// inspected.
func (p *Piece) CanMove(dir Direction, g Grid) bool {
	n := len(p.tiles)
	switch dir {
	case Left:
		for row := range n {
			for col := 0; col < n; col++ {
				if !p.tiles[row][col].Occupied() {
					continue
				}
				pos := p.CellPosition(row, col)
				if pos.X == 0 || g.IsOccupied(pos.Y, pos.X-1) {
					return false
				}
				break
			}
		}
	case Right:
		for row := range n {
			for col := n - 1; col >= 0; col-- {
				if !p.tiles[row][col].Occupied() {
					continue
				}
				pos := p.CellPosition(row, col)
				if pos.X == g.Width()-1 || g.IsOccupied(pos.Y, pos.X+1) {
					return false
				}
				break
			}
		}
	case Down:
		for col := range n {
			for row := n - 1; row >= 0; row-- {
				if !p.tiles[row][col].Occupied() {
					continue
				}
				pos := p.CellPosition(row, col)
				if pos.Y == 0 || g.IsOccupied(pos.Y-1, pos.X) {
					return false
				}
				break
			}
		}
	default:
		panic(fmt.Sprintf("unknown direction %d", int(dir)))
	}
	return true
}

// Move translates the piece one cell in dir when CanMove allows it.
// A false result for Down means the piece has landed.
func (p *Piece) Move(dir Direction, g Grid) bool {
	if !p.CanMove(dir, g) {
		return false
	}
	switch dir {
	case Left:
		p.anchor.X--
	case Right:
		p.anchor.X++
	case Down:
		p.anchor.Y--
	}
	return true
}

// RotateClockwise turns the piece 90 degrees clockwise in place. The piece
// is left unchanged and false returned when the rotated cells would leave
// the board or overlap a locked tile.
func (p *Piece) RotateClockwise(g Grid) bool {
	return p.rotate(p.tiles.RotateClockwise(), g)
}

// RotateCounterClockwise is the inverse of RotateClockwise.
func (p *Piece) RotateCounterClockwise(g Grid) bool {
	return p.rotate(p.tiles.RotateCounterClockwise(), g)
}

func (p *Piece) rotate(candidate Matrix, g Grid) bool {
	if !fits(candidate, p.anchor, g) {
		return false
	}
	p.tiles = candidate
	return true
}

// MinBoundedTiles returns a copy of the piece cropped to the bounding
// rectangle of its occupied cells, and the board position of the crop's
// bottom-left cell.
func (p *Piece) MinBoundedTiles() (Matrix, Point) {
	return minBounded(p.tiles, p.anchor)
}

func minBounded(tiles Matrix, anchor Point) (Matrix, Point) {
	minRow, maxRow, minCol, maxCol, ok := tiles.bounds()
	if !ok {
		return Matrix{}, anchor
	}
	crop := NewMatrix(maxRow-minRow+1, maxCol-minCol+1)
	for row := minRow; row <= maxRow; row++ {
		copy(crop[row-minRow], tiles[row][minCol:maxCol+1])
	}
	n := len(tiles)
	return crop, anchor.Translate(minCol, (n-1)-maxRow)
}

// fits reports whether every occupied cell of tiles, placed at anchor,
// lands on a free cell inside g.
func fits(tiles Matrix, anchor Point, g Grid) bool {
	crop, origin := minBounded(tiles, anchor)
	rows := crop.Rows()
	for row := range crop {
		for col, t := range crop[row] {
			if !t.Occupied() {
				continue
			}
			x := origin.X + col
			y := origin.Y + (rows - 1) - row
			if !g.IsInside(y, x) || g.IsOccupied(y, x) {
				return false
			}
		}
	}
	return true
}

// Ghost returns a copy of p resting where it would land if dropped straight
// down on g. Neither p nor g is modified.
func Ghost(p *Piece, g Grid) *Piece {
	ghost := p.Clone()
	for ghost.Move(Down, g) {
	}
	return ghost
}
