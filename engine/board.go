package engine

import "fmt"

// Grid is the read-only view of a board that pieces collide against.
type Grid interface {
	Height() int
	Width() int
	IsInside(row, col int) bool
	IsOccupied(row, col int) bool
}

// Dims are the fixed dimensions of a board.
type Dims struct {
	Height int
	Width  int
}

// Board holds the locked tiles, the score and the game-over flag.
// Row 0 is the floor. A falling piece is never written to the board until
// it locks.
type Board struct {
	height   int
	width    int
	cells    Matrix
	score    int
	gameOver bool
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(d Dims) *Board {
	if d.Height <= 0 || d.Width <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", d.Height, d.Width))
	}
	return &Board{
		height: d.Height,
		width:  d.Width,
		cells:  NewMatrix(d.Height, d.Width),
	}
}

// LoadBoard builds a board from rows listed top first, the way a board is
// drawn. Every occupied value must be at least 2.
func LoadBoard(rows [][]Tile) *Board {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("cannot load an empty board")
	}
	b := NewBoard(Dims{Height: len(rows), Width: len(rows[0])})
	for i, row := range rows {
		if len(row) != b.width {
			panic(fmt.Sprintf("row %d has %d cells, want %d", i, len(row), b.width))
		}
		for col, t := range row {
			if t != Empty && t < 2 {
				panic(fmt.Sprintf("invalid tile value %d", t))
			}
			b.cells[b.height-1-i][col] = t
		}
	}
	return b
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Dims returns the board dimensions.
func (b *Board) Dims() Dims { return Dims{Height: b.height, Width: b.width} }

// Score returns the accumulated score of the current round.
func (b *Board) Score() int { return b.score }

// GameOver reports whether a piece has locked above the ceiling.
func (b *Board) GameOver() bool { return b.gameOver }

// IsInside reports whether (row, col) lies on the board.
func (b *Board) IsInside(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// IsOccupied reports whether (row, col) holds a locked tile. Cells outside
// the board are never occupied, so pieces may hang above the ceiling.
func (b *Board) IsOccupied(row, col int) bool {
	if !b.IsInside(row, col) {
		return false
	}
	return b.cells[row][col].Occupied()
}

// At returns the tile at (row, col), or Empty outside the board.
func (b *Board) At(row, col int) Tile {
	if !b.IsInside(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

// Rows returns a copy of the locked tiles, row 0 being the floor.
func (b *Board) Rows() Matrix {
	return b.cells.Clone()
}

// Count returns the number of locked tiles.
func (b *Board) Count() int {
	return b.cells.Count()
}

// MaxTile returns the highest locked value, or Empty on an empty board.
func (b *Board) MaxTile() Tile {
	best := Empty
	for _, row := range b.cells {
		for _, t := range row {
			best = max(best, t)
		}
	}
	return best
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = b.cells.Clone()
	return &c
}

// UpdateGrid locks a cropped piece matrix whose bottom-left cell sits at
// anchor. Cells that land inside the board are copied in; any cell above
// the ceiling sets the game-over flag, without discarding the rest.
// It returns the game-over flag.
func (b *Board) UpdateGrid(tiles Matrix, anchor Point) bool {
	rows := tiles.Rows()
	for row := range rows {
		for col, t := range tiles[row] {
			if !t.Occupied() {
				continue
			}
			x := anchor.X + col
			y := anchor.Y + (rows - 1) - row
			if b.IsInside(y, x) {
				b.cells[y][x] = t
			} else {
				b.gameOver = true
			}
		}
	}
	return b.gameOver
}

// Reset clears the board for a new round and returns the previous score.
func (b *Board) Reset() int {
	prev := b.score
	b.cells = NewMatrix(b.height, b.width)
	b.score = 0
	b.gameOver = false
	return prev
}

func (b *Board) String() string {
	rows := make(Matrix, b.height)
	for i := range rows {
		rows[i] = b.cells[b.height-1-i]
	}
	return rows.String()
}
