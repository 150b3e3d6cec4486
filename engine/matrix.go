package engine

import "strings"

// Matrix is a row-major grid of tiles. For piece matrices row 0 is the top
// row; for the board row 0 is the floor.
type Matrix [][]Tile

// NewMatrix allocates an empty rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	if rows < 0 || cols < 0 {
		panic("matrix dimensions must not be negative")
	}
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]Tile, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = append([]Tile(nil), row...)
	}
	return c
}

// Count returns the number of occupied cells.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, t := range row {
			if t.Occupied() {
				n++
			}
		}
	}
	return n
}

// Equal reports whether m and other have the same shape and tiles.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns a new square matrix rotated 90 degrees clockwise.
// m is left untouched.
func (m Matrix) RotateClockwise() Matrix {
	n := m.square()
	rotated := NewMatrix(n, n)
	for i := range n {
		for j := range n {
			rotated[j][n-1-i] = m[i][j]
		}
	}
	return rotated
}

// RotateCounterClockwise returns a new square matrix rotated 90 degrees
// counter-clockwise. m is left untouched.
func (m Matrix) RotateCounterClockwise() Matrix {
	n := m.square()
	rotated := NewMatrix(n, n)
	for i := range n {
		for j := range n {
			rotated[n-1-j][i] = m[i][j]
		}
	}
	return rotated
}

func (m Matrix) square() int {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			panic("rotation requires a square matrix")
		}
	}
	return n
}

// bounds returns the smallest rectangle holding every occupied cell.
// ok is false when the matrix is empty.
func (m Matrix) bounds() (minRow, maxRow, minCol, maxCol int, ok bool) {
	minRow, minCol = len(m), m.Cols()
	maxRow, maxCol = -1, -1
	for i, row := range m {
		for j, t := range row {
			if !t.Occupied() {
				continue
			}
			minRow = min(minRow, i)
			maxRow = max(maxRow, i)
			minCol = min(minCol, j)
			maxCol = max(maxCol, j)
		}
	}
	return minRow, maxRow, minCol, maxCol, maxRow >= 0
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, t := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}
