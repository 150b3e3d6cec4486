package engine

import (
	"errors"
	"fmt"
)

// ErrNoFixpoint is returned when stabilization fails to settle within its
// iteration bound. It indicates a bug, not a reachable game state.
var ErrNoFixpoint = errors.New("stabilization did not reach a fixpoint")

// Pass summarizes one run of Stabilize.
type Pass struct {
	Iterations     int
	Merged         []Tile
	RowsCleared    int
	OrphansRemoved int
	MergeScore     int
	ClearScore     int
	OrphanScore    int
}

// Score returns the total score gained during the pass.
func (p Pass) Score() int {
	return p.MergeScore + p.ClearScore + p.OrphanScore
}

// Merge combines vertically adjacent equal tiles in every column, scanning
// each column from the floor up. The lower tile doubles, the upper one is
// vacated and everything above it drops by one row. A doubled tile is not
// merged again within the same call. Merge returns the score gained: the
// sum of the doubled values.
func (b *Board) Merge() int {
	return b.merge(nil)
}

func (b *Board) merge(produced func(Tile)) int {
	delta := 0
	for col := range b.width {
		for row := 0; row < b.height-1; row++ {
			lower, upper := b.cells[row][col], b.cells[row+1][col]
			if !lower.Occupied() || lower != upper {
				continue
			}
			merged := lower.Double()
			b.cells[row][col] = merged
			b.collapse(row+1, col)
			delta += int(merged)
			if produced != nil {
				produced(merged)
			}
		}
	}
	b.score += delta
	return delta
}

// collapse vacates (row, col) and drops every cell above it by one row.
func (b *Board) collapse(row, col int) {
	for r := row; r < b.height-1; r++ {
		b.cells[r][col] = b.cells[r+1][col]
	}
	b.cells[b.height-1][col] = Empty
}

// ClearFullRows removes every fully occupied row, drops the rows above into
// the gaps and refills the top with empty rows. It returns the sum of the
// removed tiles.
func (b *Board) ClearFullRows() int {
	_, delta := b.clearFullRows()
	return delta
}

func (b *Board) clearFullRows() (cleared, delta int) {
	kept := make(Matrix, 0, b.height)
	for _, row := range b.cells {
		if !full(row) {
			kept = append(kept, row)
			continue
		}
		cleared++
		for _, t := range row {
			delta += int(t)
		}
	}
	if cleared == 0 {
		return 0, 0
	}
	for len(kept) < b.height {
		kept = append(kept, make([]Tile, b.width))
	}
	b.cells = kept
	b.score += delta
	return cleared, delta
}

func full(row []Tile) bool {
	for _, t := range row {
		if !t.Occupied() {
			return false
		}
	}
	return true
}

var neighbours = [4]Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// RemoveOrphans removes every tile with no 4-connected path of tiles down
// to row 0 and returns the sum of the removed values.
func (b *Board) RemoveOrphans() int {
	_, delta := b.removeOrphans()
	return delta
}

func (b *Board) removeOrphans() (removed, delta int) {
	supported := make([][]bool, b.height)
	for i := range supported {
		supported[i] = make([]bool, b.width)
	}

	stack := make([]Point, 0, b.width)
	for col := range b.width {
		if b.cells[0][col].Occupied() {
			supported[0][col] = true
			stack = append(stack, Point{X: col})
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbours {
			n := p.Translate(d.X, d.Y)
			if b.IsOccupied(n.Y, n.X) && !supported[n.Y][n.X] {
				supported[n.Y][n.X] = true
				stack = append(stack, n)
			}
		}
	}

	for row := range b.height {
		for col := range b.width {
			t := b.cells[row][col]
			if t.Occupied() && !supported[row][col] {
				b.cells[row][col] = Empty
				removed++
				delta += int(t)
			}
		}
	}
	b.score += delta
	return removed, delta
}

// Stabilize runs merge, clear-rows and remove-orphans, in that order, until
// a full iteration changes nothing. Every productive iteration removes at
// least one tile, so the loop is bounded by Height*Width+1 iterations.
func (b *Board) Stabilize() (Pass, error) {
	limit := b.height*b.width + 1
	var pass Pass
	for pass.Iterations < limit {
		pass.Iterations++

		merged := b.merge(func(t Tile) {
			pass.Merged = append(pass.Merged, t)
		})
		cleared, clearScore := b.clearFullRows()
		removed, orphanScore := b.removeOrphans()

		pass.MergeScore += merged
		pass.RowsCleared += cleared
		pass.ClearScore += clearScore
		pass.OrphansRemoved += removed
		pass.OrphanScore += orphanScore

		if merged == 0 && cleared == 0 && removed == 0 {
			return pass, nil
		}
	}
	return pass, fmt.Errorf("%w after %d iterations", ErrNoFixpoint, pass.Iterations)
}
