package engine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/tetris2048/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyRows(d engine.Dims) [][]engine.Tile {
	rows := make([][]engine.Tile, d.Height)
	for i := range rows {
		rows[i] = make([]engine.Tile, d.Width)
	}
	return rows
}

// put writes a tile into rows built for LoadBoard, addressing by board row.
func put(rows [][]engine.Tile, row, col int, t engine.Tile) {
	rows[len(rows)-1-row][col] = t
}

func TestMergeColumn(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{0, 0, 0},
		{0, 4, 0},
		{0, 2, 0},
		{0, 2, 0},
	})

	assert.Equal(t, 4, board.Merge())
	assert.Equal(t, engine.Tile(4), board.At(0, 1))
	assert.Equal(t, engine.Tile(4), board.At(1, 1))
	assert.Equal(t, engine.Empty, board.At(2, 1))
	assert.Equal(t, 4, board.Score())

	assert.Equal(t, 8, board.Merge())
	assert.Equal(t, engine.Tile(8), board.At(0, 1))
	assert.Equal(t, engine.Empty, board.At(1, 1))
	assert.Equal(t, 12, board.Score())

	assert.Equal(t, 0, board.Merge())
}

func TestMergeShiftsCellsAbove(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{32},
		{16},
		{2},
		{2},
		{8},
	})

	assert.Equal(t, 4, board.Merge())
	assert.Equal(t, "8 4 16 32 .", columnString(board, 0))
}

func TestMergeRunsOfEqualTiles(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{2},
		{2},
		{2},
		{2},
	})

	assert.Equal(t, 8, board.Merge())
	assert.Equal(t, engine.Tile(4), board.At(0, 0))
	assert.Equal(t, engine.Tile(4), board.At(1, 0))
	assert.Equal(t, 2, board.Count())
}

func TestMergeIgnoresHorizontalPairs(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{2, 2, 2},
	})
	assert.Equal(t, 0, board.Merge())
}

func TestClearFullRows(t *testing.T) {
	rows := emptyRows(standard)
	put(rows, 0, 0, 2)
	put(rows, 1, 0, 4)
	put(rows, 2, 0, 8)
	sum := 0
	for col := range standard.Width {
		v := engine.Tile(2)
		if col%3 == 0 {
			v = 4
		}
		put(rows, 3, col, v)
		sum += int(v)
	}
	put(rows, 4, 5, 32)
	put(rows, 19, 7, 64)
	board := engine.LoadBoard(rows)

	assert.Equal(t, sum, board.ClearFullRows())
	assert.Equal(t, sum, board.Score())

	assert.Equal(t, engine.Tile(2), board.At(0, 0))
	assert.Equal(t, engine.Tile(4), board.At(1, 0))
	assert.Equal(t, engine.Tile(8), board.At(2, 0))
	assert.Equal(t, engine.Tile(32), board.At(3, 5))
	assert.Equal(t, engine.Tile(64), board.At(18, 7))
	for col := range standard.Width {
		assert.False(t, board.IsOccupied(19, col))
	}
	assert.Equal(t, standard, board.Dims())
	assert.Equal(t, 5, board.Count())

	assert.Equal(t, 0, board.ClearFullRows())
}

func TestClearSeveralRows(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{0, 0, 16},
		{2, 2, 2},
		{0, 8, 0},
		{4, 4, 4},
	})

	assert.Equal(t, 18, board.ClearFullRows())
	assert.Equal(t, ". . .\n. . .\n. . 16\n. 8 .", board.String())
}

func TestRemoveOrphans(t *testing.T) {
	rows := emptyRows(standard)
	put(rows, 5, 3, 2)
	put(rows, 5, 4, 4)
	board := engine.LoadBoard(rows)

	assert.Equal(t, 6, board.RemoveOrphans())
	assert.Equal(t, 0, board.Count())
	assert.Equal(t, 6, board.Score())
}

func TestRemoveOrphansKeepsSupportedCluster(t *testing.T) {
	rows := emptyRows(standard)
	for row := range 5 {
		put(rows, row, 3, engine.Tile(2<<row))
	}
	put(rows, 5, 3, 2)
	put(rows, 5, 4, 4)
	board := engine.LoadBoard(rows)

	assert.Equal(t, 0, board.RemoveOrphans())
	assert.Equal(t, 7, board.Count())
}

func TestRemoveOrphansFollowsWindingPaths(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{0, 0, 0, 0, 0},
		{2, 4, 8, 0, 0},
		{0, 0, 2, 0, 16},
		{0, 0, 4, 8, 2},
		{0, 0, 0, 0, 4},
		{32, 0, 0, 0, 4},
	})

	// The upper-left run reaches the floor through columns 2 and 4.
	assert.Equal(t, 0, board.RemoveOrphans())

	board = engine.LoadBoard([][]engine.Tile{
		{2, 4, 8, 0, 0},
		{0, 0, 2, 0, 0},
		{0, 0, 4, 8, 0},
		{0, 0, 0, 0, 0},
		{32, 0, 0, 0, 4},
	})
	assert.Equal(t, 2+4+8+2+4+8, board.RemoveOrphans())
	assert.Equal(t, 2, board.Count())
}

func TestStabilizeCascade(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{0, 0, 0},
		{2, 0, 0},
		{8, 16, 32},
		{2, 4, 0},
	})

	pass, err := board.Stabilize()
	require.NoError(t, err)

	assert.Equal(t, 3, pass.Iterations)
	assert.Equal(t, 1, pass.RowsCleared)
	assert.Equal(t, 56, pass.ClearScore)
	assert.Equal(t, []engine.Tile{4}, pass.Merged)
	assert.Equal(t, 4, pass.MergeScore)
	assert.Equal(t, 0, pass.OrphansRemoved)
	assert.Equal(t, 60, pass.Score())
	assert.Equal(t, 60, board.Score())
	assert.Equal(t, ". . .\n. . .\n. . .\n4 4 .", board.String())
}

func TestStabilizeRemovesOrphansLeftByClear(t *testing.T) {
	board := engine.LoadBoard([][]engine.Tile{
		{0, 0, 8},
		{2, 4, 2},
		{0, 0, 0},
	})

	pass, err := board.Stabilize()
	require.NoError(t, err)

	assert.Equal(t, 1, pass.RowsCleared)
	assert.Equal(t, 8, pass.ClearScore)
	assert.Equal(t, 1, pass.OrphansRemoved)
	assert.Equal(t, 8, pass.OrphanScore)
	assert.Equal(t, 0, board.Count())
}

func TestStabilizeEmptyBoard(t *testing.T) {
	board := engine.NewBoard(standard)

	pass, err := board.Stabilize()
	require.NoError(t, err)
	assert.Equal(t, 1, pass.Iterations)
	assert.Equal(t, 0, pass.Score())
}

func TestStabilizeConverges(t *testing.T) {
	dims := []engine.Dims{
		standard,
		{Height: 4, Width: 4},
		{Height: 6, Width: 3},
		{Height: 10, Width: 1},
	}
	values := []engine.Tile{2, 2, 2, 4, 4, 8, 16}

	for _, d := range dims {
		for seed := range uint64(40) {
			rng := rand.New(rand.NewPCG(seed, uint64(d.Width)))
			rows := emptyRows(d)
			density := rng.Float64()
			for _, row := range rows {
				for col := range row {
					if rng.Float64() < density {
						row[col] = values[rng.IntN(len(values))]
					}
				}
			}
			board := engine.LoadBoard(rows)
			before := board.Count()

			pass, err := board.Stabilize()
			require.NoError(t, err)
			assert.LessOrEqual(t, pass.Iterations, d.Height*d.Width)
			assert.LessOrEqual(t, pass.Iterations, before+1)

			assertFixpoint(t, board)
		}
	}
}

func assertFixpoint(t *testing.T, board *engine.Board) {
	t.Helper()

	for row := range board.Height() {
		full := true
		for col := range board.Width() {
			full = full && board.IsOccupied(row, col)
			if row+1 < board.Height() && board.IsOccupied(row, col) {
				assert.NotEqual(t, board.At(row, col), board.At(row+1, col), "equal pair at (%d,%d)", row, col)
			}
		}
		assert.False(t, full, "row %d is full", row)
	}

	clone := board.Clone()
	assert.Equal(t, 0, clone.Merge())
	assert.Equal(t, 0, clone.ClearFullRows())
	assert.Equal(t, 0, clone.RemoveOrphans())
}

func columnString(board *engine.Board, col int) string {
	s := ""
	for row := range board.Height() {
		if row > 0 {
			s += " "
		}
		s += board.At(row, col).String()
	}
	return s
}
