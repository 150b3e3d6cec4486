package game

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris2048/engine"
)

// Stats accumulates counters across every round of a session.
type Stats struct {
	Rounds         int
	Locks          int
	Merges         int
	RowsCleared    int
	OrphansRemoved int
	HighScore      int
	MaxTile        engine.Tile

	merged *intmap.Map[engine.Tile, int]
}

func newStats() *Stats {
	return &Stats{
		merged: intmap.New[engine.Tile, int](16),
	}
}

func (s *Stats) record(pass engine.Pass) {
	s.Merges += len(pass.Merged)
	s.RowsCleared += pass.RowsCleared
	s.OrphansRemoved += pass.OrphansRemoved
	for _, t := range pass.Merged {
		n, _ := s.merged.Get(t)
		s.merged.Put(t, n+1)
		s.MaxTile = max(s.MaxTile, t)
	}
}

func (s *Stats) finishRound(score int) {
	s.Rounds++
	s.HighScore = max(s.HighScore, score)
}

// MergeCount returns how many merges produced a tile of value t.
func (s *Stats) MergeCount(t engine.Tile) int {
	n, _ := s.merged.Get(t)
	return n
}

// MergedValues returns every value produced by a merge, ascending.
func (s *Stats) MergedValues() []engine.Tile {
	values := make([]engine.Tile, 0, s.merged.Len())
	s.merged.ForEach(func(t engine.Tile, _ int) bool {
		values = append(values, t)
		return true
	})
	slices.Sort(values)
	return values
}
