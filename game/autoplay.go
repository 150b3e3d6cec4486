package game

import (
	"math"

	"github.com/plus3/tetris2048/engine"
)

// Autoplayer picks a placement for the live piece by trying every rotation
// and column on copies of the piece and board.
type Autoplayer struct {
	// ScoreWeight scales the points a placement earns after stabilizing.
	ScoreWeight float64
	// HeightWeight penalizes the summed column heights left behind.
	HeightWeight float64
	// HoleWeight penalizes empty cells covered by a tile.
	HoleWeight float64
}

// DefaultAutoplayer favors low, hole-free stacks over immediate points.
func DefaultAutoplayer() Autoplayer {
	return Autoplayer{
		ScoreWeight:  0.1,
		HeightWeight: 1,
		HoleWeight:   4,
	}
}

// lost scores a placement that ends the round; it still beats no placement.
const lost = -1e18

type placement struct {
	actions []Action
	value   float64
}

// Plan returns the actions that move the live piece into the best placement
// found, ending in a hard drop. It returns nil when there is no live piece.
func (a Autoplayer) Plan(s *Session) []Action {
	if s.current == nil {
		return nil
	}

	best := placement{value: math.Inf(-1)}
	for turns := range 4 {
		piece, prefix, ok := rotated(s.current, s.board, turns)
		if !ok {
			continue
		}

		leftmost := piece.Clone()
		lefts := 0
		for leftmost.Move(engine.Left, s.board) {
			lefts++
		}

		candidate := leftmost
		for step := 0; ; step++ {
			value := a.evaluate(candidate, s.board)
			if value > best.value {
				best = placement{
					actions: withShift(prefix, step-lefts),
					value:   value,
				}
			}
			candidate = candidate.Clone()
			if !candidate.Move(engine.Right, s.board) {
				break
			}
		}
	}
	if best.actions == nil {
		return []Action{ActionHardDrop}
	}
	return best.actions
}

// rotated turns a copy of p clockwise the given number of times, soft
// dropping first wherever a turn would poke above the ceiling. It returns
// the actions taken.
func rotated(p *engine.Piece, g engine.Grid, turns int) (*engine.Piece, []Action, bool) {
	piece := p.Clone()
	var actions []Action
	for range turns {
		for !piece.RotateClockwise(g) {
			if !piece.Move(engine.Down, g) {
				return nil, nil, false
			}
			actions = append(actions, ActionDown)
		}
		actions = append(actions, ActionRotateCW)
	}
	return piece, actions, true
}

func withShift(prefix []Action, shift int) []Action {
	actions := append([]Action(nil), prefix...)
	for ; shift < 0; shift++ {
		actions = append(actions, ActionLeft)
	}
	for ; shift > 0; shift-- {
		actions = append(actions, ActionRight)
	}
	return append(actions, ActionHardDrop)
}

func (a Autoplayer) evaluate(p *engine.Piece, board *engine.Board) float64 {
	ghost := engine.Ghost(p, board)
	trial := board.Clone()
	tiles, anchor := ghost.MinBoundedTiles()
	if trial.UpdateGrid(tiles, anchor) {
		return lost
	}
	before := trial.Score()
	if _, err := trial.Stabilize(); err != nil {
		return lost
	}

	heights, holes := 0, 0
	for col := range trial.Width() {
		top := -1
		for row := trial.Height() - 1; row >= 0; row-- {
			if !trial.IsOccupied(row, col) {
				if top >= 0 {
					holes++
				}
				continue
			}
			if top < 0 {
				top = row
			}
		}
		heights += top + 1
	}

	gained := float64(trial.Score() - before)
	return a.ScoreWeight*gained - a.HeightWeight*float64(heights) - a.HoleWeight*float64(holes)
}

// AutoplaySystem feeds the Autoplayer's plan into the session, one action
// per frame. Register it before the InputSystem.
type AutoplaySystem struct {
	Player Autoplayer

	planned []Action
	piece   *engine.Piece
}

func (s *AutoplaySystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	if session.state == StatePaused || session.Pending() > 0 {
		return
	}
	if session.current == nil {
		return
	}
	if session.current != s.piece {
		s.piece = session.current
		s.planned = s.Player.Plan(session)
	}
	if len(s.planned) == 0 {
		return
	}
	session.Push(s.planned[0])
	s.planned = s.planned[1:]
}
