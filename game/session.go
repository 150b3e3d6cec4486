package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/plus3/tetris2048/engine"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of a round.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is one player's game: the board, the live and next pieces, queued
// input and statistics. A session is driven by a Scheduler and is not safe
// for concurrent use.
type Session struct {
	cfg     Config
	board   *engine.Board
	spawner *engine.Spawner
	rng     *rand.Rand
	shapes  []engine.Shape
	log     logrus.FieldLogger

	current *engine.Piece
	next    *engine.Piece
	state   State
	round   uuid.UUID
	inputs  []Action
	stats   *Stats

	// landed is set once the live piece can no longer fall.
	landed bool
	// locked is set between a lock and the stabilization that follows it.
	locked bool
}

// NewSession validates cfg and starts the first round. rng supplies every
// random choice of the session; a nil log falls back to the standard
// logrus logger.
func NewSession(cfg Config, rng *rand.Rand, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shapes, err := engine.ParseShapes(cfg.Shapes)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &Session{
		cfg:     cfg,
		board:   engine.NewBoard(cfg.Dims()),
		spawner: engine.NewSpawner(cfg.Dims(), rng, cfg.FourChance),
		rng:     rng,
		shapes:  shapes,
		log:     log,
		stats:   newStats(),
	}
	s.startRound()
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Board returns the board. Callers must not mutate it.
func (s *Session) Board() *engine.Board { return s.board }

// Current returns the live piece, or nil between a lock and the next spawn.
func (s *Session) Current() *engine.Piece { return s.current }

// Next returns the piece that spawns after the live one locks.
func (s *Session) Next() *engine.Piece { return s.next }

// Ghost returns where the live piece would land, or nil without one.
func (s *Session) Ghost() *engine.Piece {
	if s.current == nil {
		return nil
	}
	return engine.Ghost(s.current, s.board)
}

// State returns the round state.
func (s *Session) State() State { return s.state }

// Round identifies the current round.
func (s *Session) Round() uuid.UUID { return s.round }

// Score returns the current round's score.
func (s *Session) Score() int { return s.board.Score() }

// Stats returns the counters accumulated across rounds.
func (s *Session) Stats() *Stats { return s.stats }

// Push queues a player action. The InputSystem consumes one per frame.
func (s *Session) Push(a Action) {
	s.inputs = append(s.inputs, a)
}

// Pending returns the number of queued actions.
func (s *Session) Pending() int { return len(s.inputs) }

func (s *Session) popInput() (Action, bool) {
	if len(s.inputs) == 0 {
		return 0, false
	}
	a := s.inputs[0]
	s.inputs = s.inputs[1:]
	return a, true
}

func (s *Session) logger() logrus.FieldLogger {
	return s.log.WithField("round", s.round.String())
}

func (s *Session) spawn() *engine.Piece {
	return s.spawner.Spawn(s.shapes[s.rng.IntN(len(s.shapes))])
}

func (s *Session) startRound() {
	s.round = uuid.New()
	s.state = StateRunning
	s.inputs = s.inputs[:0]
	s.landed = false
	s.locked = false
	s.current = s.spawn()
	s.next = s.spawn()
	s.logger().WithFields(logrus.Fields{
		"height": s.cfg.Height,
		"width":  s.cfg.Width,
	}).Info("round started")
}

// promote makes the next piece live and draws a new next piece.
func (s *Session) promote() {
	if s.state == StateOver {
		return
	}
	s.current = s.next
	s.next = s.spawn()
	s.landed = false
}

func (s *Session) reset() {
	wasOver := s.state == StateOver
	prev := s.board.Reset()
	if !wasOver {
		s.stats.finishRound(prev)
	}
	s.logger().WithField("score", prev).Info("round reset")
	s.startRound()
}

// lock transfers the live piece into the board. It returns the game-over
// flag.
func (s *Session) lock() bool {
	tiles, anchor := s.current.MinBoundedTiles()
	shape := s.current.Shape()
	over := s.board.UpdateGrid(tiles, anchor)

	s.current = nil
	s.landed = false
	s.locked = true
	s.stats.Locks++

	s.logger().WithFields(logrus.Fields{
		"shape": shape.String(),
		"x":     anchor.X,
		"y":     anchor.Y,
	}).Debug("piece locked")

	if over {
		s.state = StateOver
	}
	return over
}

func (s *Session) stabilize() engine.Pass {
	pass, err := s.board.Stabilize()
	if err != nil {
		s.logger().WithError(err).Panic("board did not stabilize")
	}
	s.locked = false
	s.stats.record(pass)

	if pass.Score() > 0 {
		s.logger().WithFields(logrus.Fields{
			"iterations": pass.Iterations,
			"merges":     len(pass.Merged),
			"rows":       pass.RowsCleared,
			"orphans":    pass.OrphansRemoved,
			"gained":     pass.Score(),
			"score":      s.board.Score(),
		}).Debug("board stabilized")
	}

	if s.state == StateOver {
		s.stats.finishRound(s.board.Score())
		s.logger().WithFields(logrus.Fields{
			"score":    s.board.Score(),
			"max_tile": int(s.board.MaxTile()),
		}).Info("game over")
	}
	return pass
}
