package game

import "github.com/plus3/tetris2048/engine"

// InputSystem applies at most one queued player action per frame.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	action, ok := session.popInput()
	if !ok {
		return
	}

	switch action {
	case ActionReset:
		frame.Commands.Reset()
		return
	case ActionPause:
		switch session.state {
		case StateRunning:
			session.state = StatePaused
		case StatePaused:
			session.state = StateRunning
		}
		return
	}

	if session.state != StateRunning || session.current == nil || session.landed {
		return
	}

	piece, board := session.current, session.board
	switch action {
	case ActionLeft:
		piece.Move(engine.Left, board)
	case ActionRight:
		piece.Move(engine.Right, board)
	case ActionDown:
		piece.Move(engine.Down, board)
	case ActionRotateCW:
		piece.RotateClockwise(board)
	case ActionRotateCCW:
		piece.RotateCounterClockwise(board)
	case ActionHardDrop:
		for piece.Move(engine.Down, board) {
		}
		session.landed = true
	}
}

// GravitySystem drops the live piece one row every fall interval and marks
// it landed when it cannot fall further.
type GravitySystem struct {
	Accumulator float64
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	if session.state != StateRunning || session.current == nil || session.landed {
		return
	}

	s.Accumulator += frame.DeltaTime
	if s.Accumulator < session.cfg.FallInterval.Seconds() {
		return
	}
	s.Accumulator = 0

	if !session.current.Move(engine.Down, session.board) {
		session.landed = true
	}
}

// LockSystem copies a landed piece into the board.
type LockSystem struct{}

func (s *LockSystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	if !session.landed || session.current == nil {
		return
	}
	session.lock()
}

// StabilizeSystem runs the merge, clear and orphan passes after a lock and
// queues the next spawn.
type StabilizeSystem struct {
	// LastPass is the result of the most recent stabilization.
	LastPass engine.Pass
}

func (s *StabilizeSystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	if !session.locked {
		return
	}
	s.LastPass = session.stabilize()
	if session.state != StateOver {
		frame.Commands.Spawn()
	}
}
