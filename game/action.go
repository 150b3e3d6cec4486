package game

import "fmt"

// Action is a player input routed into the session.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop
	ActionPause
	ActionReset
)

var actionNames = [...]string{
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionDown:      "down",
	ActionRotateCW:  "rotate-cw",
	ActionRotateCCW: "rotate-ccw",
	ActionHardDrop:  "hard-drop",
	ActionPause:     "pause",
	ActionReset:     "reset",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
