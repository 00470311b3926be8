package game

import "github.com/vovakirdan/birds-planes/internal/core"

// State is the session phase.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// transition is what an action does in a given state.
type transition int

const (
	tIgnore transition = iota
	tStart             // full session reset, then playing
	tPause
	tResume
	tToMenu
	tToggleSound
	tQuit
)

// transitionFor lists, per state, every action that state accepts.
// Anything not listed is ignored.
func transitionFor(s State, a core.Action) transition {
	if a == core.ActionSound {
		return tToggleSound
	}

	switch s {
	case StateMenu:
		switch a {
		case core.ActionConfirm:
			return tStart
		case core.ActionQuit, core.ActionBack:
			return tQuit
		}
	case StatePlaying:
		switch a {
		case core.ActionPause:
			return tPause
		case core.ActionBack:
			return tToMenu
		}
	case StatePaused:
		switch a {
		case core.ActionPause, core.ActionConfirm:
			return tResume
		case core.ActionBack:
			return tToMenu
		}
	case StateGameOver:
		switch a {
		case core.ActionRestart, core.ActionConfirm:
			return tStart
		case core.ActionBack:
			return tToMenu
		case core.ActionQuit:
			return tQuit
		}
	}
	return tIgnore
}
