package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/birds-planes/internal/core"
	"github.com/vovakirdan/birds-planes/internal/game"
)

// KeyMap defines the terminal key bindings.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Sound      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
		),
	}
}

// Action translates a key message to a game action.
// Returns core.ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Sound):
		return core.ActionSound
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// stateHelp adapts the key map to the bindings that matter in one state.
type stateHelp struct {
	keys  KeyMap
	state game.State
}

var _ help.KeyMap = stateHelp{}

// ShortHelp returns the footer bindings for the current state.
func (h stateHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.state {
	case game.StateMenu:
		return []key.Binding{k.Confirm, k.Sound, k.Quit}
	case game.StatePlaying:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Sound, k.Back}
	case game.StatePaused:
		resume := k.Pause
		resume.SetHelp("p", "resume")
		return []key.Binding{resume, k.Sound, k.Back}
	case game.StateGameOver:
		return []key.Binding{k.Restart, k.Back, k.Quit}
	}
	return nil
}

// FullHelp returns every binding grouped by purpose.
func (h stateHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Pause, k.Sound},
		{k.Restart, k.Back, k.Quit},
	}
}
