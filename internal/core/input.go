package core

// Action represents a logical game action, abstracted from keys, terminal
// escape sequences and touch regions. Every frontend maps its raw input to
// these values so the state machine never sees a device.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, d-pad up - move up (held)
	ActionDown           // S, Down arrow, d-pad down - move down (held)
	ActionLeft           // A, Left arrow, d-pad left - move left (held)
	ActionRight          // D, Right arrow, d-pad right - move right (held)
	ActionConfirm        // Space, Enter, tap - start / resume
	ActionPause          // P - pause toggle
	ActionSound          // M - sound toggle
	ActionRestart        // R - restart after game over
	ActionBack           // Esc - cancel to menu
	ActionQuit           // Q - exit from menu or game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionSound:
		return "Sound"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four held directions.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame is the input for one simulation tick.
// Pressed holds edge-triggered actions (fired once per key press);
// Held holds continuous actions such as movement directions.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an edge-triggered action for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks a continuous action as held during this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Merge adds every pressed and held action of other into f.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.Pressed {
		if on {
			f.Press(a)
		}
	}
	for a, on := range other.Held {
		if on {
			f.Hold(a)
		}
	}
}

// PressedInOrder returns the pressed actions sorted by their enum value, so
// a frame with several presses is handled deterministically.
func (f InputFrame) PressedInOrder() []Action {
	var out []Action
	for a := ActionUp; a <= ActionQuit; a++ {
		if f.Pressed[a] {
			out = append(out, a)
		}
	}
	return out
}
