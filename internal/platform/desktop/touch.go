package desktop

import (
	"image"

	"github.com/vovakirdan/birds-planes/internal/core"
)

// On-screen control geometry in world pixels.
const (
	touchButton = 60
	touchMargin = 10
)

// TouchControls are the on-screen d-pad (bottom left) and the round action
// button (bottom right) used with a pointer or a touch screen.
type TouchControls struct {
	Up, Down, Left, Right core.Rect
	Action                core.Rect
}

// NewTouchControls lays the controls out for a screen of the given size.
func NewTouchControls(screenW, screenH int) TouchControls {
	dx := touchMargin + touchButton
	dy := screenH - touchMargin - 2*touchButton

	return TouchControls{
		Up:    core.NewRect(dx, dy-touchButton, touchButton, touchButton),
		Down:  core.NewRect(dx, dy+touchButton, touchButton, touchButton),
		Left:  core.NewRect(dx-touchButton, dy, touchButton, touchButton),
		Right: core.NewRect(dx+touchButton, dy, touchButton, touchButton),
		Action: core.NewRect(
			screenW-touchMargin-2*touchButton,
			screenH-touchMargin-2*touchButton,
			2*touchButton, 2*touchButton,
		),
	}
}

// HitTest returns the action under (x, y). The action button reports
// ActionConfirm; empty space reports ActionNone.
func (t TouchControls) HitTest(x, y int) core.Action {
	switch {
	case t.Up.Contains(x, y):
		return core.ActionUp
	case t.Down.Contains(x, y):
		return core.ActionDown
	case t.Left.Contains(x, y):
		return core.ActionLeft
	case t.Right.Contains(x, y):
		return core.ActionRight
	case t.Action.Contains(x, y):
		return core.ActionConfirm
	}
	return core.ActionNone
}

// Frame turns pointer positions into input. Every pointer resting on a d-pad
// button holds that direction; every pointer that went down this frame,
// anywhere on screen, presses Confirm.
func (t TouchControls) Frame(active, started []image.Point) core.InputFrame {
	in := core.NewInputFrame()
	for _, p := range active {
		if a := t.HitTest(p.X, p.Y); a.IsMovement() {
			in.Hold(a)
		}
	}
	if len(started) > 0 {
		in.Press(core.ActionConfirm)
	}
	return in
}

// Lit reports which controls have a pointer on them, for highlighting.
func (t TouchControls) Lit(active []image.Point) map[core.Action]bool {
	lit := make(map[core.Action]bool, len(active))
	for _, p := range active {
		if a := t.HitTest(p.X, p.Y); a != core.ActionNone {
			lit[a] = true
		}
	}
	return lit
}
