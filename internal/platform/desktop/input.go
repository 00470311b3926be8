package desktop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/birds-planes/internal/core"
)

// heldKeys are polled every frame for continuous movement.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
}

// pressedKeys fire once per key press.
var pressedKeys = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionConfirm,
	ebiten.KeyEnter:  core.ActionConfirm,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyM:      core.ActionSound,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyEscape: core.ActionBack,
	ebiten.KeyQ:      core.ActionQuit,
}

// readKeyboard polls the keyboard for this frame.
func readKeyboard() core.InputFrame {
	in := core.NewInputFrame()
	for k, a := range heldKeys {
		if ebiten.IsKeyPressed(k) {
			in.Hold(a)
		}
	}
	for k, a := range pressedKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Press(a)
		}
	}
	return in
}

// pointers collects the touch points and the left mouse button as a single
// list, plus the ones that went down this frame.
type pointers struct {
	touchIDs []ebiten.TouchID
	started  []ebiten.TouchID
}

func (p *pointers) read() (active, started []image.Point) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		active = append(active, image.Pt(x, y))
	}
	p.started = inpututil.AppendJustPressedTouchIDs(p.started[:0])
	for _, id := range p.started {
		x, y := ebiten.TouchPosition(id)
		started = append(started, image.Pt(x, y))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		active = append(active, image.Pt(ebiten.CursorPosition()))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		started = append(started, image.Pt(ebiten.CursorPosition()))
	}
	return active, started
}
