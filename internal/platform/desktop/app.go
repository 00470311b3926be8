// Package desktop runs the game in a window with ebiten. Keyboard, mouse
// and touch input all become core actions; drawing reads the game state
// through its accessors.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/birds-planes/internal/core"
	"github.com/vovakirdan/birds-planes/internal/game"
)

// Options configures the window.
type Options struct {
	AssetDir    string
	TPS         int
	ShowTouch   bool // draw the on-screen controls
	WindowTitle string
}

// App adapts a game to ebiten.Game.
type App struct {
	game   *game.Game
	opts   Options
	logger *log.Logger

	width, height int
	touch         TouchControls
	pointers      pointers
	lit           map[core.Action]bool

	planes     *PlaneImages
	bird       [game.BirdFrames]*ebiten.Image
	background *ebiten.Image
}

var _ ebiten.Game = (*App)(nil)

// NewApp prepares a window frontend for g. Bird frames and the background
// are loaded once here; plane images load on first use.
func NewApp(g *game.Game, opts Options, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.AssetDir == "" {
		opts.AssetDir = "assets"
	}

	layout := g.Layout()
	w, h := int(layout.Width), int(layout.Height)

	return &App{
		game:       g,
		opts:       opts,
		logger:     logger,
		width:      w,
		height:     h,
		touch:      NewTouchControls(w, h),
		lit:        map[core.Action]bool{},
		planes:     NewPlaneImages(opts.AssetDir, logger),
		bird:       loadBirdFrames(opts.AssetDir, int(layout.BirdSize), logger),
		background: loadBackground(opts.AssetDir, w, h, logger),
	}
}

// Update advances the game by one fixed tick.
func (a *App) Update() error {
	in := readKeyboard()

	active, started := a.pointers.read()
	if len(active) > 0 || len(started) > 0 {
		a.opts.ShowTouch = true
	}
	in.Merge(a.touch.Frame(active, started))
	a.lit = a.touch.Lit(active)

	res := a.game.Step(1/float64(a.opts.TPS), in)
	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

// Layout keeps the world resolution; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// Draw renders the frame for the current state.
func (a *App) Draw(screen *ebiten.Image) {
	screen.DrawImage(a.background, nil)
	a.drawZones(screen)
	a.drawPlanes(screen)

	st := a.game.Status()
	if st.State != game.StateMenu {
		a.drawBird(screen)
	}
	if a.opts.ShowTouch && st.State == game.StatePlaying {
		a.drawTouch(screen)
	}

	switch st.State {
	case game.StateMenu:
		a.drawPanel(screen, []string{
			"BIRDS & PLANES",
			"",
			"Guide the bird across the lanes",
			"and dodge the planes.",
			"",
			fmt.Sprintf("Record: %d", st.HighScore),
			"",
			"Space or tap to start, Q to quit",
		})
	case game.StatePlaying:
		a.drawHUD(screen, st)
	case game.StatePaused:
		a.drawHUD(screen, st)
		a.drawPanel(screen, []string{"PAUSED", "", "P or tap to resume, Esc for menu"})
	case game.StateGameOver:
		record := fmt.Sprintf("Record: %d", st.HighScore)
		if st.NewRecord {
			record = "NEW RECORD!"
		}
		a.drawPanel(screen, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", st.Score),
			record,
			"",
			"R or tap to restart, Esc for menu",
		})
	}
}

func (a *App) drawZones(screen *ebiten.Image) {
	layout := a.game.Layout()
	w := float32(layout.Width)

	finish := layout.FinishZone()
	vector.DrawFilledRect(screen, 0, float32(finish.Y), w, float32(finish.H), color.RGBA{0, 200, 0, 90}, false)
	ebitenutil.DebugPrintAt(screen, "FINISH", int(layout.Width)/2-18, int(finish.Y+finish.H/2)-8)

	safe := layout.SafeZone()
	vector.DrawFilledRect(screen, 0, float32(safe.Y), w, float32(safe.H), color.RGBA{100, 200, 100, 90}, false)

	for i, lane := range a.game.Lanes() {
		if i == 0 {
			continue
		}
		y := float32(lane.Bounds().Top())
		for x := float32(0); x < w; x += 40 {
			vector.StrokeLine(screen, x, y, x+20, y, 2, color.RGBA{255, 255, 255, 120}, false)
		}
	}
}

func (a *App) drawPlanes(screen *ebiten.Image) {
	for _, lane := range a.game.Lanes() {
		for _, p := range lane.Planes() {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(p.Box.X, p.Box.Y)
			screen.DrawImage(a.planes.Plane(p.Size, p.Dir), op)
		}
	}
}

func (a *App) drawBird(screen *ebiten.Image) {
	b := a.game.Bird()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.Box.X, b.Box.Y)
	screen.DrawImage(a.bird[b.Frame()], op)
}

func (a *App) drawHUD(screen *ebiten.Image, st game.Status) {
	sound := "on"
	if !st.SoundEnabled {
		sound = "off"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", st.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, "Lives: "+strings.Repeat("<3 ", st.Lives), 10, 26)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Record: %d  Sound: %s  x%.2f", st.HighScore, sound, st.Multiplier),
		a.width-230, 10)
}

func (a *App) drawTouch(screen *ebiten.Image) {
	idle := color.RGBA{173, 216, 230, 100}
	pressed := color.RGBA{0, 255, 0, 150}
	pick := func(act core.Action) color.Color {
		if a.lit[act] {
			return pressed
		}
		return idle
	}

	buttons := []struct {
		rect  core.Rect
		act   core.Action
		label string
	}{
		{a.touch.Up, core.ActionUp, "^"},
		{a.touch.Down, core.ActionDown, "v"},
		{a.touch.Left, core.ActionLeft, "<"},
		{a.touch.Right, core.ActionRight, ">"},
	}
	for _, btn := range buttons {
		r := btn.rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), pick(btn.act), false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{255, 255, 255, 150}, false)
		ebitenutil.DebugPrintAt(screen, btn.label, r.X+r.W/2-3, r.Y+r.H/2-8)
	}

	act := a.touch.Action
	cx, cy := float32(act.X+act.W/2), float32(act.Y+act.H/2)
	vector.DrawFilledCircle(screen, cx, cy, touchButton, pick(core.ActionConfirm), true)
	vector.StrokeCircle(screen, cx, cy, touchButton, 3, color.RGBA{255, 255, 255, 150}, true)
	ebitenutil.DebugPrintAt(screen, "TAP", int(cx)-9, int(cy)-8)
}

// drawPanel draws a translucent box with centered debug-font lines.
func (a *App) drawPanel(screen *ebiten.Image, lines []string) {
	const charW, lineH = 6, 16

	w := 0
	for _, l := range lines {
		w = max(w, len(l)*charW)
	}
	w += 40
	h := len(lines)*lineH + 30
	x := (a.width - w) / 2
	y := (a.height - h) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{0, 0, 0, 170}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, (a.width-len(l)*charW)/2, y+15+i*lineH)
	}
}

// Run opens the window and blocks until the player quits or closes it.
func Run(g *game.Game, opts Options, logger *log.Logger) error {
	if opts.WindowTitle == "" {
		opts.WindowTitle = "Birds & Planes"
	}
	layout := g.Layout()
	ebiten.SetWindowSize(int(layout.Width), int(layout.Height))
	ebiten.SetWindowTitle(opts.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	app := NewApp(g, opts, logger)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
