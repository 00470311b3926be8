package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birds-planes/internal/core"
	"github.com/vovakirdan/birds-planes/internal/game"
)

// HoldWindow is how long a movement key counts as held after its last key
// event. Terminals report presses and auto-repeats but never releases.
const HoldWindow = 180 * time.Millisecond

// opposite pairs movement directions so a new press cancels its reverse.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *game.Game
	renderer *Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	config   core.RuntimeConfig
	pressed  core.InputFrame
	heldAt   map[core.Action]time.Time
	lastTick time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model around g.
func NewModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:     g,
		renderer: NewRenderer(),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		config:   cfg,
		pressed:  core.NewInputFrame(),
		heldAt:   make(map[core.Action]time.Time),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	switch {
	case a == core.ActionNone:
	case a.IsMovement():
		m.heldAt[a] = now
		delete(m.heldAt, opposite[a])
	default:
		m.pressed.Press(a)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its pixel
// size; only the cell scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// frame builds this tick's input from queued presses and recently seen
// movement keys.
func (m Model) frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	in.Merge(m.pressed)
	for a, at := range m.heldAt {
		if now.Sub(at) <= HoldWindow {
			in.Hold(a)
		} else {
			delete(m.heldAt, a)
		}
	}
	return in
}

// frameDelta returns the seconds since the previous tick, capped so a
// stalled terminal does not teleport planes.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	return min(now.Sub(prev).Seconds(), core.MaxFrameDelta)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	res := m.game.Step(dt, m.frame(now))
	m.pressed.Clear()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.game)

	dir := filepath.Join(os.Getenv("HOME"), ".birdsplanes", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("birdsplanes_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.game)
	footer := m.help.View(stateHelp{keys: m.keys, state: m.game.State()})
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for g and blocks until the player quits.
func Run(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
