// Package game implements Birds & Planes: a bird crosses lanes of planes
// flying in alternating directions, scoring per lane and losing a life on
// every hit.
//
// The package is frontend-agnostic. A frontend feeds Step with the elapsed
// frame time and a core.InputFrame, then draws from the accessors.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birds-planes/internal/config"
	"github.com/vovakirdan/birds-planes/internal/core"
)

// Sound effect names fired through Sounder.
const (
	SoundCollision = "collision"
	SoundPoint     = "point"
)

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
}

// Sounder plays a named sound effect without blocking.
type Sounder interface {
	Play(name string)
}

// Status is a snapshot of the session for HUDs and tests.
type Status struct {
	State        State
	Score        int
	Lives        int
	HighScore    int
	NewRecord    bool
	SoundEnabled bool
	Elapsed      float64 // seconds of play in this session
	Multiplier   float64 // current difficulty multiplier
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Status  Status
	Spawned []*Plane // planes that entered this tick
	Hit     bool     // a plane hit the bird
	Awarded int      // points scored this tick
	Quit    bool     // the player asked to leave
}

// Layout is the fixed world geometry in pixels.
type Layout struct {
	Width, Height float64
	FinishY       float64
	FinishHeight  float64
	SafeHeight    float64
	BirdSize      float64
}

// NewLayout derives the layout from a validated configuration.
func NewLayout(cfg config.Config) Layout {
	return Layout{
		Width:        float64(cfg.ScreenWidth),
		Height:       float64(cfg.ScreenHeight),
		FinishY:      cfg.FinishZoneY,
		FinishHeight: cfg.FinishZoneHeight,
		SafeHeight:   cfg.SafeZoneHeight,
		BirdSize:     cfg.BirdSize,
	}
}

// Bounds is the whole screen.
func (l Layout) Bounds() core.Box { return core.NewBox(0, 0, l.Width, l.Height) }

// FinishZone is the goal strip at the top.
func (l Layout) FinishZone() core.Box { return core.NewBox(0, l.FinishY, l.Width, l.FinishHeight) }

// SafeZone is the start strip at the bottom.
func (l Layout) SafeZone() core.Box {
	return core.NewBox(0, l.Height-l.SafeHeight, l.Width, l.SafeHeight)
}

// FinishLine is the lower edge of the finish zone.
func (l Layout) FinishLine() float64 { return l.FinishY + l.FinishHeight }

// BirdFloor is the lowest y the bird's bottom edge may reach.
func (l Layout) BirdFloor() float64 { return l.Height - l.SafeHeight + l.BirdSize }

// Start returns the bird's start center.
func (l Layout) Start() (x, y float64) { return l.Width / 2, l.Height - l.SafeHeight/2 }

// Lanes returns the centers and the common height of n evenly spaced lanes
// between the finish and safe zones.
func (l Layout) Lanes(n int) (centers []float64, height float64) {
	top := l.FinishLine()
	bottom := l.Height - l.SafeHeight
	height = (bottom - top) / float64(n)
	centers = make([]float64, n)
	for i := range centers {
		centers[i] = top + height*(float64(i)+0.5)
	}
	return centers, height
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets the high-score store.
func WithStore(s HighScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithSounder sets the sound effect player.
func WithSounder(s Sounder) Option {
	return func(g *Game) { g.sounder = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRand sets the randomness source for plane spawning.
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// Game is the session state machine.
type Game struct {
	cfg        config.Config
	layout     Layout
	difficulty config.DifficultyModel
	hitboxes   Hitboxes

	bird  *Bird
	lanes []*Lane

	state        State
	score        int
	lives        int
	highScore    int
	newRecord    bool
	soundEnabled bool
	elapsed      float64
	multiplier   float64

	store   HighScoreStore
	sounder Sounder
	logger  *log.Logger
	rng     Rand
}

// New creates a game in the menu state. cfg must already be validated.
// The high score is read from the store once, here.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:          cfg,
		layout:       NewLayout(cfg),
		difficulty:   config.NewDifficultyModel(cfg),
		hitboxes:     Hitboxes{BirdInset: cfg.BirdHitboxInset, PlaneInset: cfg.PlaneHitboxInset},
		state:        StateMenu,
		lives:        cfg.Lives,
		soundEnabled: cfg.SoundEnabled,
		multiplier:   1.0,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	centers, height := g.layout.Lanes(cfg.NumLanes)
	g.lanes = make([]*Lane, len(centers))
	for i, cy := range centers {
		g.lanes[i] = NewLane(i, cy, height, cfg, g.rng)
	}

	sx, sy := g.layout.Start()
	g.bird = NewBird(sx, sy, cfg.BirdSize, cfg.BirdSpeed)

	g.loadHighScore()
	return g
}

func (g *Game) loadHighScore() {
	if g.store == nil {
		return
	}
	hs, err := g.store.HighScore()
	if err != nil {
		g.logger.Warn("cannot read high score, starting from 0", "error", err)
		return
	}
	g.highScore = hs
}

// Step handles this frame's pressed actions, then advances the simulation
// by dt seconds if the game is being played.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	var res StepResult

	for _, a := range in.PressedInOrder() {
		if g.apply(transitionFor(g.state, a)) {
			res.Quit = true
			res.Status = g.Status()
			return res
		}
	}

	if g.state == StatePlaying && dt > 0 {
		g.tick(dt, in, &res)
	}

	res.Status = g.Status()
	return res
}

// apply performs a transition and reports whether the player quit.
func (g *Game) apply(t transition) bool {
	switch t {
	case tStart:
		g.reset()
		g.state = StatePlaying
	case tPause:
		g.state = StatePaused
	case tResume:
		g.state = StatePlaying
	case tToMenu:
		g.state = StateMenu
	case tToggleSound:
		g.soundEnabled = !g.soundEnabled
	case tQuit:
		return true
	case tIgnore:
	}
	return false
}

// reset starts a fresh session. The high score survives.
func (g *Game) reset() {
	g.score = 0
	g.lives = g.cfg.Lives
	g.elapsed = 0
	g.multiplier = 1.0
	g.newRecord = false
	for _, lane := range g.lanes {
		lane.Clear()
	}
	g.resetBird()
}

func (g *Game) resetBird() {
	g.bird.ResetTo(g.layout.Start())
}

func (g *Game) tick(dt float64, in core.InputFrame, res *StepResult) {
	g.elapsed += dt
	g.multiplier = g.difficulty.Multiplier(g.elapsed)

	g.bird.Move(dt, in, g.layout.Bounds(), g.layout.BirdFloor())

	for _, lane := range g.lanes {
		res.Spawned = append(res.Spawned, lane.Update(dt, g.multiplier)...)
	}

	if _, hit := FindCollision(g.bird.Box, g.lanes, g.hitboxes); hit {
		res.Hit = true
		g.handleCollision()
		if g.state == StateGameOver {
			return
		}
	}

	cross := CheckCrossing(g.bird, g.lanes, g.layout.FinishLine())
	switch cross.Kind {
	case CrossFinish:
		res.Awarded = 2 * g.cfg.PointsPerCross
		g.resetBird()
	case CrossLane:
		g.bird.Credit(cross.Lane)
		res.Awarded = g.cfg.PointsPerCross
	case CrossNone:
	}
	if cross.Kind != CrossNone {
		g.score += res.Awarded
		g.play(SoundPoint)
	}
}

func (g *Game) handleCollision() {
	g.play(SoundCollision)
	g.lives--
	if g.lives > 0 {
		g.resetBird()
		return
	}

	g.lives = 0
	if g.score > g.highScore {
		g.highScore = g.score
		g.newRecord = true
		g.saveHighScore()
	}
	g.state = StateGameOver
	g.logger.Info("game over", "score", g.score, "highscore", g.highScore, "elapsed", g.elapsed)
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.highScore); err != nil {
		g.logger.Warn("cannot save high score", "score", g.highScore, "error", err)
	}
}

func (g *Game) play(name string) {
	if g.soundEnabled && g.sounder != nil {
		g.sounder.Play(name)
	}
}

// Status returns a snapshot of the session.
func (g *Game) Status() Status {
	return Status{
		State:        g.state,
		Score:        g.score,
		Lives:        g.lives,
		HighScore:    g.highScore,
		NewRecord:    g.newRecord,
		SoundEnabled: g.soundEnabled,
		Elapsed:      g.elapsed,
		Multiplier:   g.multiplier,
	}
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Bird returns the player entity.
func (g *Game) Bird() *Bird { return g.bird }

// Lanes returns the lanes top to bottom.
func (g *Game) Lanes() []*Lane { return g.lanes }

// Layout returns the world geometry.
func (g *Game) Layout() Layout { return g.layout }

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config { return g.cfg }
