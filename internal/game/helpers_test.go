package game

import (
	"errors"

	"github.com/vovakirdan/birds-planes/internal/config"
	"github.com/vovakirdan/birds-planes/internal/core"
)

// fakeRand returns scripted values, then def forever.
type fakeRand struct {
	vals []float64
	def  float64
	n    int
}

func (f *fakeRand) Float64() float64 {
	f.n++
	if len(f.vals) > 0 {
		v := f.vals[0]
		f.vals = f.vals[1:]
		return v
	}
	return f.def
}

type fakeStore struct {
	highScore int
	saves     []int
	readErr   error
	writeErr  error
}

func (s *fakeStore) HighScore() (int, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return s.highScore, nil
}

func (s *fakeStore) SaveHighScore(score int) error {
	s.saves = append(s.saves, score)
	if s.writeErr != nil {
		return s.writeErr
	}
	s.highScore = score
	return nil
}

var errDisk = errors.New("disk on fire")

type fakeSounder struct {
	played []string
}

func (s *fakeSounder) Play(name string) {
	s.played = append(s.played, name)
}

// quietConfig returns defaults with spawning pushed far into the future.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.SpawnRate = 0.001
	return cfg
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// startedGame returns a game already in the playing state.
func startedGame(cfg config.Config, opts ...Option) *Game {
	opts = append([]Option{WithRand(&fakeRand{def: 0.5})}, opts...)
	g := New(cfg, opts...)
	g.Step(0, press(core.ActionConfirm))
	return g
}

// parkedPlane returns a motionless plane with the given box.
func parkedPlane(box core.Box, lane int) *Plane {
	return &Plane{
		Mover: Mover{Box: box},
		Size:  SizeMed,
		Dir:   1,
		Lane:  lane,
	}
}
