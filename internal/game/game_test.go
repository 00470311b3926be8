package game

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birds-planes/internal/config"
	"github.com/vovakirdan/birds-planes/internal/core"
)

func TestLayoutLanes(t *testing.T) {
	l := NewLayout(config.Default())
	centers, height := l.Lanes(5)

	if height != 88 {
		t.Errorf("lane height = %v, expected 88", height)
	}
	want := []float64{144, 232, 320, 408, 496}
	for i, c := range centers {
		if c != want[i] {
			t.Errorf("lane %d center = %v, expected %v", i, c, want[i])
		}
	}
	if x, y := l.Start(); x != 400 || y != 570 {
		t.Errorf("Start() = (%v, %v)", x, y)
	}
	if l.FinishLine() != 100 || l.BirdFloor() != 580 {
		t.Errorf("FinishLine() = %v, BirdFloor() = %v", l.FinishLine(), l.BirdFloor())
	}
}

func TestNewGame(t *testing.T) {
	store := &fakeStore{highScore: 700}
	g := New(config.Default(), WithStore(store), WithRand(&fakeRand{def: 0.5}))

	st := g.Status()
	if st.State != StateMenu {
		t.Errorf("initial state = %v, expected menu", st.State)
	}
	if st.HighScore != 700 {
		t.Errorf("high score = %d, expected 700", st.HighScore)
	}
	if st.Lives != 3 || st.Score != 0 || st.Multiplier != 1.0 {
		t.Errorf("unexpected initial status %+v", st)
	}
	if len(g.Lanes()) != 5 {
		t.Errorf("lanes = %d, expected 5", len(g.Lanes()))
	}
}

func TestHighScoreReadFailure(t *testing.T) {
	var buf bytes.Buffer
	store := &fakeStore{highScore: 700, readErr: errDisk}
	g := New(config.Default(), WithStore(store), WithLogger(log.New(&buf)))

	if g.Status().HighScore != 0 {
		t.Errorf("unreadable high score should be 0, got %d", g.Status().HighScore)
	}
	if !strings.Contains(buf.String(), "cannot read high score") {
		t.Errorf("read failure not logged: %q", buf.String())
	}
}

func TestNoTickOutsidePlaying(t *testing.T) {
	g := New(config.Default(), WithRand(&fakeRand{def: 0.5}))
	res := g.Step(10, hold(core.ActionUp))

	if res.Status.Elapsed != 0 || len(res.Spawned) != 0 {
		t.Errorf("menu should not simulate, got %+v", res)
	}
	if cx, cy := g.Bird().Box.Center(); cx != 400 || cy != 570 {
		t.Errorf("bird moved in the menu: (%v, %v)", cx, cy)
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     State
		action   core.Action
		want     State
		wantQuit bool
	}{
		{"menu start", StateMenu, core.ActionConfirm, StatePlaying, false},
		{"menu quit", StateMenu, core.ActionQuit, StateMenu, true},
		{"menu escape quits", StateMenu, core.ActionBack, StateMenu, true},
		{"menu ignores pause", StateMenu, core.ActionPause, StateMenu, false},
		{"menu ignores restart", StateMenu, core.ActionRestart, StateMenu, false},
		{"playing pause", StatePlaying, core.ActionPause, StatePaused, false},
		{"playing back", StatePlaying, core.ActionBack, StateMenu, false},
		{"playing ignores quit", StatePlaying, core.ActionQuit, StatePlaying, false},
		{"playing ignores confirm", StatePlaying, core.ActionConfirm, StatePlaying, false},
		{"paused resume", StatePaused, core.ActionPause, StatePlaying, false},
		{"paused confirm resumes", StatePaused, core.ActionConfirm, StatePlaying, false},
		{"paused back", StatePaused, core.ActionBack, StateMenu, false},
		{"paused ignores quit", StatePaused, core.ActionQuit, StatePaused, false},
		{"game over restart", StateGameOver, core.ActionRestart, StatePlaying, false},
		{"game over confirm", StateGameOver, core.ActionConfirm, StatePlaying, false},
		{"game over back", StateGameOver, core.ActionBack, StateMenu, false},
		{"game over quit", StateGameOver, core.ActionQuit, StateGameOver, true},
		{"game over ignores pause", StateGameOver, core.ActionPause, StateGameOver, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(quietConfig(), WithRand(&fakeRand{def: 0.5}))
			g.state = tc.from

			res := g.Step(0, press(tc.action))

			if res.Quit != tc.wantQuit {
				t.Errorf("Quit = %v, expected %v", res.Quit, tc.wantQuit)
			}
			if g.State() != tc.want {
				t.Errorf("state = %v, expected %v", g.State(), tc.want)
			}
		})
	}
}

func TestStartResetsSession(t *testing.T) {
	g := startedGame(config.Default())
	for range 120 {
		g.Step(1.0/60, hold(core.ActionUp))
	}
	g.score = 500
	g.lives = 1
	g.newRecord = true
	g.state = StateGameOver

	g.Step(0, press(core.ActionRestart))

	st := g.Status()
	if st.Score != 0 || st.Lives != 3 || st.Elapsed != 0 || st.Multiplier != 1.0 || st.NewRecord {
		t.Errorf("restart did not reset the session: %+v", st)
	}
	for _, lane := range g.Lanes() {
		if len(lane.Planes()) != 0 {
			t.Errorf("lane %d not cleared", lane.Index())
		}
	}
	if cx, cy := g.Bird().Box.Center(); cx != 400 || cy != 570 {
		t.Errorf("bird not at start: (%v, %v)", cx, cy)
	}
	if len(g.Bird().Credited()) != 0 {
		t.Error("credited lanes not cleared")
	}
}

func TestPausedSessionResumesIntact(t *testing.T) {
	g := startedGame(quietConfig())
	g.Step(0.5, hold(core.ActionUp))
	before := g.Status()

	g.Step(0, press(core.ActionPause))
	g.Step(5, hold(core.ActionUp))
	if g.Status().Elapsed != before.Elapsed {
		t.Error("elapsed advanced while paused")
	}

	g.Step(0, press(core.ActionPause))
	if g.State() != StatePlaying || g.Status().Score != before.Score {
		t.Errorf("resume changed the session: %+v", g.Status())
	}
}

func TestSingleLaneCross(t *testing.T) {
	cfg := quietConfig()
	cfg.NumLanes = 1
	cfg.Lives = 1
	cfg.PointsPerCross = 100
	g := startedGame(cfg)

	// Fly up into the middle of the lane.
	for g.Bird().Box.Top() > 300 {
		g.Step(0.05, hold(core.ActionUp))
	}

	st := g.Status()
	if st.Score != 100 {
		t.Errorf("score = %d, expected 100", st.Score)
	}
	credited := g.Bird().Credited()
	if len(credited) != 1 || credited[0] != 0 {
		t.Errorf("credited = %v, expected [0]", credited)
	}
}

func TestCollisionEndsGameOnLastLife(t *testing.T) {
	cfg := quietConfig()
	cfg.NumLanes = 1
	cfg.Lives = 1
	sounder := &fakeSounder{}
	store := &fakeStore{}
	g := startedGame(cfg, WithSounder(sounder), WithStore(store))

	g.Bird().Box = core.BoxFromCenter(400, 320, 40, 40)
	g.lanes[0].planes = append(g.lanes[0].planes, parkedPlane(g.Bird().Box, 0))

	res := g.Step(0.016, core.NewInputFrame())

	if !res.Hit {
		t.Error("collision not reported")
	}
	if res.Status.Lives != 0 {
		t.Errorf("lives = %d, expected 0", res.Status.Lives)
	}
	if res.Status.State != StateGameOver {
		t.Errorf("state = %v, expected game_over", res.Status.State)
	}
	if res.Awarded != 0 || res.Status.Score != 0 {
		t.Error("no lane should be credited on the game-over tick")
	}
	if len(store.saves) != 0 {
		t.Errorf("score 0 should not be saved, saves = %v", store.saves)
	}
	if len(sounder.played) != 1 || sounder.played[0] != SoundCollision {
		t.Errorf("sounds = %v", sounder.played)
	}

	// Nothing more happens until a new session starts.
	elapsed := res.Status.Elapsed
	res = g.Step(1, hold(core.ActionUp))
	if res.Status.Lives != 0 || res.Status.State != StateGameOver || res.Status.Elapsed != elapsed {
		t.Errorf("game over should be frozen, got %+v", res.Status)
	}
}

func TestCollisionWithLivesLeftResetsBird(t *testing.T) {
	cfg := quietConfig()
	cfg.NumLanes = 1
	g := startedGame(cfg)
	g.score = 100
	g.Bird().Credit(0)

	g.Bird().Box = core.BoxFromCenter(400, 320, 40, 40)
	g.lanes[0].planes = append(g.lanes[0].planes, parkedPlane(g.Bird().Box, 0))

	res := g.Step(0.016, core.NewInputFrame())

	if res.Status.Lives != 2 || res.Status.State != StatePlaying {
		t.Errorf("status = %+v, expected playing with 2 lives", res.Status)
	}
	if res.Status.Score != 100 {
		t.Errorf("score changed on collision: %d", res.Status.Score)
	}
	if cx, cy := g.Bird().Box.Center(); cx != 400 || cy != 570 {
		t.Errorf("bird not reset: (%v, %v)", cx, cy)
	}
	if len(g.Bird().Credited()) != 0 {
		t.Error("credited set survived the reset")
	}
}

func TestFinishBonus(t *testing.T) {
	cfg := quietConfig()
	cfg.NumLanes = 2
	sounder := &fakeSounder{}
	g := startedGame(cfg, WithSounder(sounder))

	g.score = 200
	g.Bird().Credit(0)
	g.Bird().Credit(1)
	g.Bird().Box = core.NewBox(380, 100, 40, 40)

	res := g.Step(0.01, core.NewInputFrame())

	if res.Status.Score != 400 || res.Awarded != 200 {
		t.Errorf("score = %d (awarded %d), expected 400 (200)", res.Status.Score, res.Awarded)
	}
	if cx, cy := g.Bird().Box.Center(); cx != 400 || cy != 570 {
		t.Errorf("bird not back at start: (%v, %v)", cx, cy)
	}
	if len(g.Bird().Credited()) != 0 {
		t.Error("credited set not cleared after finish")
	}
	if len(sounder.played) != 1 || sounder.played[0] != SoundPoint {
		t.Errorf("sounds = %v", sounder.played)
	}
}

func TestFullCrossingScoresEveryLaneThenFinish(t *testing.T) {
	cfg := quietConfig()
	g := startedGame(cfg)

	finished := false
	for range 1000 {
		res := g.Step(1.0/60, hold(core.ActionUp))
		if res.Awarded == 2*cfg.PointsPerCross {
			finished = true
			break
		}
	}

	if !finished {
		t.Fatal("bird never reached the finish")
	}
	want := cfg.NumLanes*cfg.PointsPerCross + 2*cfg.PointsPerCross
	if got := g.Status().Score; got != want {
		t.Errorf("score = %d, expected %d", got, want)
	}
}

func TestDifficultyFollowsElapsedTime(t *testing.T) {
	g := startedGame(quietConfig())

	for range 360 {
		g.Step(0.125, core.NewInputFrame())
	}

	st := g.Status()
	if st.Elapsed != 45 {
		t.Fatalf("elapsed = %v, expected 45", st.Elapsed)
	}
	if want := math.Pow(1.08, 3); st.Multiplier != want {
		t.Errorf("multiplier = %v, expected %v", st.Multiplier, want)
	}
}

func TestHighScorePersistence(t *testing.T) {
	tests := []struct {
		name       string
		prior      int
		final      int
		wantSaved  bool
		wantRecord bool
		wantHigh   int
	}{
		{"beats record", 300, 500, true, true, 500},
		{"ties record", 500, 500, false, false, 500},
		{"below record", 800, 500, false, false, 800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.Lives = 1
			store := &fakeStore{highScore: tc.prior}
			g := startedGame(cfg, WithStore(store))
			g.score = tc.final

			g.Bird().Box = core.BoxFromCenter(400, 320, 40, 40)
			g.lanes[2].planes = append(g.lanes[2].planes, parkedPlane(g.Bird().Box, 2))
			res := g.Step(0.016, core.NewInputFrame())

			if res.Status.State != StateGameOver {
				t.Fatalf("state = %v", res.Status.State)
			}
			if saved := len(store.saves) == 1; saved != tc.wantSaved {
				t.Errorf("saved = %v (%v), expected %v", saved, store.saves, tc.wantSaved)
			}
			if tc.wantSaved && store.saves[0] != tc.final {
				t.Errorf("saved %d, expected %d", store.saves[0], tc.final)
			}
			if res.Status.NewRecord != tc.wantRecord {
				t.Errorf("NewRecord = %v", res.Status.NewRecord)
			}
			if res.Status.HighScore != tc.wantHigh {
				t.Errorf("HighScore = %d, expected %d", res.Status.HighScore, tc.wantHigh)
			}
		})
	}
}

func TestHighScoreWriteFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	cfg := quietConfig()
	cfg.Lives = 1
	store := &fakeStore{writeErr: errDisk}
	g := startedGame(cfg, WithStore(store), WithLogger(log.New(&buf)))
	g.score = 100

	g.Bird().Box = core.BoxFromCenter(400, 320, 40, 40)
	g.lanes[2].planes = append(g.lanes[2].planes, parkedPlane(g.Bird().Box, 2))
	res := g.Step(0.016, core.NewInputFrame())

	if res.Status.State != StateGameOver || res.Status.HighScore != 100 {
		t.Errorf("write failure should not change the outcome: %+v", res.Status)
	}
	if !strings.Contains(buf.String(), "cannot save high score") {
		t.Errorf("write failure not logged: %q", buf.String())
	}
}

func TestAbandonedSessionDoesNotSave(t *testing.T) {
	store := &fakeStore{}
	g := startedGame(quietConfig(), WithStore(store))
	g.score = 10_000

	g.Step(0, press(core.ActionBack))

	if g.State() != StateMenu {
		t.Fatalf("state = %v", g.State())
	}
	if len(store.saves) != 0 {
		t.Errorf("abandoned session saved %v", store.saves)
	}
}

func TestSoundToggle(t *testing.T) {
	cfg := quietConfig()
	cfg.NumLanes = 1
	sounder := &fakeSounder{}
	g := New(cfg, WithSounder(sounder), WithRand(&fakeRand{def: 0.5}))

	// Accepted in the menu.
	g.Step(0, press(core.ActionSound))
	if g.Status().SoundEnabled {
		t.Fatal("sound should be off")
	}

	g.Step(0, press(core.ActionConfirm))
	for g.Bird().Box.Top() > 300 {
		g.Step(0.05, hold(core.ActionUp))
	}
	if g.Status().Score == 0 {
		t.Fatal("expected a lane credit")
	}
	if len(sounder.played) != 0 {
		t.Errorf("muted game played %v", sounder.played)
	}
}

func TestSessionInvariants(t *testing.T) {
	cfg := config.Default()
	cfg.SpawnRate = 3
	store := &fakeStore{}
	rng := rand.New(rand.NewSource(99))
	g := New(cfg, WithStore(store), WithRand(rng))
	g.Step(0, press(core.ActionConfirm))

	moves := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	prevScore := 0
	prevHigh := g.Status().HighScore
	gameOvers := 0

	for tick := range 60 * 600 {
		in := core.NewInputFrame()
		if rng.Float64() < 0.8 {
			in.Hold(core.ActionUp)
		}
		in.Hold(moves[rng.Intn(len(moves))])

		wasPlaying := g.State() == StatePlaying
		res := g.Step(1.0/60, in)
		st := res.Status

		if st.Lives < 0 || st.Score < 0 {
			t.Fatalf("tick %d: negative lives or score: %+v", tick, st)
		}
		if st.Score < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", tick, prevScore, st.Score)
		}
		if st.HighScore < prevHigh {
			t.Fatalf("tick %d: high score decreased", tick)
		}
		if n := len(g.Bird().Credited()); n > cfg.NumLanes {
			t.Fatalf("tick %d: %d lanes credited", tick, n)
		}
		if wasPlaying && st.State == StateGameOver {
			gameOvers++
			if st.Lives != 0 {
				t.Fatalf("tick %d: game over with %d lives", tick, st.Lives)
			}
			g.Step(0, press(core.ActionRestart))
			prevScore = 0
		} else {
			prevScore = st.Score
		}
		prevHigh = st.HighScore
	}

	if gameOvers == 0 {
		t.Error("expected at least one game over with dense traffic")
	}
	if len(store.saves) > gameOvers {
		t.Errorf("saved %d times across %d sessions", len(store.saves), gameOvers)
	}
}
