package game

import (
	"testing"

	"github.com/vovakirdan/birds-planes/internal/core"
)

var screen = core.NewBox(0, 0, 800, 600)

func TestBirdMove(t *testing.T) {
	tests := []struct {
		name   string
		held   []core.Action
		wantDx float64
		wantDy float64
	}{
		{"idle", nil, 0, 0},
		{"up", []core.Action{core.ActionUp}, 0, -20},
		{"left", []core.Action{core.ActionLeft}, -20, 0},
		{"right overrides left", []core.Action{core.ActionLeft, core.ActionRight}, 20, 0},
		{"down overrides up", []core.Action{core.ActionUp, core.ActionDown}, 0, 20},
		{"diagonal", []core.Action{core.ActionUp, core.ActionRight}, 20, -20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBird(400, 300, 40, 200)
			x0, y0 := b.Box.X, b.Box.Y

			b.Move(0.1, hold(tc.held...), screen, 580)

			if dx := b.Box.X - x0; dx < tc.wantDx-1e-9 || dx > tc.wantDx+1e-9 {
				t.Errorf("dx = %v, expected %v", dx, tc.wantDx)
			}
			if dy := b.Box.Y - y0; dy < tc.wantDy-1e-9 || dy > tc.wantDy+1e-9 {
				t.Errorf("dy = %v, expected %v", dy, tc.wantDy)
			}
		})
	}
}

func TestBirdClampedToScreen(t *testing.T) {
	b := NewBird(25, 25, 40, 200)
	b.Move(1, hold(core.ActionLeft, core.ActionUp), screen, 580)

	if b.Box.X != 0 || b.Box.Y != 0 {
		t.Errorf("bird escaped the top-left corner: %+v", b.Box)
	}

	b = NewBird(780, 300, 40, 200)
	b.Move(1, hold(core.ActionRight), screen, 580)
	if b.Box.Right() != 800 {
		t.Errorf("bird escaped the right edge: %+v", b.Box)
	}
}

func TestBirdFloor(t *testing.T) {
	// Start position: centered in the 60px safe zone of a 600px screen.
	b := NewBird(400, 570, 40, 200)
	if b.Box.Bottom() != 590 {
		t.Fatalf("start bottom = %v", b.Box.Bottom())
	}

	b.Move(0.016, hold(core.ActionDown), screen, 580)
	if b.Box.Bottom() != 580 {
		t.Errorf("bottom = %v, expected the floor at 580", b.Box.Bottom())
	}
}

func TestBirdAnimation(t *testing.T) {
	b := NewBird(400, 300, 40, 200)
	var frames []int
	for range 4 {
		b.Move(BirdFrameInterval, core.NewInputFrame(), screen, 580)
		frames = append(frames, b.Frame())
	}

	want := []int{1, 2, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, expected %v", frames, want)
		}
	}
}

func TestBirdCredit(t *testing.T) {
	b := NewBird(400, 570, 40, 200)

	if !b.Credit(2) {
		t.Error("first credit should succeed")
	}
	if b.Credit(2) {
		t.Error("lane credited twice")
	}
	b.Credit(0)

	got := b.Credited()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Credited() = %v, expected [0 2]", got)
	}

	b.Translate(0, -300)
	b.ResetTo(400, 570)
	if len(b.Credited()) != 0 {
		t.Error("ResetTo should clear credited lanes")
	}
	if cx, cy := b.Box.Center(); cx != 400 || cy != 570 {
		t.Errorf("center after reset = (%v, %v)", cx, cy)
	}
}

func TestPlaneOffScreen(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		dir  int
		want bool
	}{
		{"right-mover still visible", 800, 1, false},
		{"right-mover gone", 800.5, 1, true},
		{"right-mover entering", -50, 1, false},
		{"left-mover still visible", -50, -1, false},
		{"left-mover gone", -50.5, -1, true},
		{"left-mover entering", 800, -1, false},
	}

	for _, tc := range tests {
		p := parkedPlane(core.NewBox(tc.x, 0, 50, 25), 0)
		p.Dir = tc.dir
		if got := p.OffScreen(800); got != tc.want {
			t.Errorf("%s: OffScreen() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestSizeClassDimensions(t *testing.T) {
	tests := []struct {
		size SizeClass
		name string
		w, h float64
	}{
		{SizeSmall, "small", 50, 25},
		{SizeMed, "med", 70, 35},
		{SizeLarge, "large", 90, 45},
	}
	for _, tc := range tests {
		w, h := tc.size.Dimensions()
		if w != tc.w || h != tc.h || tc.size.String() != tc.name {
			t.Errorf("%v: got %s %vx%v", tc.size, tc.size, w, h)
		}
	}
}
