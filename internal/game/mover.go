package game

import (
	"sort"

	"github.com/vovakirdan/birds-planes/internal/core"
)

// Bird animation timing.
const (
	BirdFrames        = 3
	BirdFrameInterval = 0.15 // seconds per frame
)

// Mover is anything with a position, a bounding box and a speed.
// Box.X/Box.Y is the top-left corner in world pixels.
type Mover struct {
	Box   core.Box
	Speed float64 // px/s
}

// Translate shifts the mover by (dx, dy).
func (m *Mover) Translate(dx, dy float64) {
	m.Box.X += dx
	m.Box.Y += dy
}

// SizeClass is the plane size category.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMed
	SizeLarge
)

// SizeClasses lists every class in spawn-weight order.
var SizeClasses = []SizeClass{SizeSmall, SizeMed, SizeLarge}

// spawnWeights are the size class probabilities, indexed by SizeClass.
var spawnWeights = [...]float64{0.5, 0.35, 0.15}

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMed:
		return "med"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Dimensions returns the plane width and height in pixels.
func (s SizeClass) Dimensions() (w, h float64) {
	switch s {
	case SizeSmall:
		return 50, 25
	case SizeLarge:
		return 90, 45
	default:
		return 70, 35
	}
}

// pickSizeClass draws a class from the weighted distribution.
func pickSizeClass(r Rand) SizeClass {
	x := r.Float64()
	acc := 0.0
	for _, s := range SizeClasses {
		acc += spawnWeights[s]
		if x < acc {
			return s
		}
	}
	return SizeLarge
}

// Plane is an obstacle flying along one lane. Its direction never changes.
type Plane struct {
	Mover
	Size SizeClass
	Dir  int // +1 moves right, -1 moves left
	Lane int
}

// Advance moves the plane along its direction.
func (p *Plane) Advance(dt float64) {
	p.Translate(p.Speed*float64(p.Dir)*dt, 0)
}

// OffScreen reports whether the plane has fully left the screen on its
// exit side.
func (p *Plane) OffScreen(screenW float64) bool {
	if p.Dir > 0 {
		return p.Box.Left() > screenW
	}
	return p.Box.Right() < 0
}

// Bird is the player.
type Bird struct {
	Mover
	credited  map[int]bool
	frame     int
	animTimer float64
}

// NewBird creates a bird of the given size centered on (cx, cy).
func NewBird(cx, cy, size, speed float64) *Bird {
	return &Bird{
		Mover: Mover{
			Box:   core.BoxFromCenter(cx, cy, size, size),
			Speed: speed,
		},
		credited: make(map[int]bool),
	}
}

// Move applies held directions for dt seconds, then clamps the bird into
// bounds and keeps its bottom edge at or above floor.
// Right overrides left and down overrides up when both are held.
func (b *Bird) Move(dt float64, in core.InputFrame, bounds core.Box, floor float64) {
	var dx, dy float64
	if in.IsHeld(core.ActionLeft) {
		dx = -b.Speed * dt
	}
	if in.IsHeld(core.ActionRight) {
		dx = b.Speed * dt
	}
	if in.IsHeld(core.ActionUp) {
		dy = -b.Speed * dt
	}
	if in.IsHeld(core.ActionDown) {
		dy = b.Speed * dt
	}
	b.Translate(dx, dy)

	b.Box = b.Box.ClampInto(bounds)
	if b.Box.Bottom() > floor {
		b.Box.Y = floor - b.Box.H
	}

	b.animTimer += dt
	if b.animTimer >= BirdFrameInterval {
		b.animTimer = 0
		b.frame = (b.frame + 1) % BirdFrames
	}
}

// ResetTo recenters the bird on (cx, cy) and forgets credited lanes.
func (b *Bird) ResetTo(cx, cy float64) {
	b.Box = core.BoxFromCenter(cx, cy, b.Box.W, b.Box.H)
	clear(b.credited)
}

// Credit marks a lane as scored for this run. It returns false if the lane
// was already credited.
func (b *Bird) Credit(lane int) bool {
	if b.credited[lane] {
		return false
	}
	b.credited[lane] = true
	return true
}

// IsCredited reports whether the lane was scored during this run.
func (b *Bird) IsCredited(lane int) bool {
	return b.credited[lane]
}

// Credited returns the credited lane indices in ascending order.
func (b *Bird) Credited() []int {
	out := make([]int, 0, len(b.credited))
	for lane := range b.credited {
		out = append(out, lane)
	}
	sort.Ints(out)
	return out
}

// Frame returns the current animation frame.
func (b *Bird) Frame() int {
	return b.frame
}
