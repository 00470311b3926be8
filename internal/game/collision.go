package game

import "github.com/vovakirdan/birds-planes/internal/core"

// Hitboxes holds the per-axis shrink applied before overlap tests, so
// collisions are more forgiving than the drawn sprites.
type Hitboxes struct {
	BirdInset  float64
	PlaneInset float64
}

// FindCollision returns the first plane whose hitbox overlaps the bird's,
// scanning lanes top to bottom and planes in spawn order.
func FindCollision(bird core.Box, lanes []*Lane, hb Hitboxes) (*Plane, bool) {
	birdHit := bird.Inset(hb.BirdInset, hb.BirdInset)
	for _, lane := range lanes {
		for _, p := range lane.Planes() {
			if birdHit.Intersects(p.Box.Inset(hb.PlaneInset, hb.PlaneInset)) {
				return p, true
			}
		}
	}
	return nil, false
}

// CurrentLane returns the index of the first lane whose strip overlaps the
// bird, or -1 when the bird is between or outside the lanes.
func CurrentLane(bird core.Box, lanes []*Lane) int {
	for _, lane := range lanes {
		if lane.Bounds().Intersects(bird) {
			return lane.Index()
		}
	}
	return -1
}

// CrossKind classifies a lane-cross check.
type CrossKind int

const (
	CrossNone   CrossKind = iota
	CrossLane             // entered a lane not yet credited this run
	CrossFinish           // reached the finish zone
)

// Crossing is the outcome of one lane-cross check.
type Crossing struct {
	Kind CrossKind
	Lane int // for CrossLane
}

// CheckCrossing decides what the bird earned this tick. Reaching the finish
// line wins over crediting a lane. It does not mutate the bird.
func CheckCrossing(b *Bird, lanes []*Lane, finishLine float64) Crossing {
	if b.Box.Top() <= finishLine {
		return Crossing{Kind: CrossFinish, Lane: -1}
	}
	lane := CurrentLane(b.Box, lanes)
	if lane >= 0 && !b.IsCredited(lane) {
		return Crossing{Kind: CrossLane, Lane: lane}
	}
	return Crossing{Kind: CrossNone, Lane: -1}
}
