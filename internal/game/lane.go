package game

import (
	"github.com/vovakirdan/birds-planes/internal/config"
	"github.com/vovakirdan/birds-planes/internal/core"
)

// Lane is one horizontal strip of the play area. It owns its planes and
// decides when new ones enter.
type Lane struct {
	index   int
	centerY float64
	height  float64
	dir     int

	planes []*Plane // spawn order
	timer  float64  // seconds until the next spawn attempt

	screenW   float64
	spawnRate float64
	minSpeed  float64
	maxSpeed  float64
	minDist   float64
	jitter    float64

	rng Rand
}

// NewLane creates lane index centered at centerY. Even lanes fly right,
// odd lanes fly left. The first spawn attempt is staggered uniformly in
// [0, 1/spawnRate).
func NewLane(index int, centerY, height float64, cfg config.Config, rng Rand) *Lane {
	dir := 1
	if index%2 == 1 {
		dir = -1
	}
	l := &Lane{
		index:     index,
		centerY:   centerY,
		height:    height,
		dir:       dir,
		screenW:   float64(cfg.ScreenWidth),
		spawnRate: cfg.SpawnRate,
		minSpeed:  cfg.MinPlaneSpeed(),
		maxSpeed:  cfg.MaxPlaneSpeed(),
		minDist:   cfg.MinSpawnDistancePx,
		jitter:    cfg.SpawnJitter,
		rng:       rng,
	}
	l.timer = uniform(rng, 0, 1/l.spawnRate)
	return l
}

// Index returns the lane position, 0 at the top.
func (l *Lane) Index() int { return l.index }

// Direction returns +1 or -1.
func (l *Lane) Direction() int { return l.dir }

// CenterY returns the vertical center of the lane.
func (l *Lane) CenterY() float64 { return l.centerY }

// SpawnTimer returns the seconds left before the next spawn attempt.
func (l *Lane) SpawnTimer() float64 { return l.timer }

// Planes returns the resident planes in spawn order. Callers must not
// modify the slice.
func (l *Lane) Planes() []*Plane { return l.planes }

// Bounds returns the lane strip across the full screen width.
func (l *Lane) Bounds() core.Box {
	return core.NewBox(0, l.centerY-l.height/2, l.screenW, l.height)
}

// Update advances the lane by dt seconds at difficulty multiplier m and
// returns the planes spawned during this call.
func (l *Lane) Update(dt, m float64) []*Plane {
	kept := l.planes[:0]
	for _, p := range l.planes {
		p.Advance(dt)
		if !p.OffScreen(l.screenW) {
			kept = append(kept, p)
		}
	}
	clear(l.planes[len(kept):])
	l.planes = kept

	l.timer -= dt
	if l.timer > 0 {
		return nil
	}

	l.timer = 1/(l.spawnRate*m) + uniform(l.rng, -l.jitter, l.jitter)
	if !l.canSpawn() {
		return nil
	}

	p := l.spawn(m)
	l.planes = append(l.planes, p)
	return []*Plane{p}
}

// canSpawn reports whether the spawn edge is clear of resident planes by
// at least the minimum spawn distance.
func (l *Lane) canSpawn() bool {
	for _, p := range l.planes {
		if l.dir > 0 && p.Box.Left() < l.minDist {
			return false
		}
		if l.dir < 0 && p.Box.Right() > l.screenW-l.minDist {
			return false
		}
	}
	return true
}

func (l *Lane) spawn(m float64) *Plane {
	speed := uniform(l.rng, l.minSpeed*m, l.maxSpeed*m)
	size := pickSizeClass(l.rng)
	w, h := size.Dimensions()

	x := -w // right edge on 0
	if l.dir < 0 {
		x = l.screenW
	}

	return &Plane{
		Mover: Mover{
			Box:   core.NewBox(x, l.centerY-h/2, w, h),
			Speed: speed,
		},
		Size: size,
		Dir:  l.dir,
		Lane: l.index,
	}
}

// Clear removes every plane. The spawn timer keeps running.
func (l *Lane) Clear() {
	clear(l.planes)
	l.planes = l.planes[:0]
}
