package tui

import (
	"github.com/vovakirdan/birds-planes/internal/core"
	"github.com/vovakirdan/birds-planes/internal/game"
)

// Sprite is a single-row glyph strip.
type Sprite struct {
	Runes []rune
	Color core.Color
}

// Width returns the sprite width in cells.
func (s Sprite) Width() int { return len(s.Runes) }

type spriteKey struct {
	size game.SizeClass
	dir  int
}

// SpriteCache builds plane sprites on first use and keeps them per
// (size class, direction). Sprites depend on the horizontal scale, so a
// scale change empties the cache.
type SpriteCache struct {
	scale   float64 // cells per world pixel
	sprites map[spriteKey]Sprite
	builds  int
}

// NewSpriteCache creates an empty cache for the given scale.
func NewSpriteCache(scale float64) *SpriteCache {
	return &SpriteCache{
		scale:   scale,
		sprites: make(map[spriteKey]Sprite),
	}
}

// SetScale changes the horizontal scale, dropping stale sprites.
func (c *SpriteCache) SetScale(scale float64) {
	if scale == c.scale {
		return
	}
	c.scale = scale
	clear(c.sprites)
}

// Plane returns the sprite for a plane class flying in dir.
func (c *SpriteCache) Plane(size game.SizeClass, dir int) Sprite {
	k := spriteKey{size: size, dir: dir}
	if s, ok := c.sprites[k]; ok {
		return s
	}
	s := c.buildPlane(size, dir)
	c.sprites[k] = s
	c.builds++
	return s
}

// Len returns the number of cached sprites.
func (c *SpriteCache) Len() int { return len(c.sprites) }

func (c *SpriteCache) buildPlane(size game.SizeClass, dir int) Sprite {
	w, _ := size.Dimensions()
	n := int(w*c.scale + 0.5)
	if n < 2 {
		n = 2
	}

	body := '-'
	switch size {
	case game.SizeMed:
		body = '='
	case game.SizeLarge:
		body = '≡'
	}

	// Drawn flying right, mirrored for left-moving lanes.
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = body
	}
	runes[0] = '╘'
	runes[n-1] = '▶'
	if n >= 4 {
		runes[n/2-1] = '╤'
	}

	if dir < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = mirror(runes[j]), mirror(runes[i])
		}
		if n%2 == 1 {
			runes[n/2] = mirror(runes[n/2])
		}
	}

	return Sprite{Runes: runes, Color: core.PlaneColor(int(size))}
}

func mirror(r rune) rune {
	switch r {
	case '▶':
		return '◀'
	case '◀':
		return '▶'
	case '╘':
		return '╛'
	case '╛':
		return '╘'
	}
	return r
}

// birdFrames are the wing positions of the bird animation.
var birdFrames = [game.BirdFrames]string{`\o/`, `-o-`, `/o\`}
