// Package core provides fundamental types shared by the game logic and the
// frontends. It has no external dependencies so game rules stay pure and
// testable.
package core

// Box is an axis-aligned bounding box in world (pixel) coordinates.
// X, Y is the top-left corner; Y grows downward.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxFromCenter creates a box of the given size centered on (cx, cy).
func BoxFromCenter(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports whether two boxes overlap.
// Boxes that only share an edge do not overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Inset shrinks the box by dx in total width and dy in total height,
// keeping its center. Size never drops below zero.
func (b Box) Inset(dx, dy float64) Box {
	cx, cy := b.Center()
	w := b.W - dx
	h := b.H - dy
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return BoxFromCenter(cx, cy, w, h)
}

// ClampInto moves the box so it lies inside bounds.
// A box larger than bounds is aligned to the bounds' top-left corner.
func (b Box) ClampInto(bounds Box) Box {
	if b.Right() > bounds.Right() {
		b.X = bounds.Right() - b.W
	}
	if b.X < bounds.X {
		b.X = bounds.X
	}
	if b.Bottom() > bounds.Bottom() {
		b.Y = bounds.Bottom() - b.H
	}
	if b.Y < bounds.Y {
		b.Y = bounds.Y
	}
	return b
}

// Rect is an integer rectangle in screen cells, used by the terminal renderer.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
