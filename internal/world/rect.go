package world

import "fmt"

// Rect is an axis-aligned rectangle used as a room's bounding box.
//
// The floor carved for a room is the interior X1+1..X2 by Y1+1..Y2, both
// bounds inclusive: there is a wall margin along X1/Y1 but not along X2/Y2.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // X1+width, Y1+height
}

// NewRect creates a rectangle from an origin and a size.
// It panics if width or height is not positive.
func NewRect(x, y, width, height int) Rect {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: degenerate rect %dx%d at (%d,%d)", width, height, x, y))
	}
	return Rect{
		X1: x,
		Y1: y,
		X2: x + width,
		Y2: y + height,
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersect returns true if the closed spans of both rectangles overlap on
// both axes. Rectangles that only share an edge intersect.
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}

// Contains returns true if the point is on the rectangle's carved interior.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}
