package world

import (
	"errors"
	"fmt"
	"iter"
)

const (
	// GridWidth is the fixed number of columns in a tile grid.
	GridWidth = 80
	// GridHeight is the fixed number of rows in a tile grid.
	GridHeight = 50
	// GridSize is the number of cells in a tile grid.
	GridSize = GridWidth * GridHeight
)

// ErrOutOfBounds is returned when a carve would touch a cell outside the grid.
var ErrOutOfBounds = errors.New("coordinate outside tile grid")

// OutOfBoundsError describes an invalid grid coordinate.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("(%d,%d) outside %dx%d tile grid", e.X, e.Y, GridWidth, GridHeight)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// TileGrid is a dense row-major grid of tiles with fixed dimensions.
type TileGrid struct {
	tiles [GridSize]Tile
}

// NewTileGrid creates a grid with every cell set to TileWall.
func NewTileGrid() *TileGrid {
	// TileWall is the zero value, so the array is already all walls.
	return &TileGrid{}
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < GridWidth && y >= 0 && y < GridHeight
}

// Index returns the flat index of (x, y).
// It panics with an *OutOfBoundsError if the coordinate is outside the grid.
func (g *TileGrid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y})
	}
	return y*GridWidth + x
}

// XY returns the coordinate of a flat index.
func (g *TileGrid) XY(idx int) (int, int) {
	return idx % GridWidth, idx / GridWidth
}

// Get returns the tile at (x, y).
func (g *TileGrid) Get(x, y int) Tile {
	return g.tiles[g.Index(x, y)]
}

// Set stores a tile at (x, y).
func (g *TileGrid) Set(x, y int, tile Tile) {
	g.tiles[g.Index(x, y)] = tile
}

// Len returns the number of cells in the grid.
func (g *TileGrid) Len() int {
	return len(g.tiles)
}

// At returns the tile at a flat index.
func (g *TileGrid) At(idx int) Tile {
	return g.tiles[idx]
}

// Cells iterates over every cell in row-major order.
func (g *TileGrid) Cells() iter.Seq2[int, Tile] {
	return func(yield func(int, Tile) bool) {
		for i, t := range g.tiles {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Count returns how many cells hold the given tile.
func (g *TileGrid) Count(tile Tile) int {
	n := 0
	for _, t := range g.tiles {
		if t == tile {
			n++
		}
	}
	return n
}

// FillRectInterior sets the carved interior of r to floor.
// Nothing is written if any interior cell lies outside the grid.
func (g *TileGrid) FillRectInterior(r Rect) error {
	if err := g.checkSpan(r.X1+1, r.X2, r.Y1+1, r.Y2); err != nil {
		return fmt.Errorf("fill room %v: %w", r, err)
	}
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			g.tiles[y*GridWidth+x] = TileFloor
		}
	}
	return nil
}

// checkSpan validates the inclusive box x1..x2 by y1..y2 (x1 <= x2, y1 <= y2).
func (g *TileGrid) checkSpan(x1, x2, y1, y2 int) error {
	if !g.InBounds(x1, y1) {
		return &OutOfBoundsError{X: x1, Y: y1}
	}
	if !g.InBounds(x2, y2) {
		return &OutOfBoundsError{X: x2, Y: y2}
	}
	return nil
}
