package world

import "fmt"

// CarveHorizontal sets every cell from min(x1,x2) to max(x1,x2) on row y to floor.
// It returns an error wrapping ErrOutOfBounds, without carving, if any cell
// of the segment lies outside the grid.
func CarveHorizontal(grid *TileGrid, x1, x2, y int) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if err := grid.checkSpan(x1, x2, y, y); err != nil {
		return fmt.Errorf("horizontal tunnel x=%d..%d y=%d: %w", x1, x2, y, err)
	}
	for x := x1; x <= x2; x++ {
		grid.Set(x, y, TileFloor)
	}
	return nil
}

// CarveVertical sets every cell from min(y1,y2) to max(y1,y2) on column x to floor.
// It returns an error wrapping ErrOutOfBounds, without carving, if any cell
// of the segment lies outside the grid.
func CarveVertical(grid *TileGrid, y1, y2, x int) error {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if err := grid.checkSpan(x, x, y1, y2); err != nil {
		return fmt.Errorf("vertical tunnel x=%d y=%d..%d: %w", x, y1, y2, err)
	}
	for y := y1; y <= y2; y++ {
		grid.Set(x, y, TileFloor)
	}
	return nil
}
