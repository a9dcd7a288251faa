// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileWall represents an impassable wall tile. It is the zero value.
	TileWall Tile = iota
	// TileFloor represents a passable floor tile.
	TileFloor
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
