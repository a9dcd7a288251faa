package world

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Dungeon is the result of one generation run: the carved grid and the rooms
// placed on it, in placement order.
type Dungeon struct {
	ID    uuid.UUID // Identifies this layout in logs and traces
	Seed  int64     // Seed the layout was generated from
	Grid  *TileGrid
	Rooms []Rect

	// BaseRooms holds the index into Rooms of each row's first room.
	// Base rooms are placed without an overlap test.
	BaseRooms []int
	Stats     GenerationStats
}

// newDungeon creates an empty dungeon with an all-wall grid.
func newDungeon(seed int64) *Dungeon {
	return &Dungeon{
		ID:    uuid.New(),
		Seed:  seed,
		Grid:  NewTileGrid(),
		Rooms: make([]Rect, 0),
	}
}

// Width returns the number of columns in the dungeon.
func (d *Dungeon) Width() int {
	return GridWidth
}

// Height returns the number of rows in the dungeon.
func (d *Dungeon) Height() int {
	return GridHeight
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return d.GetTile(x, y).IsPassable()
}

// GetTile returns the tile at the given position.
// Positions outside the grid read as walls.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.Grid.InBounds(x, y) {
		return TileWall
	}
	return d.Grid.Get(x, y)
}

// Spawn returns the player start position, the center of the first room.
// ok is false when no rooms were generated.
func (d *Dungeon) Spawn() (x, y int, ok bool) {
	if len(d.Rooms) == 0 {
		return 0, 0, false
	}
	x, y = d.Rooms[0].Center()
	return x, y, true
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random passable point within the specified room.
func (d *Dungeon) RandomPointInRoom(rng *rand.Rand, roomIndex int) (int, int) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return -1, -1
	}
	room := d.Rooms[roomIndex]

	// Try random points until we find a passable one (max 100 attempts)
	for i := 0; i < 100; i++ {
		x := room.X1 + 1 + rng.Intn(room.Width())
		y := room.Y1 + 1 + rng.Intn(room.Height())
		if d.IsPassable(x, y) {
			return x, y
		}
	}

	// Fallback to room center
	return room.Center()
}

// String renders the grid as text, one line per row, '#' for walls and '.' for floors.
func (d *Dungeon) String() string {
	var sb strings.Builder
	sb.Grow(GridSize + GridHeight)
	for i, tile := range d.Grid.Cells() {
		if tile == TileFloor {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('#')
		}
		if (i+1)%GridWidth == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
