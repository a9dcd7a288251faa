package world

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrows/internal/logger"
	"github.com/samdwyer/dungeonrows/internal/telemetry"
)

// Layout names a map building strategy.
type Layout string

const (
	LayoutClustered Layout = "clustered" // Rows of rooms, see Generate
	LayoutScatter   Layout = "scatter"   // Rooms dropped anywhere, see ScatterRooms
	LayoutTest      Layout = "test"      // Open floor with random walls, see GenerateTestMap
)

const (
	// Number of wall splats in the test map.
	testMapWalls = 400

	// Far edge of the scatter placement range on each axis.
	scatterMargin = MaxRoomSize + 1
)

// ParseLayout converts a layout name. The empty string selects LayoutClustered.
func ParseLayout(name string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(name))); l {
	case "":
		return LayoutClustered, nil
	case LayoutClustered, LayoutScatter, LayoutTest:
		return l, nil
	default:
		return "", fmt.Errorf("unknown layout %q", name)
	}
}

// Build runs the builder selected by layout.
func (g *Generator) Build(ctx context.Context, layout Layout, roomCount int) (*Dungeon, error) {
	switch layout {
	case "", LayoutClustered:
		return g.Generate(ctx, roomCount)
	case LayoutScatter:
		return g.ScatterRooms(ctx, roomCount), nil
	case LayoutTest:
		return g.GenerateTestMap(ctx), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", layout)
	}
}

// ScatterRooms places roomCount rooms at uniformly random positions with no
// overlap test and joins each room to the previous one with an L-shaped
// tunnel. Positions are drawn so every room fits inside the grid.
func (g *Generator) ScatterRooms(ctx context.Context, roomCount int) *Dungeon {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.scatter")
	defer span.End()

	b := &layoutBuilder{
		rng:     rand.New(rand.NewSource(g.seed)),
		dungeon: newDungeon(g.seed),
	}

	for i := 0; i < roomCount; i++ {
		w, h := b.roomSize()
		x := b.intRange(0, GridWidth-scatterMargin)
		y := b.intRange(0, GridHeight-scatterMargin)
		room := NewRect(x, y, w, h)
		b.dungeon.Stats.Candidates++

		// Rooms and tunnels stay inside the grid, so carving cannot fail.
		if err := b.dungeon.Grid.FillRectInterior(room); err != nil {
			panic(err)
		}
		if len(b.dungeon.Rooms) > 0 {
			if err := b.connect(b.dungeon.Rooms[len(b.dungeon.Rooms)-1], room); err != nil {
				panic(err)
			}
		}
		b.dungeon.Rooms = append(b.dungeon.Rooms, room)
	}

	d := b.dungeon
	span.SetAttributes(
		attribute.String("dungeon.id", d.ID.String()),
		attribute.Int64("dungeon.seed", g.seed),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
	)
	logger.Debug("scattered rooms", "id", d.ID.String(), "seed", g.seed, "rooms", len(d.Rooms))
	return d
}

// GenerateTestMap builds a roomless open map: floor everywhere, walls on the
// outer edge, and testMapWalls random wall tiles. The map center is always
// left as floor so a player can start there.
func (g *Generator) GenerateTestMap(ctx context.Context) *Dungeon {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.test_map")
	defer span.End()

	rng := rand.New(rand.NewSource(g.seed))
	d := newDungeon(g.seed)

	for i := range d.Grid.Len() {
		x, y := d.Grid.XY(i)
		if x == 0 || y == 0 || x == GridWidth-1 || y == GridHeight-1 {
			continue
		}
		d.Grid.Set(x, y, TileFloor)
	}

	spawn := d.Grid.Index(GridWidth/2, GridHeight/2)
	for range testMapWalls {
		x := 1 + rng.Intn(GridWidth-1)
		y := 1 + rng.Intn(GridHeight-1)
		if idx := d.Grid.Index(x, y); idx != spawn {
			d.Grid.Set(x, y, TileWall)
		}
	}

	span.SetAttributes(
		attribute.String("dungeon.id", d.ID.String()),
		attribute.Int64("dungeon.seed", g.seed),
	)
	return d
}
