package world

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonrows/internal/logger"
	"github.com/samdwyer/dungeonrows/internal/telemetry"
)

const (
	// Room dimensions are drawn from [MinRoomSize, MaxRoomSize).
	MinRoomSize = 6
	MaxRoomSize = 10

	// The first room of the first row is anchored here.
	firstRoomX = 10
	firstRoomY = 5

	// Perpendicular jitter applied by side-relative placement.
	placementJitter = 3
)

// Side selects which edge of a reference room a new room is placed against.
type Side int

const (
	SideUp Side = iota
	SideLeft
	SideBelow
	SideRight
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideLeft:
		return "left"
	case SideBelow:
		return "below"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// GenerationStats records what happened during one generation run.
type GenerationStats struct {
	Rows       int // Rows of rooms attempted
	Candidates int // Column rooms evaluated
	Rejected   int // Column rooms discarded because they overlapped
	Tunnels    int // Straight tunnel segments carved
}

// RowCount returns how many rows of rooms are laid out for a room budget.
// The same number bounds the column attempts made in each row.
func RowCount(roomCount int) int {
	if roomCount <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(roomCount)))
}

// Generator lays out rows of rooms joined by L-shaped tunnels.
type Generator struct {
	seed int64
}

// NewGenerator creates a generator for the given seed.
// A seed of 0 means a random seed will be generated.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{seed: seed}
}

// Seed returns the seed every Generate call starts from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds a new dungeon with at most roomCount rooms.
//
// Every call starts from a fresh all-wall grid and an rng reseeded from the
// generator's seed, so repeated calls return identical layouts. If carving
// would leave the grid the run is aborted and an error wrapping
// ErrOutOfBounds is returned with no dungeon.
func (g *Generator) Generate(ctx context.Context, roomCount int) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	b := &layoutBuilder{
		rng:     rand.New(rand.NewSource(g.seed)),
		dungeon: newDungeon(g.seed),
	}
	if err := b.build(roomCount); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("generate dungeon (seed %d): %w", g.seed, err)
	}

	d := b.dungeon
	if len(d.Rooms) > max(roomCount, 0) {
		panic(fmt.Sprintf("world: placed %d rooms for a budget of %d", len(d.Rooms), roomCount))
	}

	// Record telemetry
	span.SetAttributes(
		attribute.String("dungeon.id", d.ID.String()),
		attribute.Int64("dungeon.seed", g.seed),
		attribute.Int("dungeon.room_budget", roomCount),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.rows", d.Stats.Rows),
		attribute.Int("dungeon.rejected", d.Stats.Rejected),
		attribute.Int("dungeon.tunnels", d.Stats.Tunnels),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	logger.Debug("dungeon generated",
		"id", d.ID.String(),
		"seed", g.seed,
		"rooms", len(d.Rooms),
		"rejected", d.Stats.Rejected,
	)

	return d, nil
}

// layoutBuilder holds the state of a single generation run.
type layoutBuilder struct {
	rng     *rand.Rand
	dungeon *Dungeon
}

// build runs the row and column placement passes.
func (b *layoutBuilder) build(roomCount int) error {
	rows := RowCount(roomCount)
	b.dungeon.Stats.Rows = rows

	var base Rect
	for row := 0; row < rows && len(b.dungeon.Rooms) < roomCount; row++ {
		w, h := b.roomSize()

		if row == 0 {
			base = NewRect(firstRoomX-w/2, firstRoomY, w, h)
		} else {
			var err error
			if base, err = b.startRow(base, w, h); err != nil {
				return err
			}
		}

		b.dungeon.BaseRooms = append(b.dungeon.BaseRooms, len(b.dungeon.Rooms))
		if err := b.addRoom(base); err != nil {
			return err
		}

		if err := b.buildRow(row, base, rows, roomCount); err != nil {
			return err
		}
	}

	return nil
}

// startRow places a w by h base room below prev and tunnels down to it from
// prev's center row.
func (b *layoutBuilder) startRow(prev Rect, w, h int) (Rect, error) {
	x, y := b.place(SideBelow, prev)
	base := NewRect(x, y+1, w, h)

	_, prevY := prev.Center()
	newX, newY := base.Center()
	if err := b.carveVertical(prevY, newY, newX); err != nil {
		return Rect{}, err
	}
	return base, nil
}

// buildRow places up to attempts rooms to the right of base.
func (b *layoutBuilder) buildRow(row int, base Rect, attempts, roomCount int) error {
	border := base
	for col := 0; col < attempts && len(b.dungeon.Rooms) < roomCount; col++ {
		x, y := b.place(SideRight, border)
		w, h := b.roomSize()
		candidate := NewRect(x, y, w, h)
		b.dungeon.Stats.Candidates++

		if b.overlapsAny(candidate) {
			b.dungeon.Stats.Rejected++
			logger.Debug("room candidate rejected",
				"row", row, "col", col,
				"x1", candidate.X1, "y1", candidate.Y1,
				"x2", candidate.X2, "y2", candidate.Y2,
			)
		} else {
			prev := b.dungeon.Rooms[len(b.dungeon.Rooms)-1]
			if err := b.dungeon.Grid.FillRectInterior(candidate); err != nil {
				return err
			}
			if err := b.connect(prev, candidate); err != nil {
				return err
			}
			b.dungeon.Rooms = append(b.dungeon.Rooms, candidate)
		}

		// The next attempt is placed against this candidate even if it was rejected.
		border = candidate
	}
	return nil
}

// addRoom carves a room's interior and appends it to the room list.
func (b *layoutBuilder) addRoom(room Rect) error {
	if err := b.dungeon.Grid.FillRectInterior(room); err != nil {
		return err
	}
	b.dungeon.Rooms = append(b.dungeon.Rooms, room)
	return nil
}

// overlapsAny returns true if r intersects any room placed so far.
func (b *layoutBuilder) overlapsAny(r Rect) bool {
	for _, other := range b.dungeon.Rooms {
		if r.Intersect(other) {
			return true
		}
	}
	return false
}

// connect carves an L-shaped corridor between the centers of two rooms.
func (b *layoutBuilder) connect(from, to Rect) error {
	prevX, prevY := from.Center()
	newX, newY := to.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if b.rng.Intn(2) == 1 {
		if err := b.carveHorizontal(prevX, newX, prevY); err != nil {
			return err
		}
		return b.carveVertical(prevY, newY, newX)
	}
	if err := b.carveVertical(prevY, newY, prevX); err != nil {
		return err
	}
	return b.carveHorizontal(prevX, newX, newY)
}

func (b *layoutBuilder) carveHorizontal(x1, x2, y int) error {
	b.dungeon.Stats.Tunnels++
	return CarveHorizontal(b.dungeon.Grid, x1, x2, y)
}

func (b *layoutBuilder) carveVertical(y1, y2, x int) error {
	b.dungeon.Stats.Tunnels++
	return CarveVertical(b.dungeon.Grid, y1, y2, x)
}

// roomSize draws a room width and height.
func (b *layoutBuilder) roomSize() (int, int) {
	return b.intRange(MinRoomSize, MaxRoomSize), b.intRange(MinRoomSize, MaxRoomSize)
}

// place returns a position just beyond the given side of ref, jittered along
// the other axis.
func (b *layoutBuilder) place(side Side, ref Rect) (int, int) {
	switch side {
	case SideUp:
		return b.intRange(ref.X1-placementJitter, ref.X2+placementJitter), ref.Y1 - 1
	case SideLeft:
		return ref.X1 - 1, b.intRange(ref.Y1-placementJitter, ref.Y2+placementJitter)
	case SideBelow:
		return b.intRange(ref.X1-placementJitter, ref.X1+placementJitter), ref.Y2 + 1
	case SideRight:
		return ref.X2 + 1, b.intRange(ref.Y1-placementJitter, ref.Y1+placementJitter)
	default:
		panic(fmt.Sprintf("world: unknown side %d", side))
	}
}

// intRange returns a uniform integer in [lo, hi).
func (b *layoutBuilder) intRange(lo, hi int) int {
	return lo + b.rng.Intn(hi-lo)
}
