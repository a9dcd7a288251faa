package game

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrows/internal/logger"
	"github.com/samdwyer/dungeonrows/internal/telemetry"
	"github.com/samdwyer/dungeonrows/internal/world"
)

// BuildDungeon generates a dungeon, trying consecutive seeds when a layout
// runs off the grid. The first attempt uses cfg.Seed (or a random seed if
// it is 0), so a given config always yields the same dungeon.
func BuildDungeon(ctx context.Context, cfg Config) (*world.Dungeon, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "dungeon.build")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	attempts := 0
	operation := func() (*world.Dungeon, error) {
		gen := world.NewGenerator(seed + int64(attempts))
		attempts++

		d, err := gen.Build(ctx, cfg.Layout, cfg.RoomCount)
		if err != nil {
			if errors.Is(err, world.ErrOutOfBounds) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return d, nil
	}

	d, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(max(cfg.MaxAttempts, 1))),
		backoff.WithNotify(func(err error, _ time.Duration) {
			logger.Warning("layout left the grid, retrying with next seed",
				"attempt", attempts,
				"error", err,
			)
		}),
	)

	span.SetAttributes(
		attribute.Int("dungeon.attempts", attempts),
		attribute.Int("dungeon.room_budget", cfg.RoomCount),
		attribute.String("dungeon.layout", string(cfg.Layout)),
	)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("dungeon.id", d.ID.String()),
		attribute.Int64("dungeon.seed", d.Seed),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
	)
	logger.Info("dungeon ready",
		"id", d.ID.String(),
		"seed", d.Seed,
		"rooms", len(d.Rooms),
		"attempts", attempts,
	)

	return d, nil
}
