package game

import (
	"github.com/samdwyer/dungeonrows/internal/config"
	"github.com/samdwyer/dungeonrows/internal/world"
)

// Config holds the settings used to build a dungeon.
type Config struct {
	// RoomCount is the upper bound on rooms placed.
	RoomCount int

	// Seed for random number generation. A seed of 0 picks one from the clock.
	Seed int64

	// Layout selects the map builder. The zero value is world.LayoutClustered.
	Layout world.Layout

	// MaxAttempts is how many seeds are tried when a layout runs off the grid.
	MaxAttempts int
}

// ConfigFrom extracts the build settings from the application config.
// The layout name is expected to have passed config validation.
func ConfigFrom(c *config.Config) Config {
	layout, _ := world.ParseLayout(c.Generation.Layout)
	return Config{
		RoomCount:   c.Generation.RoomCount,
		Seed:        c.Generation.Seed,
		Layout:      layout,
		MaxAttempts: c.Retry.MaxAttempts,
	}
}
