// Package config loads generator and viewer settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeonrows/internal/logger"
	"github.com/samdwyer/dungeonrows/internal/world"
)

// Config holds all application settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Retry      RetryConfig      `yaml:"retry"`
	Logging    logger.Config    `yaml:"logging"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Palette    PaletteConfig    `yaml:"palette"`
}

// GenerationConfig controls the room layout.
type GenerationConfig struct {
	// RoomCount is the upper bound on rooms placed.
	RoomCount int `yaml:"room_count"`

	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// Layout selects the map builder: clustered, scatter or test.
	Layout string `yaml:"layout"`
}

// RetryConfig controls regeneration after a layout runs off the grid.
type RetryConfig struct {
	// MaxAttempts is the number of seeds tried before giving up.
	MaxAttempts int `yaml:"max_attempts"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PaletteConfig holds hex colors for map rendering.
type PaletteConfig struct {
	Floor  string `yaml:"floor"`
	Wall   string `yaml:"wall"`
	Player string `yaml:"player"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			RoomCount: 20,
			Seed:      0,
			Layout:    string(world.LayoutClustered),
		},
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
		Logging: logger.DefaultConfig(),
		Telemetry: TelemetryConfig{
			Enabled: false,
		},
		Palette: PaletteConfig{
			Floor:  "#808080",
			Wall:   "#00FF00",
			Player: "#FFFF00",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return config, nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DUNGEON_ROOM_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DUNGEON_ROOM_COUNT: %w", err)
		}
		c.Generation.RoomCount = n
	}

	if v := os.Getenv("DUNGEON_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DUNGEON_SEED: %w", err)
		}
		c.Generation.Seed = n
	}

	if v := os.Getenv("DUNGEON_LAYOUT"); v != "" {
		c.Generation.Layout = v
	}

	if v := os.Getenv("DUNGEON_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DUNGEON_MAX_ATTEMPTS: %w", err)
		}
		c.Retry.MaxAttempts = n
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv("LOG_FILE_PATH"); v != "" {
		c.Logging.FilePath = v
	}

	if v := os.Getenv("TELEMETRY_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TELEMETRY_ENABLED: %w", err)
		}
		c.Telemetry.Enabled = enabled
	}

	return nil
}

// Validate checks settings that would make generation meaningless.
func (c *Config) Validate() error {
	if c.Generation.RoomCount < 0 {
		return fmt.Errorf("generation.room_count must not be negative, got %d", c.Generation.RoomCount)
	}
	if _, err := world.ParseLayout(c.Generation.Layout); err != nil {
		return fmt.Errorf("generation.layout: %w", err)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
