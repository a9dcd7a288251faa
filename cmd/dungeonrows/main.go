// Package main is the entry point for dungeonrows.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonrows/internal/config"
	"github.com/samdwyer/dungeonrows/internal/game"
	"github.com/samdwyer/dungeonrows/internal/logger"
	"github.com/samdwyer/dungeonrows/internal/telemetry"
	"github.com/samdwyer/dungeonrows/internal/ui"
	"github.com/samdwyer/dungeonrows/internal/world"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run wires everything up and returns the process exit code. Deferred cleanup
// runs before main exits, so logs and spans are flushed on failure too.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("dungeonrows", flag.ContinueOnError)
	configPath := fs.String("config", "dungeonrows.yaml", "path to YAML config file")
	rooms := fs.Int("rooms", 0, "maximum number of rooms (overrides config)")
	seed := fs.Int64("seed", 0, "random seed, 0 for random (overrides config)")
	layout := fs.String("layout", "", "map builder: clustered, scatter or test (overrides config)")
	preset := fs.String("preset", "", "named room budget: tiny, small, tutorial, crowded")
	dump := fs.Bool("dump", false, "print the map as text and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Only flags given on the command line override the config
	var over overrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rooms":
			over.rooms = rooms
		case "seed":
			over.seed = seed
		case "layout":
			over.layout = layout
		}
	})

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := loadConfig(*configPath, *preset, over)
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 2
	}

	if !*dump {
		// tcell owns the terminal, so logs go to the rotating file only
		cfg.Logging.ConsoleEnabled = false
		cfg.Logging.FileEnabled = true
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
		return 1
	}
	defer logger.Close()

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warning("telemetry setup failed, running without traces", "error", err)
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	if *dump {
		if err := runDump(ctx, stdout, game.ConfigFrom(cfg)); err != nil {
			logger.Error("generation failed", "error", err)
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runViewer(ctx, cfg); err != nil {
		logger.Error("viewer failed", "error", err)
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		return 1
	}
	return 0
}

// overrides holds the command-line values that replace config settings.
// A nil field means the flag was not given.
type overrides struct {
	rooms  *int
	seed   *int64
	layout *string
}

// loadConfig layers the config file, environment, preset and command-line flags.
func loadConfig(path, preset string, over overrides) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if preset != "" {
		registry, err := config.LoadPresetRegistry()
		if err != nil {
			return nil, err
		}
		if err := cfg.ApplyPreset(registry, preset); err != nil {
			return nil, err
		}
	}

	if over.rooms != nil {
		cfg.Generation.RoomCount = *over.rooms
	}
	if over.seed != nil {
		cfg.Generation.Seed = *over.seed
	}
	if over.layout != nil {
		cfg.Generation.Layout = *over.layout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runDump generates one dungeon and writes it as text.
func runDump(ctx context.Context, w io.Writer, cfg game.Config) error {
	d, err := game.BuildDungeon(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(w, d.String())
	fmt.Fprintf(w, "id=%s layout=%s seed=%d rooms=%d rejected=%d tunnels=%d\n",
		d.ID, layoutName(cfg.Layout), d.Seed, len(d.Rooms), d.Stats.Rejected, d.Stats.Tunnels)
	if x, y, ok := d.Spawn(); ok {
		fmt.Fprintf(w, "spawn=%d,%d\n", x, y)
	}
	for i, r := range d.Rooms {
		fmt.Fprintf(w, "room %d: (%d,%d)-(%d,%d)\n", i, r.X1, r.Y1, r.X2, r.Y2)
	}
	return nil
}

func layoutName(l world.Layout) world.Layout {
	if l == "" {
		return world.LayoutClustered
	}
	return l
}

// runViewer opens the terminal and runs the explore loop.
func runViewer(ctx context.Context, cfg *config.Config) error {
	palette, err := ui.NewPalette(cfg.Palette.Floor, cfg.Palette.Wall, cfg.Palette.Player)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}

	if w, h := screen.Size(); w < world.GridWidth || h < world.GridHeight+1 {
		logger.Warning("terminal smaller than the map",
			"width", w, "height", h,
			"need_width", world.GridWidth, "need_height", world.GridHeight+1,
		)
	}

	g := game.New(screen, palette, game.ConfigFrom(cfg))
	if err := g.Run(ctx); err != nil {
		screen.Close()
		return err
	}
	return nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is present.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONROWS_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_DUNGEONROWS_DATASET")
	if dataset == "" {
		dataset = "dungeonrows" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
