package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrows/internal/entity"
	"github.com/samdwyer/dungeonrows/internal/logger"
	"github.com/samdwyer/dungeonrows/internal/telemetry"
	"github.com/samdwyer/dungeonrows/internal/ui"
	"github.com/samdwyer/dungeonrows/internal/world"
)

// helpLines are drawn over the map in StateHelp.
var helpLines = []string{
	" arrows  move        ",
	" t       teleport    ",
	" r       regenerate  ",
	" c       copy map    ",
	" ?       close help  ",
	" q/Esc   quit        ",
}

// Game holds the explore session state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	dungeon  *world.Dungeon
	player   *entity.Player
	visited  mapset.Set[int] // Grid indices the player has stood on
	rng      *rand.Rand
	state    State
	message  string
	running  bool
}

// New creates a new game drawing to the given screen.
func New(screen *ui.Screen, palette ui.Palette, cfg Config) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		cfg:      cfg,
		visited:  mapset.New[int](),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		state:    StateExplore,
		running:  true,
	}
}

// Run builds the first dungeon and executes the main loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	if err := g.load(ctx, g.cfg); err != nil {
		return err
	}

	for g.running {
		g.draw()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// load builds a dungeon and places the player at its spawn point.
func (g *Game) load(ctx context.Context, cfg Config) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.load")
	defer span.End()

	d, err := BuildDungeon(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build dungeon: %w", err)
	}
	g.setDungeon(d)

	span.SetAttributes(
		attribute.String("dungeon.id", d.ID.String()),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	return nil
}

// setDungeon swaps in a dungeon and resets the player and explored cells.
func (g *Game) setDungeon(d *world.Dungeon) {
	g.dungeon = d
	g.visited = mapset.New[int]()

	x, y, ok := d.Spawn()
	if !ok {
		// Fallback: place in center of map
		x, y = d.Width()/2, d.Height()/2
		logger.Warning("no rooms generated, using fallback position", "id", d.ID.String())
	}
	g.player = entity.NewPlayer(x, y)
	g.markVisited()
	g.message = fmt.Sprintf("seed %d, %d rooms", d.Seed, len(d.Rooms))
}

func (g *Game) markVisited() {
	if g.dungeon.Grid.InBounds(g.player.X, g.player.Y) {
		g.visited.Put(g.dungeon.Grid.Index(g.player.X, g.player.Y))
	}
}

// draw renders the map, the status line and any overlay.
func (g *Game) draw() {
	g.renderer.Render(g.dungeon, g.player)
	g.renderer.RenderMessage(g.statusLine(), g.dungeon.Height())
	if g.state == StateHelp {
		for i, line := range helpLines {
			g.renderer.RenderMessage(line, i+1)
		}
	}
	g.renderer.Show()
}

// statusLine describes the player's surroundings.
func (g *Game) statusLine() string {
	where := "corridor"
	if idx := g.dungeon.RoomIndexAt(g.player.X, g.player.Y); idx >= 0 {
		where = fmt.Sprintf("room %d/%d", idx+1, len(g.dungeon.Rooms))
	}
	return fmt.Sprintf("%s | explored %d | %s | ? for help", where, g.visited.Size(), g.message)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case '?':
			g.toggleHelp()
		case 'r', 'R':
			g.regenerate(ctx)
		case 't', 'T':
			g.teleport()
		case 'c', 'C':
			g.copyMap()
		}
	}
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(dx, dy int) {
	newX := g.player.X + dx
	newY := g.player.Y + dy

	if g.dungeon.IsPassable(newX, newY) {
		g.player.Move(dx, dy)
		g.markVisited()
	}
}

func (g *Game) toggleHelp() {
	if g.state == StateHelp {
		g.state = StateExplore
	} else {
		g.state = StateHelp
	}
}

// regenerate replaces the dungeon with one from a fresh random seed.
func (g *Game) regenerate(ctx context.Context) {
	cfg := g.cfg
	cfg.Seed = 0
	if err := g.load(ctx, cfg); err != nil {
		logger.Error("regenerate failed", "error", err)
		g.message = "regenerate failed: " + err.Error()
	}
}

// teleport moves the player to a random point in a random room.
func (g *Game) teleport() {
	if len(g.dungeon.Rooms) == 0 {
		return
	}
	room := g.rng.Intn(len(g.dungeon.Rooms))
	g.player.X, g.player.Y = g.dungeon.RandomPointInRoom(g.rng, room)
	g.markVisited()
}

// copyMap puts the ASCII map on the system clipboard.
func (g *Game) copyMap() {
	if err := clipboard.WriteAll(g.dungeon.String()); err != nil {
		logger.Warning("clipboard copy failed", "error", err)
		g.message = "clipboard unavailable"
		return
	}
	g.message = "map copied"
}
