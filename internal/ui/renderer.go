package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonrows/internal/entity"
	"github.com/samdwyer/dungeonrows/internal/world"
)

// Renderer handles drawing the dungeon to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the dungeon and player to the screen.
func (r *Renderer) Render(dungeon *world.Dungeon, player *entity.Player) {
	r.screen.Clear()

	for idx, tile := range dungeon.Grid.Cells() {
		x, y := dungeon.Grid.XY(idx)
		glyph, style := r.tileGlyph(tile)
		r.screen.SetContent(x, y, glyph, style)
	}

	if player != nil {
		playerStyle := tcell.StyleDefault.
			Foreground(r.palette.Player).
			Bold(true)
		r.screen.SetContent(player.X, player.Y, player.Symbol, playerStyle)
	}
}

// tileGlyph returns the character and style used for a tile.
func (r *Renderer) tileGlyph(tile world.Tile) (rune, tcell.Style) {
	switch tile {
	case world.TileFloor:
		return '.', tcell.StyleDefault.Foreground(r.palette.Floor)
	case world.TileWall:
		return '#', tcell.StyleDefault.Foreground(r.palette.Wall)
	default:
		return '?', tcell.StyleDefault
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// Show flushes everything drawn since the last Render.
func (r *Renderer) Show() {
	r.screen.Show()
}
