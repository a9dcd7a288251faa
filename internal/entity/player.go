// Package entity provides the player-controlled entity.
package entity

// Player is the player-controlled entity placed at the dungeon's spawn point.
type Player struct {
	X, Y   int  // Current position in the dungeon
	Symbol rune // Display symbol
}

// NewPlayer creates a new player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
