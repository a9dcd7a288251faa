package entity

import "testing"

func TestPlayerMove(t *testing.T) {
	p := NewPlayer(13, 8)
	if p.Symbol != '@' {
		t.Errorf("Symbol = %q, want '@'", p.Symbol)
	}

	p.Move(1, 0)
	p.Move(0, -2)

	x, y := p.Position()
	if x != 14 || y != 6 {
		t.Errorf("Position() = (%d,%d), want (14,6)", x, y)
	}
}
