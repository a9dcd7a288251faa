package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette holds the colors used to draw the map.
type Palette struct {
	Floor  tcell.Color
	Wall   tcell.Color
	Player tcell.Color
}

// DefaultPalette draws gray floors, green walls and a yellow player.
func DefaultPalette() Palette {
	return Palette{
		Floor:  tcell.ColorGray,
		Wall:   tcell.ColorGreen,
		Player: tcell.ColorYellow,
	}
}

// NewPalette parses hex colors, keeping the default for any empty entry.
func NewPalette(floor, wall, player string) (Palette, error) {
	p := DefaultPalette()
	for _, entry := range []struct {
		hex  string
		dest *tcell.Color
	}{
		{floor, &p.Floor},
		{wall, &p.Wall},
		{player, &p.Player},
	} {
		if entry.hex == "" {
			continue
		}
		color, err := ParseHexColor(entry.hex)
		if err != nil {
			return DefaultPalette(), err
		}
		*entry.dest = color
	}
	return p, nil
}
