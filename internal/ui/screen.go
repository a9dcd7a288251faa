// Package ui draws generated dungeons to the terminal with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal surface the map viewer paints on. The map occupies
// the top GridHeight rows and the status line sits below it.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens the controlling terminal for the viewer.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return WrapScreen(s)
}

// WrapScreen initializes s with the viewer's black background. Tests pass a
// tcell.SimulationScreen here.
func WrapScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close hands the terminal back to the shell.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next key press or resize.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show pushes the painted frame to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent paints one map or status cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size reports the terminal size, which may be smaller than the map.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync repaints every cell, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
