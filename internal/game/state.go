// Package game builds dungeons and runs the interactive explore loop.
package game

// State represents the current view mode.
type State int

const (
	// StateExplore is the default mode where the player walks the map.
	StateExplore State = iota
	// StateHelp shows the key bindings over the map.
	StateHelp
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateHelp:
		return "help"
	default:
		return "unknown"
	}
}
