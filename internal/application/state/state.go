package state

// GameState represents the current state of a level
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateCleared // boss defeated, waiting to switch scenes
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}
