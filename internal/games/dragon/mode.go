package dragon

// Mode is the top-level game state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
