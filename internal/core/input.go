package core

// Action represents a semantic game action, abstracted from physical key presses.
// Shells translate raw keys into at most one Action per press; the simulation never
// sees key-down state, only discrete presses.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space, W, Up - flap / start / restart
	ActionQuit        // Esc, Q - leave the menu or game over screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a >= ActionNone && a <= ActionQuit
}
