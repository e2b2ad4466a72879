package core

// Color represents a foreground color for a screen cell.
// Shells map it to their own palette (lipgloss ANSI codes, tcell colors).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
