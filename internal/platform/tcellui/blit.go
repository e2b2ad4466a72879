package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:         tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// styleFor returns the tcell style of a core color.
func styleFor(c core.Color) tcell.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return tcell.StyleDefault
}

// blit copies every cell of src onto dst.
func blit(dst tcell.Screen, src *core.Screen) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
}
