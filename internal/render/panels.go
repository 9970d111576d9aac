package render

import (
	"strings"

	"github.com/seaboard/battleship/internal/menu"
	"github.com/seaboard/battleship/internal/model"
)

// RenderMenu draws the open menu framed inside buf.
func RenderMenu(buf *CellBuffer, m *menu.Menu) {
	buf.Clear()
	it := m.Current()
	if it == nil {
		return
	}
	buf.Frame(0, 0, buf.Cols-1, buf.Rows-1, ColorLightBlue)
	buf.WriteCentered(1, it.Name, ColorWhite, ColorBlack)

	row := 3
	for i, c := range it.Items {
		if row >= buf.Rows-3 {
			break
		}
		if c == nil {
			for x := 3; x < buf.Cols-3; x++ {
				buf.Set(x, row, GlyphFrameH, ColorDarkGray, ColorBlack)
			}
			row++
			continue
		}
		fg := uint8(ColorLightGray)
		if i == m.Selected() {
			fg = ColorYellow
			buf.Set(2, row, '>', ColorYellow, ColorBlack)
		}
		buf.WriteString(4, row, c.Name, fg, ColorBlack)
		val := c.Value()
		if c.Submenu() {
			val = "..."
		}
		if val != "" {
			buf.WriteString(buf.Cols-3-len(val), row, val, fg, ColorBlack)
		}
		row++
	}
	buf.WriteCentered(buf.Rows-2, m.Help(), ColorDarkGray, ColorBlack)
}

// RenderNames draws the name-entry grid inside buf.
func RenderNames(buf *CellBuffer, ns *model.NameSelector) {
	buf.Clear()
	buf.Frame(0, 0, buf.Cols-1, buf.Rows-1, ColorLightBlue)
	buf.WriteCentered(1, "Enter Name", ColorWhite, ColorBlack)

	name := ns.Name
	if len(name) < model.MaxNameLen {
		name += "_"
	}
	buf.WriteCentered(3, name+strings.Repeat(" ", model.MaxNameLen-len([]rune(name))), ColorYellow, ColorBlack)

	x0 := (buf.Cols - model.GlyphCols*2) / 2
	for y := 0; y < model.GlyphRows; y++ {
		for x := 0; x < model.GlyphCols; x++ {
			fg, bg := uint8(ColorLightGray), uint8(ColorBlack)
			if x == ns.X && y == ns.Y {
				fg, bg = ColorWhite, ColorGreen
			}
			buf.Set(x0+x*2, 5+y, byte(model.GlyphAt(x, y)), fg, bg)
		}
	}
	buf.WriteCentered(buf.Rows-2, "(Enter add, Backspace delete, ESC done)", ColorDarkGray, ColorBlack)
}

// MessageText is the pop-in line for a resolved shot.
func MessageText(msg model.GameMessage, shooter string) string {
	switch {
	case msg.Win():
		return strings.ToUpper(shooter) + " WINS!"
	case msg.Sunk:
		return "SUNK " + strings.ToUpper(msg.Ship.String())
	case msg.Kind == model.GridHit:
		return "HIT!"
	default:
		return "MISS"
	}
}

// MessageColor is the colour of MessageText.
func MessageColor(msg model.GameMessage) uint8 {
	switch {
	case msg.Win():
		return ColorLightGreen
	case msg.Sunk:
		return ColorLightRed
	case msg.Kind == model.GridHit:
		return ColorYellow
	default:
		return ColorLightCyan
	}
}
