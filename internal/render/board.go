package render

import (
	"fmt"

	"github.com/seaboard/battleship/internal/model"
)

// A board buffer holds the grid plus a label row on top and a two-column
// label gutter on the left. Board cell (x, y) lives at buffer cell
// (x+BoardOffsetX, y+BoardOffsetY).
const (
	BoardOffsetX = 2
	BoardOffsetY = 1
	BoardCols    = model.GridDim + BoardOffsetX
	BoardRows    = model.GridDim + BoardOffsetY
)

// BoardView says how one player's board should look.
type BoardView struct {
	Player    *model.Player
	ShowShips bool
	Fog       model.FogType // drawn over unresolved cells when ships are hidden
	FogSeed   int64
	Cursor    bool // highlight Player's opponent cursor at CursorX, CursorY
	CursorX   int
	CursorY   int
	Placing   bool // draw the ship being placed
}

// NewBoardBuffer returns a buffer sized for RenderBoard.
func NewBoardBuffer() *CellBuffer {
	return NewCellBuffer(BoardCols, BoardRows)
}

// RenderBoard draws v into buf, which must come from NewBoardBuffer.
func RenderBoard(buf *CellBuffer, v BoardView) {
	buf.Clear()
	for i := 0; i < model.GridDim; i++ {
		buf.Set(BoardOffsetX+i, 0, byte('A'+i), ColorLightCyan, ColorBlack)
		buf.WriteString(0, BoardOffsetY+i, fmt.Sprintf("%2d", i+1), ColorLightCyan, ColorBlack)
	}

	p := v.Player
	for y := 0; y < model.GridDim; y++ {
		for x := 0; x < model.GridDim; x++ {
			glyph, fg, bg := CellVisual(p, x, y, v.ShowShips)
			if !v.ShowShips && p.Grid.Get(x, y) == model.GridEmpty {
				if g := FogShade(v.Fog, v.FogSeed, x, y); g != 0 {
					glyph, fg = g, ColorLightGray
				}
			}
			buf.Set(BoardOffsetX+x, BoardOffsetY+y, glyph, fg, bg)
		}
	}

	if v.Placing {
		if i := p.Placing(); i >= 0 {
			ship := p.Ships[i]
			fg := uint8(ColorYellow)
			for x, y := range ship.Cells {
				if p.ShipAt.Get(x, y) != model.NoShip {
					fg = ColorLightRed
				}
			}
			for x, y := range ship.Cells {
				buf.Set(BoardOffsetX+x, BoardOffsetY+y, GlyphSquare, fg, ColorBlue)
			}
		}
	}

	if v.Cursor {
		c := buf.Get(BoardOffsetX+v.CursorX, BoardOffsetY+v.CursorY)
		if c.Glyph == GlyphWave {
			c.Glyph = GlyphCursor
		}
		buf.Set(BoardOffsetX+v.CursorX, BoardOffsetY+v.CursorY, c.Glyph, ColorWhite, ColorGreen)
	}
}

// CellVisual returns the glyph and colours of board cell (x, y). Ships
// that have not been hit only show when show is set.
func CellVisual(p *model.Player, x, y int, show bool) (glyph byte, fg, bg uint8) {
	ship := p.ShipAt.Get(x, y)
	switch p.Grid.Get(x, y) {
	case model.GridHit:
		if ship != model.NoShip && p.Ships[ship].Sunk() {
			return GlyphHit, ColorYellow, ColorRed
		}
		return GlyphHit, ColorLightRed, ColorBlue
	case model.GridMiss:
		return GlyphMiss, ColorWhite, ColorBlue
	}
	if show && ship != model.NoShip {
		return GlyphSquare, ColorLightGray, ColorBlue
	}
	return GlyphWave, ColorLightBlue, ColorBlue
}

// FogShade returns the fog glyph over cell (x, y), or 0 for clear. The
// pattern is fixed for a given seed.
func FogShade(fog model.FogType, seed int64, x, y int) byte {
	if fog == model.FogOff {
		return 0
	}
	h := cellHash(seed, x, y) % 4
	switch fog {
	case model.FogLight:
		if h == 0 {
			return GlyphLight
		}
		return 0
	case model.FogMedium:
		if h < 3 {
			return GlyphLight
		}
		return GlyphMedium
	default:
		if h == 0 {
			return GlyphMedium
		}
		return GlyphHeavy
	}
}

// cellHash is splitmix64 over the seed and cell index.
func cellHash(seed int64, x, y int) uint64 {
	z := uint64(seed) + uint64(y*model.GridDim+x+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
