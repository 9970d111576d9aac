package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is one character cell.
type Cell struct {
	Glyph byte
	FG    uint8
	BG    uint8
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a row-major grid of cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer returns a blank buffer.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes the cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads the cell at (x, y). Out-of-bounds reads return the zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear blanks every cell.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s from (x, y), one rune per cell. Runes outside
// Latin-1 print as '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	n := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+n, y, byte(ch), fg, bg)
		n++
	}
	return n
}

// WriteCentered writes s centred on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	b.WriteString((b.Cols-len([]rune(s)))/2, y, s, fg, bg)
}

// Frame draws a single-line box whose outer corners are (x0, y0) and
// (x1, y1), inclusive.
func (b *CellBuffer) Frame(x0, y0, x1, y1 int, fg uint8) {
	for x := x0 + 1; x < x1; x++ {
		b.Set(x, y0, GlyphFrameH, fg, ColorBlack)
		b.Set(x, y1, GlyphFrameH, fg, ColorBlack)
	}
	for y := y0 + 1; y < y1; y++ {
		b.Set(x0, y, GlyphFrameV, fg, ColorBlack)
		b.Set(x1, y, GlyphFrameV, fg, ColorBlack)
	}
	b.Set(x0, y0, GlyphFrameTL, fg, ColorBlack)
	b.Set(x1, y0, GlyphFrameTR, fg, ColorBlack)
	b.Set(x0, y1, GlyphFrameBL, fg, ColorBlack)
	b.Set(x1, y1, GlyphFrameBR, fg, ColorBlack)
}

// GridRenderer draws cell buffers with an atlas.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image
}

// NewGridRenderer returns a renderer drawing cells of cellW x cellH pixels.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &GridRenderer{Atlas: atlas, CellW: cellW, CellH: cellH, bgPixel: px}
}

// Draw renders buf at the screen origin.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	r.DrawAt(screen, buf, r.CellGeoM(), 1)
}

// DrawAt renders buf through geo, which maps cell units (one unit per
// cell) to screen pixels. alpha fades the whole buffer.
func (r *GridRenderer) DrawAt(screen *ebiten.Image, buf *CellBuffer, geo ebiten.GeoM, alpha float64) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			if cell.BG != ColorBlack {
				r.drawCell(screen, r.bgPixel, 1, 1, float64(x), float64(y), 1, cell.BG, geo, alpha)
			}
			if cell.Glyph != ' ' && cell.Glyph != 0 {
				r.drawCell(screen, r.Atlas.Glyph(cell.Glyph), GlyphWidth, GlyphHeight, float64(x), float64(y), 1, cell.FG, geo, alpha)
			}
		}
	}
}

// DrawText writes s with the top-left of its first glyph at cell (x, y) of
// geo, each glyph scale cells wide.
func (r *GridRenderer) DrawText(screen *ebiten.Image, s string, x, y, scale float64, fg uint8, geo ebiten.GeoM) {
	for i, ch := range []rune(s) {
		if ch > 255 || ch == ' ' {
			continue
		}
		r.drawCell(screen, r.Atlas.Glyph(byte(ch)), GlyphWidth, GlyphHeight, x+float64(i)*scale, y, scale, fg, geo, 1)
	}
}

// DrawFloating renders one glyph with its top-left at pixel (px, py).
func (r *GridRenderer) DrawFloating(screen *ebiten.Image, glyph byte, fg uint8, px, py float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	var geo ebiten.GeoM
	geo.Scale(float64(r.CellW), float64(r.CellH))
	geo.Translate(px, py)
	r.drawCell(screen, r.Atlas.Glyph(glyph), GlyphWidth, GlyphHeight, 0, 0, 1, fg, geo, 1)
}

// CellGeoM maps cell units to pixels at the renderer's cell size.
func (r *GridRenderer) CellGeoM() ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Scale(float64(r.CellW), float64(r.CellH))
	return geo
}

func (r *GridRenderer) drawCell(screen, img *ebiten.Image, w, h, x, y, size float64, fg uint8, geo ebiten.GeoM, alpha float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(size/w, size/h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(Palette[fg%NumColors])
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}
