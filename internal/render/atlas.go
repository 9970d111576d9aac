// Package render draws character cells: a generated glyph atlas, a cell
// buffer, and the board, menu and text layouts built from them.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// Board and frame glyphs outside printable ASCII. The codes follow CP437.
const (
	GlyphMiss    byte = 7   // dot
	GlyphHit     byte = 15  // burst
	GlyphLight   byte = 176 // light shade
	GlyphMedium  byte = 177 // medium shade
	GlyphHeavy   byte = 178 // dark shade
	GlyphFrameV  byte = 179
	GlyphFrameTR byte = 191
	GlyphFrameBL byte = 192
	GlyphFrameH  byte = 196
	GlyphFrameBR byte = 217
	GlyphFrameTL byte = 218
	GlyphBlock   byte = 219
	GlyphWave    byte = 247 // double tilde
	GlyphSquare  byte = 254
	GlyphCursor  byte = 4 // diamond
)

// FontAtlas holds the glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

type painter func(img *image.NRGBA, cx, cy int)

var white = color.NRGBA{255, 255, 255, 255}

// Frame connections {left, right, top, bottom}.
var frames = map[byte][4]bool{
	GlyphFrameV:  {false, false, true, true},
	GlyphFrameTR: {true, false, false, true},
	GlyphFrameBL: {false, true, true, false},
	GlyphFrameH:  {true, true, false, false},
	GlyphFrameBR: {true, false, true, false},
	GlyphFrameTL: {false, true, false, true},
}

var painters = map[byte]painter{
	GlyphMiss:   disc(3),
	GlyphCursor: diamond,
	GlyphHit:    burst,
	GlyphLight:  shade(func(x, y int) bool { return (x+y)%4 == 0 }),
	GlyphMedium: shade(func(x, y int) bool { return (x+y)%2 == 0 }),
	GlyphHeavy:  shade(func(x, y int) bool { return (x+y)%4 != 0 }),
	GlyphBlock:  shade(func(x, y int) bool { return true }),
	GlyphSquare: shade(func(x, y int) bool { return x >= 3 && x < 13 && y >= 3 && y < 13 }),
	GlyphWave:   waves,
}

// NewFontAtlas renders the atlas. Printable ASCII comes from
// basicfont.Face7x13; the board glyphs are painted by hand.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx, cy := cellOrigin(code)
		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, cx, cy, rune(code))
		case frames[byte(code)] != [4]bool{}:
			f := frames[byte(code)]
			drawFrameGlyph(img, cx, cy, f[0], f[1], f[2], f[3])
		case painters[byte(code)] != nil:
			painters[byte(code)](img, cx, cy)
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x, y := cellOrigin(code)
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func cellOrigin(code int) (int, int) {
	return (code % AtlasCols) * GlyphWidth, (code / AtlasCols) * GlyphHeight
}

// basicfont glyphs are 7x13, centered in the cell with the baseline at 13.
func drawFontGlyph(img *image.NRGBA, face font.Face, cx, cy int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cx+4, cy+13),
	}
	d.DrawString(string(r))
}

// Frame lines are 2 pixels wide through the middle of the cell.
func drawFrameGlyph(img *image.NRGBA, cx, cy int, left, right, top, bottom bool) {
	mx, my := cx+7, cy+7
	hline := func(x0, x1 int) {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, my, white)
			img.SetNRGBA(x, my+1, white)
		}
	}
	vline := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			img.SetNRGBA(mx, y, white)
			img.SetNRGBA(mx+1, y, white)
		}
	}
	if left {
		hline(cx, mx+2)
	}
	if right {
		hline(mx, cx+GlyphWidth)
	}
	if top {
		vline(cy, my+2)
	}
	if bottom {
		vline(my, cy+GlyphHeight)
	}
}

func shade(on func(x, y int) bool) painter {
	return func(img *image.NRGBA, cx, cy int) {
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if on(x, y) {
					img.SetNRGBA(cx+x, cy+y, white)
				}
			}
		}
	}
}

func disc(r int) painter {
	return shade(func(x, y int) bool {
		dx, dy := 2*x+1-GlyphWidth, 2*y+1-GlyphHeight
		return dx*dx+dy*dy <= 4*r*r
	})
}

var diamond = shade(func(x, y int) bool {
	dx, dy := x-7, y-7
	if dx < 0 {
		dx = -dx - 1
	}
	if dy < 0 {
		dy = -dy - 1
	}
	return dx+dy < 6
})

// burst is an X with a hollow centre.
var burst = shade(func(x, y int) bool {
	d1, d2 := x-y, x+y-(GlyphWidth-1)
	ring := (x-7)*(x-7)+(y-7)*(y-7) < 4
	return !ring && x > 1 && x < 14 && y > 1 && y < 14 && (d1 >= -1 && d1 <= 1 || d2 >= -1 && d2 <= 1)
})

// waves are two rows of a 4-pixel zigzag.
var waves = shade(func(x, y int) bool {
	phase := x % 8
	if phase >= 4 {
		phase = 7 - phase
	}
	return y == 4+phase || y == 9+phase
})
