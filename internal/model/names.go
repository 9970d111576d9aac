package model

import "unicode"

// Name-entry glyph table dimensions.
const (
	GlyphCols = 8
	GlyphRows = 6
)

var glyphTable = [GlyphRows]string{
	"ABCDEFGH",
	"IJKLMNOP",
	"QRSTUVWX",
	"YZ012345",
	"6789.:?!",
	`()/\=+- `,
}

// GlyphAt returns the character at column x, row y of the glyph table.
func GlyphAt(x, y int) rune {
	if x < 0 || x >= GlyphCols || y < 0 || y >= GlyphRows {
		return 0
	}
	return rune(glyphTable[y][x])
}

// FindGlyph locates r in the glyph table. Letters match either case.
func FindGlyph(r rune) (x, y int, ok bool) {
	r = unicode.ToUpper(r)
	for y, row := range glyphTable {
		for x, c := range row {
			if c == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
