package render

import (
	"image/color"

	"github.com/seaboard/battleship/internal/model"
)

// CGA palette indices used for cell colours.
const (
	ColorBlack uint8 = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite

	NumColors = 16
)

// Palette maps a colour index to RGB. The low half is the 0xAA set, the
// high half adds 0x55 to every channel, brown is the usual exception.
var Palette = [NumColors]color.RGBA{
	ColorBlack:        {0x00, 0x00, 0x00, 0xff},
	ColorBlue:         {0x00, 0x00, 0xaa, 0xff},
	ColorGreen:        {0x00, 0xaa, 0x00, 0xff},
	ColorCyan:         {0x00, 0xaa, 0xaa, 0xff},
	ColorRed:          {0xaa, 0x00, 0x00, 0xff},
	ColorMagenta:      {0xaa, 0x00, 0xaa, 0xff},
	ColorBrown:        {0xaa, 0x55, 0x00, 0xff},
	ColorLightGray:    {0xaa, 0xaa, 0xaa, 0xff},
	ColorDarkGray:     {0x55, 0x55, 0x55, 0xff},
	ColorLightBlue:    {0x55, 0x55, 0xff, 0xff},
	ColorLightGreen:   {0x55, 0xff, 0x55, 0xff},
	ColorLightCyan:    {0x55, 0xff, 0xff, 0xff},
	ColorLightRed:     {0xff, 0x55, 0x55, 0xff},
	ColorLightMagenta: {0xff, 0x55, 0xff, 0xff},
	ColorYellow:       {0xff, 0xff, 0x55, 0xff},
	ColorWhite:        {0xff, 0xff, 0xff, 0xff},
}

// Exhaust colour ramps, hottest first.
var fireRamps = map[model.FireColour][]uint8{
	model.FireOrange:  {ColorWhite, ColorYellow, ColorLightRed, ColorBrown, ColorRed, ColorDarkGray},
	model.FireBlue:    {ColorWhite, ColorLightCyan, ColorCyan, ColorLightBlue, ColorBlue, ColorDarkGray},
	model.FireRainbow: {ColorLightRed, ColorYellow, ColorLightGreen, ColorLightCyan, ColorLightBlue, ColorLightMagenta},
}

// FireColor picks the exhaust colour at heat t, 1 being freshly emitted
// and 0 burnt out. Random needs a roll in [0, 1).
func FireColor(c model.FireColour, t, roll float64) uint8 {
	if c == model.FireRandom {
		return uint8(1 + int(roll*float64(NumColors-1))%(NumColors-1))
	}
	ramp, ok := fireRamps[c]
	if !ok {
		ramp = fireRamps[model.FireOrange]
	}
	t = max(0, min(t, 1))
	i := int((1 - t) * float64(len(ramp)-1))
	return ramp[i]
}

// Fade returns palette colour c with alpha scaled by a in [0, 1].
func Fade(c uint8, a float64) color.RGBA {
	p := Palette[c%NumColors]
	a = max(0, min(a, 1))
	return color.RGBA{
		R: uint8(float64(p.R) * a),
		G: uint8(float64(p.G) * a),
		B: uint8(float64(p.B) * a),
		A: uint8(255 * a),
	}
}
