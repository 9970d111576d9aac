package model

import (
	"fmt"
	"strings"
)

// FogType is the density of the fog drawn over hidden ships.
type FogType uint8

const (
	FogOff FogType = iota
	FogLight
	FogMedium
	FogHeavy

	NumFogTypes = 4
)

var fogNames = [NumFogTypes]string{"Off", "Light", "Medium", "Heavy"}

func (f FogType) String() string { return enumName(fogNames[:], int(f)) }

// RocketType is the path the rocket flies between the boards.
type RocketType uint8

const (
	RocketOff RocketType = iota
	RocketSide
	RocketTop

	NumRocketTypes = 3
)

var rocketNames = [NumRocketTypes]string{"Off", "Side", "Top"}

func (r RocketType) String() string { return enumName(rocketNames[:], int(r)) }

// FireWidth is the spread of the rocket exhaust.
type FireWidth uint8

const (
	FireSkinny FireWidth = iota
	FireEqual
	FireWide

	NumFireWidths = 3
)

var fireWidthNames = [NumFireWidths]string{"Skinny", "Equal", "Wide"}

func (w FireWidth) String() string { return enumName(fireWidthNames[:], int(w)) }

// Scale is the exhaust width relative to the rocket body.
func (w FireWidth) Scale() float64 {
	switch w {
	case FireSkinny:
		return 0.5
	case FireWide:
		return 4.0
	default:
		return 1.0
	}
}

// FireColour is the palette of the rocket exhaust.
type FireColour uint8

const (
	FireOrange FireColour = iota
	FireBlue
	FireRainbow
	FireRandom

	NumFireColours = 4
)

var fireColourNames = [NumFireColours]string{"Orange", "Blue", "Rainbow", "Random"}

func (c FireColour) String() string { return enumName(fireColourNames[:], int(c)) }

// Rocket option bounds.
const (
	MinRocketSize  = 1
	MaxRocketSize  = 5
	MinRocketSpeed = 1
	MaxRocketSpeed = 5
	MinFireLength  = 2
	MaxFireLength  = 6
)

// RocketOptions configure the fire animation.
type RocketOptions struct {
	Path       RocketType
	ShowPath   bool
	Size       int
	Speed      int
	Fire       bool
	FireLength int
	FireWidth  FireWidth
	FireColour FireColour
}

// Options are the user settings that survive a restart.
type Options struct {
	Fog     FogType
	FogSeed int64 // bumped to regenerate the fog pattern

	BoardAnimation   bool
	AIAnimation      bool
	MessageAnimation bool
	Sound            bool

	Rocket RocketOptions
}

// DefaultOptions returns the settings a fresh install starts with.
func DefaultOptions() Options {
	return Options{
		Fog:              FogMedium,
		FogSeed:          1,
		BoardAnimation:   true,
		AIAnimation:      true,
		MessageAnimation: true,
		Sound:            true,
		Rocket: RocketOptions{
			Path:       RocketSide,
			Size:       2,
			Speed:      4,
			Fire:       true,
			FireLength: 3,
			FireWidth:  FireSkinny,
			FireColour: FireOrange,
		},
	}
}

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("unknown(%d)", i)
}

// ParseEnum returns the index of name in names, ignoring case and spaces.
func ParseEnum(names []string, name string) (int, error) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	for i, n := range names {
		if strings.ToLower(strings.ReplaceAll(n, " ", "")) == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q (want one of %s)", name, strings.Join(names, ", "))
}

// Display names for menus and configuration.
var (
	AINames         = aiNames[:]
	FogNames        = fogNames[:]
	RocketNames     = rocketNames[:]
	FireWidthNames  = fireWidthNames[:]
	FireColourNames = fireColourNames[:]
)
