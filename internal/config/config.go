// Package config loads game settings from JSON. A user file is merged
// over the embedded defaults.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/seaboard/battleship/internal/model"
)

//go:embed defaults.json
var defaultsJSON []byte

// Window bounds in pixels.
const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
	MaxWindowWidth  = 7680
	MaxWindowHeight = 4320
)

// Window is the initial window size.
type Window struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Player is the controller setup of one side.
type Player struct {
	Name      string `json:"name"`
	AI        string `json:"ai"`
	AutoPlace bool   `json:"auto_place"`
	HideShips bool   `json:"hide_ships"`
}

// Rocket configures the fire animation.
type Rocket struct {
	Path       string `json:"path"`
	ShowPath   bool   `json:"show_path"`
	Size       int    `json:"size"`
	Speed      int    `json:"speed"`
	Fire       bool   `json:"fire"`
	FireLength int    `json:"fire_length"`
	FireWidth  string `json:"fire_width"`
	FireColour string `json:"fire_colour"`
}

// Config is the full settings file.
type Config struct {
	LogLevel string `json:"log_level"`
	Window   Window `json:"window"`
	Lines    bool   `json:"lines"`
	Demo     bool   `json:"demo"`

	Player1 Player `json:"player1"`
	Player2 Player `json:"player2"`

	Fog              string `json:"fog"`
	FogSeed          int64  `json:"fog_seed"`
	BoardAnimation   bool   `json:"board_animation"`
	AIAnimation      bool   `json:"ai_animation"`
	MessageAnimation bool   `json:"message_animation"`
	Sound            bool   `json:"sound"`

	Rocket Rocket `json:"rocket"`
}

// Default returns the embedded defaults.
func Default() *Config {
	var c Config
	if err := json.Unmarshal(defaultsJSON, &c); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return &c
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys missing from the file keep their default value; unknown keys are an
// error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := c.Merge(data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Merge decodes data over c.
func (c *Config) Merge(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(c)
}

// Validate clamps out-of-range numbers, trims names to what the name
// selector can enter, and reports every unknown enum name.
func (c *Config) Validate() error {
	var errs []error
	check := func(field string, names []string, v string) {
		if _, err := model.ParseEnum(names, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	c.Window.Width = clamp(c.Window.Width, MinWindowWidth, MaxWindowWidth)
	c.Window.Height = clamp(c.Window.Height, MinWindowHeight, MaxWindowHeight)

	for i, p := range []*Player{&c.Player1, &c.Player2} {
		p.Name = CleanName(p.Name)
		if p.Name == "" {
			p.Name = fmt.Sprintf("Player %d", i+1)
		}
		check(fmt.Sprintf("player%d.ai", i+1), model.AINames, p.AI)
	}

	check("fog", model.FogNames, c.Fog)
	check("rocket.path", model.RocketNames, c.Rocket.Path)
	check("rocket.fire_width", model.FireWidthNames, c.Rocket.FireWidth)
	check("rocket.fire_colour", model.FireColourNames, c.Rocket.FireColour)

	r := &c.Rocket
	r.Size = clamp(r.Size, model.MinRocketSize, model.MaxRocketSize)
	r.Speed = clamp(r.Speed, model.MinRocketSpeed, model.MaxRocketSpeed)
	r.FireLength = clamp(r.FireLength, model.MinFireLength, model.MaxFireLength)

	return errors.Join(errs...)
}

// Level returns the configured log level, or info if it does not parse.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Apply copies the settings into md. The config must have been validated.
func (c *Config) Apply(md *model.Model) {
	for i, p := range []Player{c.Player1, c.Player2} {
		mp := &md.Players[i]
		mp.Name = p.Name
		mp.AI = model.AIType(enum(model.AINames, p.AI))
		mp.AutoPlace = p.AutoPlace
		mp.Fog = p.HideShips
	}
	md.Demo = c.Demo
	md.Lines = c.Lines

	o := &md.Options
	o.Fog = model.FogType(enum(model.FogNames, c.Fog))
	o.FogSeed = c.FogSeed
	o.BoardAnimation = c.BoardAnimation
	o.AIAnimation = c.AIAnimation
	o.MessageAnimation = c.MessageAnimation
	o.Sound = c.Sound
	o.Rocket = model.RocketOptions{
		Path:       model.RocketType(enum(model.RocketNames, c.Rocket.Path)),
		ShowPath:   c.Rocket.ShowPath,
		Size:       c.Rocket.Size,
		Speed:      c.Rocket.Speed,
		Fire:       c.Rocket.Fire,
		FireLength: c.Rocket.FireLength,
		FireWidth:  model.FireWidth(enum(model.FireWidthNames, c.Rocket.FireWidth)),
		FireColour: model.FireColour(enum(model.FireColourNames, c.Rocket.FireColour)),
	}
}

// CleanName upper-cases s and keeps the first model.MaxNameLen characters
// found in the name-entry glyph table.
func CleanName(s string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.TrimSpace(s) {
		if n == model.MaxNameLen {
			break
		}
		x, y, ok := model.FindGlyph(r)
		if !ok {
			continue
		}
		b.WriteRune(model.GlyphAt(x, y))
		n++
	}
	return b.String()
}

func enum(names []string, v string) int {
	i, _ := model.ParseEnum(names, v)
	return i
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
