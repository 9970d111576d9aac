package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/seaboard/battleship/internal/model"
)

func TestDefaultsMatchModel(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("embedded defaults do not validate: %v", err)
	}
	md := model.New()
	c.Apply(md)
	if md.Options != model.DefaultOptions() {
		t.Fatalf("expected default options %+v, got %+v", model.DefaultOptions(), md.Options)
	}
	if md.Players[0].AI != model.Human || md.Players[1].AI != model.HardAI {
		t.Fatalf("unexpected default controllers %s / %s", md.Players[0].AI, md.Players[1].AI)
	}
	if !md.Players[1].AutoPlace || !md.Players[1].Fog || md.Players[0].AutoPlace {
		t.Fatal("unexpected default placement or fog flags")
	}
	if c.Level() != log.InfoLevel {
		t.Fatalf("expected info level, got %s", c.Level())
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battleship.json")
	data := `{"fog": "heavy", "player2": {"ai": "easyai"}, "rocket": {"speed": 9}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	md := model.New()
	c.Apply(md)

	if md.Options.Fog != model.FogHeavy {
		t.Fatalf("expected heavy fog, got %s", md.Options.Fog)
	}
	if md.Players[1].AI != model.EasyAI {
		t.Fatalf("expected easy AI, got %s", md.Players[1].AI)
	}
	if md.Players[1].Name != "PLAYER 2" || !md.Players[1].AutoPlace {
		t.Fatalf("player 2 lost its defaults: %+v", c.Player2)
	}
	if md.Options.Rocket.Speed != model.MaxRocketSpeed {
		t.Fatalf("expected speed clamped to %d, got %d", model.MaxRocketSpeed, md.Options.Rocket.Speed)
	}
	if md.Options.Rocket.Size != 2 {
		t.Fatalf("expected default rocket size, got %d", md.Options.Rocket.Size)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if *c != *Default() {
		t.Fatal("empty path should return the defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := filepath.Join(dir, "typo.json")
	if err := os.WriteFile(path, []byte(`{"fgo": "off"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestValidateReportsEveryBadEnum(t *testing.T) {
	c := Default()
	c.Fog = "soup"
	c.Rocket.FireColour = "plaid"
	c.Player1.AI = "robot"
	c.LogLevel = "loud"

	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{"fog", "rocket.fire_colour", "player1.ai", "log_level"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

func TestValidateClamps(t *testing.T) {
	c := Default()
	c.Window = Window{Width: 10, Height: 100000}
	c.Rocket.Size = 0
	c.Rocket.FireLength = 100
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Window.Width != MinWindowWidth || c.Window.Height != MaxWindowHeight {
		t.Fatalf("window not clamped: %+v", c.Window)
	}
	if c.Rocket.Size != model.MinRocketSize || c.Rocket.FireLength != model.MaxFireLength {
		t.Fatalf("rocket not clamped: %+v", c.Rocket)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alice", "ALICE"},
		{"  Bob  ", "BOB"},
		{"averyveryverylongname", "AVERYVERY"},
		{"x_y#z", "XYZ"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanName(tt.in); got != tt.want {
			t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmptyNameFallsBack(t *testing.T) {
	c := Default()
	c.Player2.Name = "###"
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Player2.Name != "PLAYER 2" {
		t.Fatalf("expected fallback name, got %q", c.Player2.Name)
	}
}
