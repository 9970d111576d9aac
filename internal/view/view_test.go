package view

import (
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/seaboard/battleship/internal/game"
	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/rocket"
	"github.com/seaboard/battleship/internal/scene"
	"github.com/seaboard/battleship/internal/timer"
)

// newTestView wires a view without its ebiten resources.
func newTestView() *View {
	md := model.New()
	logger := log.New(io.Discard)
	r := rocket.New()
	var l *game.Logic
	sc := scene.New(md, func() bool { return l != nil && l.Menu().Open() }, r, logger)
	l = game.New(game.Config{
		Model:  md,
		View:   sc,
		Rocket: r,
		Timers: timer.New(),
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	return &View{logic: l, model: md, scene: sc}
}

func TestShowShips(t *testing.T) {
	v := newTestView()
	md := v.model
	md.State = model.StatePlaying

	if !v.showShips(0) {
		t.Fatal("unfogged human fleet should show")
	}
	if v.showShips(1) {
		t.Fatal("fogged AI fleet should be hidden")
	}

	md.Players[0].Fog = true
	if !v.showShips(0) {
		t.Fatal("a human sees their own fogged fleet on their turn")
	}
	md.State = model.StateTransition
	if v.showShips(0) {
		t.Fatal("fogged fleets hide while the table turns")
	}
	md.State = model.StateGameOver
	if !v.showShips(1) {
		t.Fatal("every fleet shows at game over")
	}
}

func TestHint(t *testing.T) {
	v := newTestView()
	md := v.model
	md.State = model.StatePlaceShips
	md.Players[0].Ships[2].State = model.ShipPlacing
	if h := v.hint(); !strings.Contains(h, "destroyer") {
		t.Fatalf("placement hint should name the ship: %q", h)
	}
	md.State = model.StatePlaying
	md.Players[0].SelX, md.Players[0].SelY = 2, 6
	if h := v.hint(); !strings.Contains(h, "C7") {
		t.Fatalf("fire hint should name the target: %q", h)
	}
	md.Demo = true
	if h := v.hint(); !strings.Contains(h, "Demo") {
		t.Fatalf("demo hint expected: %q", h)
	}
}

func TestResultColors(t *testing.T) {
	seen := map[uint8]bool{}
	for _, r := range []game.ShotResult{game.ShotMiss, game.ShotHit, game.ShotSunk, game.ShotWin} {
		seen[resultColor(r)] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected four distinct colours, got %d", len(seen))
	}
}
