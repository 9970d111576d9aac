package effects

import (
	"math/rand/v2"
	"testing"

	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/rocket"
)

func newSystem() *System { return New(rand.New(rand.NewPCG(1, 2))) }

func TestExhaustExpires(t *testing.T) {
	s := newSystem()
	opts := model.DefaultOptions().Rocket
	opts.FireLength = 4
	s.Exhaust(rocket.Vec{1, 1, 1}, rocket.Vec{1, 0, 0}, opts)
	if s.Len() != 2 {
		t.Fatalf("expected 2 exhaust puffs, got %d", s.Len())
	}
	for range opts.FireLength*exhaustLife - 1 {
		s.Tick()
	}
	if s.Len() != 2 {
		t.Fatalf("puffs expired early, %d left", s.Len())
	}
	s.Tick()
	if s.Len() != 0 {
		t.Fatalf("expected all puffs gone, %d left", s.Len())
	}
}

func TestExhaustTrailsBehind(t *testing.T) {
	s := newSystem()
	opts := model.DefaultOptions().Rocket
	opts.FireWidth = model.FireSkinny
	s.Exhaust(rocket.Vec{5, 5, 5}, rocket.Vec{2, 0, 0}, opts)
	for range 10 {
		s.Tick()
	}
	s.Each(func(p Position, sp Spark, heat float64) {
		if p.X >= 5 {
			t.Fatalf("exhaust drifted ahead of the rocket: x=%v", p.X)
		}
		if heat <= 0 || heat > 1 {
			t.Fatalf("heat out of range: %v", heat)
		}
		if sp.Kind != KindExhaust {
			t.Fatalf("unexpected kind %d", sp.Kind)
		}
	})
}

func TestNoFireNoExhaust(t *testing.T) {
	s := newSystem()
	opts := model.DefaultOptions().Rocket
	opts.Fire = false
	s.Exhaust(rocket.Vec{}, rocket.Vec{1, 0, 0}, opts)
	if s.Len() != 0 {
		t.Fatalf("expected no particles, got %d", s.Len())
	}
}

func TestImpactFallsToBoard(t *testing.T) {
	s := newSystem()
	s.Impact(3.5, 4.5, true)
	s.Impact(8.5, 1.5, false)
	if s.Len() != blastSparks+splashDrops {
		t.Fatalf("expected %d particles, got %d", blastSparks+splashDrops, s.Len())
	}
	for range impactLife - 1 {
		s.Tick()
	}
	s.Each(func(p Position, _ Spark, _ float64) {
		if p.Z < 0 {
			t.Fatalf("particle sank below the board: z=%v", p.Z)
		}
	})
	s.Tick()
	if s.Len() != 0 {
		t.Fatalf("expected impact to clear, %d left", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := newSystem()
	s.Impact(0, 0, true)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty system, got %d", s.Len())
	}
	s.Impact(0, 0, false)
	if s.Len() != splashDrops {
		t.Fatalf("system unusable after clear, got %d", s.Len())
	}
}
