package rocket

import (
	"math"
	"testing"
)

func TestMoveWithoutPathStops(t *testing.T) {
	r := New()
	r.Reset()
	if r.Move() {
		t.Fatal("rocket with no path should not move")
	}
	if !r.Stopped() {
		t.Fatal("expected stopped")
	}
}

func TestFlightReachesTarget(t *testing.T) {
	r := New()
	r.SetDetail(0.1)
	r.SetPath([]Vec{{0, 0, 0}, {5, 0, 10}, {10, 0, 0}})

	steps := 0
	for r.Move() {
		steps++
		if steps > 100 {
			t.Fatal("rocket never stopped")
		}
	}
	if !r.Stopped() {
		t.Fatal("expected stopped after flight")
	}
	// Last evaluated point is just short of or at t=1.
	if got := r.Loc(); math.Abs(got[0]-10) > 1.5 {
		t.Fatalf("expected rocket near x=10, got %v", got)
	}
	if r.Progress() != 1 {
		t.Fatalf("expected progress 1, got %v", r.Progress())
	}
}

func TestSplineMidpoint(t *testing.T) {
	r := New()
	r.SetPath([]Vec{{0, 0, 0}, {5, 0, 10}, {10, 0, 0}})
	mid := r.point(0, 0.5)
	if mid[0] != 5 || mid[2] != 5 {
		t.Fatalf("expected midpoint (5,0,5), got %v", mid)
	}
}

func TestResetRestartsFlight(t *testing.T) {
	r := New()
	r.SetPath([]Vec{{0, 0, 0}, {1, 1, 1}, {2, 0, 0}})
	for r.Move() {
	}
	r.Reset()
	if r.Stopped() {
		t.Fatal("reset should clear stopped")
	}
	if r.Loc() != (Vec{0, 0, 0}) {
		t.Fatalf("expected start position, got %v", r.Loc())
	}
	if !r.Move() {
		t.Fatal("expected rocket to move after reset")
	}
}

func TestSampleCoversPath(t *testing.T) {
	r := New()
	r.SetDetail(0.25)
	r.SetPath([]Vec{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	if n := len(r.Sample()); n != 5 {
		t.Fatalf("expected 5 samples, got %d", n)
	}
}
