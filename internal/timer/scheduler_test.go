package timer

import (
	"testing"
	"time"
)

func TestRepeatsUntilFalse(t *testing.T) {
	s := New()
	calls := 0
	s.Start(10*time.Millisecond, func() bool {
		calls++
		return calls < 3
	})
	for i := 0; i < 10; i++ {
		s.Advance(10 * time.Millisecond)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if s.Active() != 0 {
		t.Fatalf("expected no active timers, got %d", s.Active())
	}
}

func TestNotDueYet(t *testing.T) {
	s := New()
	fired := false
	s.Start(50*time.Millisecond, func() bool { fired = true; return false })
	s.Advance(49 * time.Millisecond)
	if fired {
		t.Fatal("timer fired early")
	}
	s.Advance(time.Millisecond)
	if !fired {
		t.Fatal("timer did not fire when due")
	}
}

func TestFiresOncePerAdvance(t *testing.T) {
	s := New()
	calls := 0
	s.Start(time.Millisecond, func() bool { calls++; return true })
	s.Advance(time.Second)
	if calls != 1 {
		t.Fatalf("expected 1 call for a long frame, got %d", calls)
	}
}

func TestStartFromCallback(t *testing.T) {
	s := New()
	second := 0
	s.Start(time.Millisecond, func() bool {
		s.Start(time.Millisecond, func() bool { second++; return false })
		return false
	})
	s.Advance(time.Millisecond)
	if second != 0 {
		t.Fatal("timer started in a callback ran in the same advance")
	}
	s.Advance(time.Millisecond)
	if second != 1 {
		t.Fatalf("expected chained timer to run once, got %d", second)
	}
}

func TestStopAllFromCallback(t *testing.T) {
	s := New()
	other := false
	s.Start(time.Millisecond, func() bool { s.StopAll(); return true })
	s.Start(time.Millisecond, func() bool { other = true; return true })
	s.Advance(time.Millisecond)
	if other {
		t.Fatal("stopped timer still fired")
	}
	if s.Active() != 0 {
		t.Fatalf("expected no timers, got %d", s.Active())
	}
}
