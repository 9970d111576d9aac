package main

import (
	"strings"
	"testing"

	"github.com/seaboard/battleship/internal/model"
)

func TestSummarize(t *testing.T) {
	all := []gameStats{
		{winner: 0, shots: 40, hits: 17},
		{winner: 1, shots: 60, hits: 17},
		{winner: 0, shots: 50, hits: 17},
	}
	s := summarize(all)
	if s.wins != [2]int{2, 1} {
		t.Fatalf("expected wins [2 1], got %v", s.wins)
	}
	if s.minShots != 40 || s.maxShots != 60 {
		t.Fatalf("expected shots 40..60, got %d..%d", s.minShots, s.maxShots)
	}
	if s.avgShots != 50 {
		t.Fatalf("expected average 50, got %.2f", s.avgShots)
	}
	want := 51.0 / 150.0
	if s.accuracy != want {
		t.Fatalf("expected accuracy %.3f, got %.3f", want, s.accuracy)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := summarize(nil); s.games != 0 || s.avgShots != 0 {
		t.Fatalf("expected an empty summary, got %+v", s)
	}
}

func TestRunBatchFinishesEveryGame(t *testing.T) {
	ais := [2]model.AIType{model.HardAI, model.EasyAI}
	all, err := runBatch(4, 7, ais)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 games, got %d", len(all))
	}
	for _, g := range all {
		if g.hits != 17 {
			t.Fatalf("game %d: winner needs 17 hits, got %d", g.index, g.hits)
		}
		if g.shots != g.hits+g.misses {
			t.Fatalf("game %d: shots %d != hits %d + misses %d", g.index, g.shots, g.hits, g.misses)
		}
		if g.shots > model.GridDim*model.GridDim {
			t.Fatalf("game %d: %d shots on a 100 cell board", g.index, g.shots)
		}
	}
}

func TestRunBatchIsDeterministic(t *testing.T) {
	ais := [2]model.AIType{model.NormalAI, model.NormalAI}
	a, err := runBatch(3, 11, ais)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runBatch(3, 11, ais)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("game %d differs between runs: %+v vs %+v", i+1, a[i], b[i])
		}
	}
}

func TestWriteReport(t *testing.T) {
	var b strings.Builder
	all := []gameStats{{index: 1, winner: 1, shots: 45, hits: 17, misses: 28}}
	writeReport(&b, 3, [2]model.AIType{model.EasyAI, model.HardAI}, all)
	out := b.String()
	for _, want := range []string{"p1=Easy AI", "game   1: winner=p2 shots=45", "wins: p1=0 (Easy AI) p2=1 (Hard AI)", "avg=45.0 min=45 max=45"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
