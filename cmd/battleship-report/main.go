package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/seaboard/battleship/internal/game"
	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/rocket"
	"github.com/seaboard/battleship/internal/scene"
	"github.com/seaboard/battleship/internal/timer"
)

const (
	tick     = 200 * time.Millisecond
	maxTicks = 20000
)

var errStalled = errors.New("game did not finish")

type gameStats struct {
	index  int
	winner int
	shots  int
	hits   int
	misses int
}

type summary struct {
	games    int
	wins     [2]int
	minShots int
	maxShots int
	avgShots float64
	accuracy float64
}

func main() {
	var games int
	var seed uint64
	var p1, p2 string
	var copyReport bool

	flag.IntVar(&games, "games", 20, "number of AI-vs-AI games")
	flag.Uint64Var(&seed, "seed", 1, "RNG seed")
	flag.StringVar(&p1, "p1", "Hard AI", "player 1 controller (Easy AI, Normal AI, Hard AI)")
	flag.StringVar(&p2, "p2", "Normal AI", "player 2 controller")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.Parse()

	if games <= 0 {
		fmt.Println("error: -games must be > 0")
		return
	}
	var ais [2]model.AIType
	for i, name := range []string{p1, p2} {
		v, err := model.ParseEnum(model.AINames, name)
		if err != nil || !model.AIType(v).IsAI() {
			fmt.Printf("error: -p%d must name an AI, got %q\n", i+1, name)
			return
		}
		ais[i] = model.AIType(v)
	}

	all, err := runBatch(games, seed, ais)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	var b strings.Builder
	writeReport(&b, seed, ais, all)
	fmt.Print(b.String())

	if copyReport {
		if err := clipboard.WriteAll(b.String()); err != nil {
			fmt.Printf("error: copy report: %v\n", err)
			return
		}
		fmt.Println("report copied to clipboard")
	}
}

// runBatch plays games back to back on one headless Logic.
func runBatch(games int, seed uint64, ais [2]model.AIType) ([]gameStats, error) {
	md := model.New()
	o := &md.Options
	o.BoardAnimation = false
	o.AIAnimation = false
	o.MessageAnimation = false
	o.Sound = false
	o.Rocket.Path = model.RocketOff
	for i := range md.Players {
		p := &md.Players[i]
		p.Name = fmt.Sprintf("P%d", i+1)
		p.AI = ais[i]
		p.AutoPlace = true
		p.Fog = false
	}

	logger := log.New(io.Discard)
	sched := timer.New()
	r := rocket.New()
	var l *game.Logic
	sc := scene.New(md, func() bool { return l != nil && l.Menu().Open() }, r, logger)
	l = game.New(game.Config{
		Model:  md,
		View:   sc,
		Rocket: r,
		Timers: sched,
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})

	all := make([]gameStats, 0, games)
	for i := range games {
		if i > 0 {
			l.Restart()
		}
		l.NewGame()
		for step := 0; step < maxTicks && md.State != model.StateGameOver; step++ {
			if err := l.Err(); err != nil {
				return all, fmt.Errorf("game %d: %w", i+1, err)
			}
			sched.Advance(tick)
		}
		if md.State != model.StateGameOver {
			return all, fmt.Errorf("game %d: %w (state %s)", i+1, errStalled, md.State)
		}
		w := md.Players[md.Curr]
		all = append(all, gameStats{
			index:  i + 1,
			winner: md.Curr,
			shots:  l.BattleLog().Shots(md.Curr),
			hits:   w.Hits,
			misses: w.Misses,
		})
	}
	return all, nil
}

func summarize(all []gameStats) summary {
	s := summary{games: len(all)}
	if len(all) == 0 {
		return s
	}
	total, hits := 0, 0
	s.minShots = all[0].shots
	for _, g := range all {
		s.wins[g.winner]++
		total += g.shots
		hits += g.hits
		s.minShots = min(s.minShots, g.shots)
		s.maxShots = max(s.maxShots, g.shots)
	}
	s.avgShots = float64(total) / float64(len(all))
	if total > 0 {
		s.accuracy = float64(hits) / float64(total)
	}
	return s
}

func writeReport(w io.Writer, seed uint64, ais [2]model.AIType, all []gameStats) {
	fmt.Fprintf(w, "=== Battleship AI Report ===\n")
	fmt.Fprintf(w, "p1=%s p2=%s games=%d seed=%d\n\n", ais[0], ais[1], len(all), seed)
	for _, g := range all {
		fmt.Fprintf(w, "game %3d: winner=p%d shots=%d hits=%d misses=%d\n", g.index, g.winner+1, g.shots, g.hits, g.misses)
	}
	s := summarize(all)
	fmt.Fprintf(w, "\n--- Aggregate ---\n")
	fmt.Fprintf(w, "wins: p1=%d (%s) p2=%d (%s)\n", s.wins[0], ais[0], s.wins[1], ais[1])
	fmt.Fprintf(w, "shots_to_win: avg=%.1f min=%d max=%d\n", s.avgShots, s.minShots, s.maxShots)
	fmt.Fprintf(w, "winner_accuracy=%.1f%%\n", s.accuracy*100)
}
