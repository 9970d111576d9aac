package game

import (
	"slices"

	"github.com/seaboard/battleship/internal/input"
	"github.com/seaboard/battleship/internal/model"
)

// Follow-up directions, clockwise from up.
const (
	dirUp = iota
	dirRight
	dirDown
	dirLeft
	numDirs
)

// hitRecord tracks the search around one damaged ship.
type hitRecord struct {
	x, y  int // first hit on the ship
	tried [numDirs]bool
	dir   int
}

// aiMove is the memory of one computer player.
type aiMove struct {
	x, y   int // target
	chosen bool
	mod    int // parity offset for the hard search, 0 or 1
	state  int // hard search strictness, 0..3
	hits   []hitRecord
}

// Hard search filters, strictest first.
const (
	searchParity = iota // spaced diagonals with three or more open neighbours
	searchTwoOpen
	searchOneOpen
	searchAny
)

// aiPlay is the timer callback that walks the cursor to the target and
// fires.
func (l *Logic) aiPlay() bool {
	md := l.model
	if l.menu.Open() || !md.Current().AI.IsAI() {
		l.cancel = false
		md.State = model.StatePlaying
		return false
	}

	ai := &l.ai[md.Curr]
	if !ai.chosen {
		if err := l.aiPickMove(); err != nil {
			l.fail(err)
			return false
		}
	}

	p := md.Current()
	if l.cancel || !md.Options.AIAnimation {
		p.SelX, p.SelY = ai.x, ai.y
	}

	mod := input.Modifiers{AI: true}
	switch {
	case p.SelX == ai.x && p.SelY == ai.y:
		// cleared first so the follow-up can choose again
		ai.chosen = false
		l.cancel = false
		l.Keypress(input.KeyEnter, mod)
		if md.State == model.StateAIPlaying && l.err == nil {
			l.log.Warn("ai target already resolved", "player", md.Curr, "x", ai.x, "y", ai.y)
			return true
		}
		return false
	case p.SelX < ai.x:
		l.Keypress(input.KeyRight, mod)
	case p.SelX > ai.x:
		l.Keypress(input.KeyLeft, mod)
	case p.SelY < ai.y:
		l.Keypress(input.KeyDown, mod)
	default:
		l.Keypress(input.KeyUp, mod)
	}
	return true
}

// aiPickMove scans the opponent board in raster order from a random cell
// for the first cell the player's search accepts.
func (l *Logic) aiPickMove() error {
	md := l.model
	ai := &l.ai[md.Curr]
	grid := &md.Opponent().Grid
	hard := md.Current().AI == model.HardAI

	ai.x = l.rng.IntN(model.GridDim)
	ai.y = l.rng.IntN(model.GridDim)
	startX, startY := ai.x, ai.y

	for {
		if grid.Get(ai.x, ai.y) == model.GridEmpty {
			if !hard || ai.state >= searchAny || accept(grid, ai) {
				break
			}
		}

		ai.x++
		if ai.x >= model.GridDim {
			ai.x = 0
			ai.y = (ai.y + 1) % model.GridDim
		}

		if ai.x == startX && ai.y == startY {
			if !hard || ai.state >= searchAny {
				return ErrBoardFull
			}
			ai.state++
			l.log.Debug("ai search widened", "player", md.Curr, "state", ai.state)
		}
	}
	ai.chosen = true
	return nil
}

// accept applies the hard search filter for the current strictness.
func accept(grid *model.FiredGrid, ai *aiMove) bool {
	open := openNeighbours(grid, ai.x, ai.y)
	switch ai.state {
	case searchParity:
		return (ai.y+ai.mod)%3 == ai.x%3 && open > 2
	case searchTwoOpen:
		return open > 1
	case searchOneOpen:
		return open > 0
	}
	return true
}

func openNeighbours(grid *model.FiredGrid, x, y int) int {
	open := 0
	for _, d := range [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nx, ny := x+d[0], y+d[1]
		if model.InBounds(nx, ny) && grid.Get(nx, ny) == model.GridEmpty {
			open++
		}
	}
	return open
}

// aiFollowHit updates the hit queue with the result of the last shot and,
// while damaged ships remain, picks the next cell along one of them.
func (l *Logic) aiFollowHit() {
	md := l.model
	ai := &l.ai[md.Curr]
	them := md.Opponent()

	if ship := them.ShipAt.Get(ai.x, ai.y); ship != model.NoShip {
		known := false
		for i := 0; i < len(ai.hits); {
			other := them.ShipAt.Get(ai.hits[i].x, ai.hits[i].y)
			if other == ship {
				known = true
			}
			if them.Ships[other].State != model.ShipSunk {
				i++
				continue
			}
			ai.hits = slices.Delete(ai.hits, i, i+1)
			if i == 0 && len(ai.hits) > 0 {
				ai.x, ai.y = ai.hits[0].x, ai.hits[0].y
			}
		}
		if !known && them.Ships[ship].State != model.ShipSunk {
			ai.hits = append(ai.hits, hitRecord{x: ai.x, y: ai.y, dir: l.rng.IntN(numDirs)})
		}
	} else if len(ai.hits) > 0 {
		// Miss: turn around and walk back through the first hit.
		h := &ai.hits[0]
		h.tried[h.dir] = true
		h.dir = (h.dir + 2) % numDirs
		ai.x, ai.y = h.x, h.y
	}

	grid := &them.Grid
	for len(ai.hits) > 0 && !ai.chosen {
		h := &ai.hits[0]
		for turns := 0; h.tried[h.dir] && turns < numDirs; turns++ {
			h.dir = (h.dir + 1) % numDirs
			ai.x, ai.y = h.x, h.y
		}
		if h.tried[h.dir] {
			l.log.Error("ai failed to sink ship", "player", md.Curr, "x", h.x, "y", h.y)
			ai.hits = slices.Delete(ai.hits, 0, 1)
			if len(ai.hits) > 0 {
				ai.x, ai.y = ai.hits[0].x, ai.hits[0].y
			}
			continue
		}

		nx, ny := step(ai.x, ai.y, h.dir)
		if !model.InBounds(nx, ny) {
			h.tried[h.dir] = true
			continue
		}
		ai.x, ai.y = nx, ny
		if grid.Get(ai.x, ai.y) != model.GridEmpty {
			h.tried[h.dir] = true
		}
		ai.chosen = !h.tried[h.dir]
	}
}

func step(x, y, dir int) (int, int) {
	switch dir {
	case dirUp:
		return x, y - 1
	case dirRight:
		return x + 1, y
	case dirDown:
		return x, y + 1
	default:
		return x - 1, y
	}
}
