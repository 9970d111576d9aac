package game

import (
	"fmt"

	"github.com/seaboard/battleship/internal/model"
)

// tryPlaceShip commits ship i of player p at its current origin. Nothing
// changes if any cell is off the board or taken.
func (l *Logic) tryPlaceShip(p, i int) bool {
	pl := &l.model.Players[p]
	ship := &pl.Ships[i]
	for x, y := range ship.Cells {
		if !model.InBounds(x, y) || pl.ShipAt.Get(x, y) != model.NoShip {
			return false
		}
	}
	for x, y := range ship.Cells {
		pl.ShipAt.Set(x, y, i)
	}
	ship.State = model.ShipPlaced
	return true
}

// unplaceShip clears ship i of player p from the board and makes it the
// ship being placed.
func (l *Logic) unplaceShip(p, i int) {
	pl := &l.model.Players[p]
	ship := &pl.Ships[i]
	for x, y := range ship.Cells {
		if pl.ShipAt.Get(x, y) == i {
			pl.ShipAt.Set(x, y, model.NoShip)
		}
	}
	ship.State = model.ShipPlacing
}

// autoplaceShips drops every ship of player p at random until it fits.
func (l *Logic) autoplaceShips(p int) error {
	pl := &l.model.Players[p]
	for i := range pl.Ships {
		ship := &pl.Ships[i]
		placed := false
		for tries := 0; tries < AutoplaceTries; tries++ {
			ship.X = l.rng.IntN(model.GridDim)
			ship.Y = l.rng.IntN(model.GridDim)
			ship.Down = l.rng.IntN(2) == 1
			if l.tryPlaceShip(p, i) {
				placed = true
				break
			}
		}
		if !placed {
			return fmt.Errorf("place %s for %s: %w", ship.Type, pl.Name, ErrAutoplaceExhausted)
		}
	}
	return nil
}

// fire resolves the current player's shot at the cell under their cursor
// and reports whether it won the game.
func (l *Logic) fire() bool {
	md := l.model
	me, them := md.Current(), md.Opponent()
	x, y := me.SelX, me.SelY

	msg := model.GameMessage{
		Kind:    model.GridMiss,
		Shooter: md.Curr,
		Size:    model.MinMsgSize,
		Delay:   model.HitMsgDelay,
	}
	won := false

	idx := them.ShipAt.Get(x, y)
	if idx == model.NoShip {
		them.Grid.Set(x, y, model.GridMiss)
		me.Misses++
	} else {
		msg.Kind = model.GridHit
		them.Grid.Set(x, y, model.GridHit)
		me.Hits++

		ship := &them.Ships[idx]
		ship.Hits++
		if ship.Hits == ship.Length {
			ship.State = model.ShipSunk
			them.Sunk++
			msg.Sunk = true
			msg.Ship = ship.Type
			msg.Delay = model.SunkMsgDelay
			if them.Lost() {
				msg = model.GameMessage{
					Kind:    model.GridEmpty,
					Shooter: md.Curr,
					Size:    model.MinMsgSize,
					Delay:   model.WinMsgDelay,
				}
				won = true
			}
		}
	}

	md.Message = msg
	l.battle.Record(md.Curr, me.Name, x, y, msg)
	return won
}

// fixSelect moves the fire cursor, wrapping at the board edges.
func (l *Logic) fixSelect(dx, dy int) {
	p := l.model.Current()
	p.SelX = (p.SelX + dx + model.GridDim) % model.GridDim
	p.SelY = (p.SelY + dy + model.GridDim) % model.GridDim
}
