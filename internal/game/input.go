package game

import (
	"github.com/seaboard/battleship/internal/input"
	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/scene"
)

// Keypress handles one key and reports whether the view needs redrawing.
func (l *Logic) Keypress(key input.Key, mod input.Modifiers) bool {
	refresh := l.globalKeypress(key, mod)
	if !refresh {
		if l.menu.Open() {
			refresh = l.menu.Keypress(key)
		} else {
			refresh = l.gameKeypress(key, mod)
		}
	}
	if refresh {
		l.view.Refresh()
	}
	return refresh
}

func (l *Logic) globalKeypress(key input.Key, mod input.Modifiers) bool {
	w, _ := l.view.Size()
	if w <= 0 {
		w = 1
	}
	diff := 10 / float64(w) * 360
	if mod.Shift {
		diff = -diff
	}

	switch {
	case key == input.KeyQuit:
		l.Quit()
		return true
	case key == input.KeyReset:
		for axis := 0; axis < 3; axis++ {
			l.view.SetRotate(axis, 0, scene.UserSet)
			l.view.SetTranslate(axis, 0, scene.UserSet)
		}
		return true
	}

	axis := -1
	switch {
	case key.Is('x'):
		axis = 0
	case key.Is('y'):
		axis = 1
	case key.Is('z'):
		axis, diff = 2, -diff
	}
	if axis < 0 {
		return false
	}
	switch {
	case mod.Alt:
		l.view.SetTranslate(axis, diff, scene.UserAdd)
	case mod.Ctrl:
		l.view.SetRotate(axis, diff, scene.UserAdd)
	default:
		return false
	}
	return true
}

func (l *Logic) gameKeypress(key input.Key, mod input.Modifiers) bool {
	md := l.model
	if key == input.KeyEsc {
		if md.Demo {
			md.Demo = false
			l.Restart()
			return true
		}
		l.menu.Load(l.menu.Options)
		return true
	}

	switch md.State {
	case model.StatePlaceShips:
		return l.placeKeypress(key)

	case model.StateTransition, model.StateFireing, model.StateMessage:
		l.cancel = true
		return true

	case model.StateAIPlaying:
		if !mod.AI {
			l.cancel = true
			return false
		}
		return l.fireKeypress(key)

	case model.StatePlaying:
		return l.fireKeypress(key)

	case model.StateGameOver:
		l.nextState()
		return true
	}
	return false
}

func (l *Logic) placeKeypress(key input.Key) bool {
	md := l.model
	p := md.Current()
	i := p.Placing()
	if i < 0 {
		return false
	}
	ship := &p.Ships[i]
	w, h := ship.Span()

	switch {
	case key == input.KeyLeft:
		if ship.X > 0 {
			ship.X--
		}
	case key == input.KeyRight:
		if ship.X+w < model.GridDim {
			ship.X++
		}
	case key == input.KeyUp:
		if ship.Y > 0 {
			ship.Y--
		}
	case key == input.KeyDown:
		if ship.Y+h < model.GridDim {
			ship.Y++
		}
	case key == input.KeyEnter:
		if !l.tryPlaceShip(md.Curr, i) {
			return true
		}
		if i == model.NumShips-1 {
			l.nextState()
		} else {
			p.Ships[i+1].State = model.ShipPlacing
		}
	case key == input.KeyBackspace:
		if i == 0 {
			return true
		}
		ship.State = model.ShipNotPlaced
		l.unplaceShip(md.Curr, i-1)
	case key == input.KeyRotate || key.Is('f'):
		ship.Down = !ship.Down
	default:
		return false
	}
	return true
}

func (l *Logic) fireKeypress(key input.Key) bool {
	md := l.model
	switch key {
	case input.KeyLeft:
		l.fixSelect(-1, 0)
	case input.KeyRight:
		l.fixSelect(1, 0)
	case input.KeyUp:
		l.fixSelect(0, -1)
	case input.KeyDown:
		l.fixSelect(0, 1)
	case input.KeyEnter:
		p := md.Current()
		if md.Opponent().Grid.Get(p.SelX, p.SelY) == model.GridEmpty {
			l.nextState()
		}
		return false
	default:
		return false
	}
	return true
}

// MouseDown records a pressed button and the drag origin.
func (l *Logic) MouseDown(b input.MouseButton, mod input.Modifiers, x, y float64) {
	l.mouse.buttons |= b
	l.mouse.mod = mod
	l.mouse.x, l.mouse.y = x, y
}

// MouseUp records a released button.
func (l *Logic) MouseUp(b input.MouseButton, mod input.Modifiers, x, y float64) {
	l.mouse.buttons &^= b
	l.mouse.mod = mod
}

// MouseMove drags the camera: alt pans, ctrl orbits. Game state is never
// touched.
func (l *Logic) MouseMove(x, y float64) {
	w, h := l.view.Size()
	if w <= 0 || h <= 0 {
		return
	}
	dx := (x - l.mouse.x) / float64(w)
	dy := (y - l.mouse.y) / float64(h)
	l.mouse.x, l.mouse.y = x, y

	b := l.mouse.buttons
	refresh := false
	if l.mouse.mod.Alt {
		tx, ty := dx*15, dy*15
		if b&input.MouseLeft != 0 {
			l.view.SetTranslate(0, tx, scene.UserAdd)
		}
		if b&input.MouseMiddle != 0 {
			l.view.SetTranslate(1, -ty, scene.UserAdd)
		}
		if b&input.MouseRight != 0 {
			l.view.SetTranslate(2, ty, scene.UserAdd)
		}
		refresh = true
	}
	if l.mouse.mod.Ctrl {
		rx, ry := dx*360, dy*360
		if b&input.MouseLeft != 0 {
			l.view.SetRotate(1, rx, scene.UserAdd)
		}
		if b&input.MouseMiddle != 0 {
			l.view.SetRotate(0, ry, scene.UserAdd)
		}
		if b&input.MouseRight != 0 {
			l.view.SetRotate(2, -rx, scene.UserAdd)
		}
		refresh = true
	}
	if refresh {
		l.view.Refresh()
	}
}
