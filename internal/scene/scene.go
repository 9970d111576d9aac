// Package scene holds the camera and board pose that the game logic
// animates, and prepares rocket flights between the two boards.
package scene

import (
	"github.com/charmbracelet/log"

	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/rocket"
)

// Layer selects one of the transform sets that sum to the final pose.
type Layer uint8

const (
	LayerUser Layer = iota // free camera moved by the player
	LayerMenu              // free camera while a menu is open
	LayerGame              // board pose animated by the game
)

// Mode says how a Set call changes a transform.
type Mode uint8

const (
	UserSet Mode = iota // user layer (menu layer while a menu is open), replace
	UserAdd             // user layer (menu layer while a menu is open), add
	GameSet             // game layer, replace
	GameAdd             // game layer, add
)

// Board placement in cell units. The opponent board sits BoardGap cells to
// the right of the shooter's board.
const (
	BoardGap    = 12
	SideArc     = 8.0 // height of the side-on flight
	TopArc      = 4.0 // sideways bulge of the top-down flight
	boardCenter = model.GridDim / 2.0
)

type transform struct {
	rot   [3]float64
	trans [3]float64
}

// Scene is the View the game logic drives.
type Scene struct {
	model    *model.Model
	menuOpen func() bool
	rocket   *rocket.Rocket
	log      *log.Logger

	width, height int
	layers        [3]transform
	dirty         bool
	flights       int
}

// New returns a scene for md. menuOpen reports whether a menu is showing.
func New(md *model.Model, menuOpen func() bool, r *rocket.Rocket, logger *log.Logger) *Scene {
	return &Scene{
		model:    md,
		menuOpen: menuOpen,
		rocket:   r,
		log:      logger,
		width:    800,
		height:   600,
		dirty:    true,
	}
}

// Refresh marks the scene for redraw.
func (s *Scene) Refresh() { s.dirty = true }

// TakeDirty reports and clears the redraw request.
func (s *Scene) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Size returns the drawable size in pixels.
func (s *Scene) Size() (int, int) { return s.width, s.height }

// SetSize records the drawable size.
func (s *Scene) SetSize(w, h int) {
	if w > 0 && h > 0 {
		s.width, s.height = w, h
	}
}

// Rocket returns the projectile the scene aims.
func (s *Scene) Rocket() *rocket.Rocket { return s.rocket }

// Flights returns how many rocket paths have been prepared.
func (s *Scene) Flights() int { return s.flights }

// Rotation returns the rotation of one layer, in degrees.
func (s *Scene) Rotation(axis int, l Layer) float64 {
	if !s.checkAxis("rotation", axis) || int(l) >= len(s.layers) {
		return 0
	}
	return s.layers[l].rot[axis]
}

// Translation returns the translation of one layer.
func (s *Scene) Translation(axis int, l Layer) float64 {
	if !s.checkAxis("translation", axis) || int(l) >= len(s.layers) {
		return 0
	}
	return s.layers[l].trans[axis]
}

// SetRotate changes the rotation of an axis, in degrees.
func (s *Scene) SetRotate(axis int, v float64, mode Mode) {
	if !s.checkAxis("set rotate", axis) {
		return
	}
	s.apply(&s.layerFor(mode).rot[axis], v, mode)
}

// SetTranslate changes the translation of an axis.
func (s *Scene) SetTranslate(axis int, v float64, mode Mode) {
	if !s.checkAxis("set translate", axis) {
		return
	}
	s.apply(&s.layerFor(mode).trans[axis], v, mode)
}

// Camera returns the summed rotation and translation to draw with. The
// menu layer replaces the user layer while a menu is open.
func (s *Scene) Camera() (rot, trans [3]float64) {
	free := s.layers[LayerUser]
	if s.menuOpen != nil && s.menuOpen() {
		free = s.layers[LayerMenu]
	}
	g := s.layers[LayerGame]
	for i := range rot {
		rot[i] = free.rot[i] + g.rot[i]
		trans[i] = free.trans[i] + g.trans[i]
	}
	return rot, trans
}

func (s *Scene) layerFor(mode Mode) *transform {
	switch mode {
	case GameSet, GameAdd:
		return &s.layers[LayerGame]
	}
	if s.menuOpen != nil && s.menuOpen() {
		return &s.layers[LayerMenu]
	}
	return &s.layers[LayerUser]
}

func (s *Scene) apply(dst *float64, v float64, mode Mode) {
	switch mode {
	case UserSet, GameSet:
		*dst = v
	case UserAdd, GameAdd:
		*dst += v
	default:
		s.log.Warn("unknown transform mode", "mode", mode)
	}
}

func (s *Scene) checkAxis(op string, axis int) bool {
	if axis < 0 || axis > 2 {
		s.log.Warn("invalid axis", "op", op, "axis", axis)
		return false
	}
	return true
}

// ReadyRocket aims the rocket from the shooter's board to the cell under
// their fire cursor on the opponent board. Coordinates are in cells with
// the shooter's board at the origin; z is height above the table.
func (s *Scene) ReadyRocket() {
	p := s.model.Current()
	start := rocket.Vec{boardCenter, boardCenter, 0}
	end := rocket.Vec{BoardGap + float64(p.SelX) + 0.5, float64(p.SelY) + 0.5, 0}
	mid := rocket.Vec{(start[0] + end[0]) / 2, (start[1] + end[1]) / 2, 0}

	switch s.model.Options.Rocket.Path {
	case model.RocketTop:
		mid[1] -= TopArc
		mid[2] = SideArc / 2
	default:
		mid[2] = SideArc
	}
	s.rocket.SetPath([]rocket.Vec{start, mid, end})
	s.flights++
}
