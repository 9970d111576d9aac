package scene

import (
	"math"

	"github.com/seaboard/battleship/internal/rocket"
)

// World x of the two boards. The shooter's board is always drawn on the
// left; the camera yaw is taken relative to the player on turn.
const (
	OwnBoardX      = 0
	OpponentBoardX = BoardGap
	worldCenterX   = (BoardGap + 10) / 2.0
)

// Projector maps world points to screen pixels. It is an orthographic
// camera, so a board plane maps through an affine transform.
type Projector struct {
	ax, ay [3]float64 // screen x and y per world unit on each axis
	tx, ty float64
}

// Projector builds the camera for the current frame at cellPx pixels per
// cell before zoom. Translation z zooms, x and y pan in cells.
func (s *Scene) Projector(cellPx float64) Projector {
	rot, trans := s.Camera()
	yaw := radians(rot[1] - 180*float64(s.model.Curr))
	tilt := radians(rot[0])
	roll := radians(rot[2])
	scale := cellPx * max(0.1, min(1+trans[2]/10, 10))

	var p Projector
	for axis := range 3 {
		var v [3]float64
		v[axis] = 1
		x := v[0]*math.Cos(yaw) - v[1]*math.Sin(yaw)
		y := v[0]*math.Sin(yaw) + v[1]*math.Cos(yaw)
		sy := y*math.Cos(tilt) - v[2]*math.Sin(tilt)
		p.ax[axis] = (x*math.Cos(roll) - sy*math.Sin(roll)) * scale
		p.ay[axis] = (x*math.Sin(roll) + sy*math.Cos(roll)) * scale
	}

	cx, cy := p.linear(rocket.Vec{worldCenterX, boardCenter, 0})
	p.tx = float64(s.width)/2 + trans[0]*scale - cx
	p.ty = float64(s.height)/2 - trans[1]*scale - cy
	return p
}

func (p Projector) linear(v rocket.Vec) (float64, float64) {
	return p.ax[0]*v[0] + p.ax[1]*v[1] + p.ax[2]*v[2],
		p.ay[0]*v[0] + p.ay[1]*v[1] + p.ay[2]*v[2]
}

// Project returns the screen position of world point v.
func (p Projector) Project(v rocket.Vec) (x, y float64) {
	x, y = p.linear(v)
	return x + p.tx, y + p.ty
}

// Plane returns the affine map from table-plane cell coordinates, offset
// by (ox, oy), to the screen: screen = (a*u + b*v + tx, c*u + d*v + ty).
func (p Projector) Plane(ox, oy float64) (a, b, c, d, tx, ty float64) {
	tx, ty = p.Project(rocket.Vec{ox, oy, 0})
	return p.ax[0], p.ax[1], p.ay[0], p.ay[1], tx, ty
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
