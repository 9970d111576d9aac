// Package rocket moves a projectile along a chain of quadratic splines.
package rocket

// Vec is a point or direction in board space.
type Vec [3]float64

func (v Vec) Sub(o Vec) Vec { return Vec{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// DefaultDetail is the step in t taken on each Move.
const DefaultDetail = 0.05

// Rocket follows points p0,p1,p2 then p2,p3,p4 and so on. Each segment is
// the quadratic spline p0(1-t)^2 + 2p1 t(1-t) + p2 t^2.
type Rocket struct {
	points   []Vec
	detail   float64
	progress float64
	curr     int
	loc      Vec
	dir      Vec
	stopped  bool
}

// New returns a stopped rocket with no path.
func New() *Rocket {
	return &Rocket{detail: DefaultDetail, stopped: true}
}

// SetDetail sets the t step per Move, clamped to (0, 1].
func (r *Rocket) SetDetail(d float64) {
	if d <= 0 || d > 1 {
		d = DefaultDetail
	}
	r.detail = d
}

// SetPath replaces the path and puts the rocket at its start.
func (r *Rocket) SetPath(points []Vec) {
	r.points = append(r.points[:0], points...)
	r.Reset()
}

// Path returns the control points of the current path.
func (r *Rocket) Path() []Vec { return r.points }

// Reset puts the rocket back at the start of its path.
func (r *Rocket) Reset() {
	r.stopped = false
	r.curr = 0
	r.progress = r.detail
	r.loc = Vec{}
	r.dir = Vec{}
	if len(r.points) > 0 {
		r.loc = r.points[0]
	}
	if len(r.points) > 1 {
		r.dir = r.points[1].Sub(r.points[0])
	}
}

// Stopped reports whether the rocket has reached the end of its path.
func (r *Rocket) Stopped() bool { return r.stopped }

// Move advances the rocket one step. It returns false once the path is
// exhausted, and the rocket stays stopped until Reset.
func (r *Rocket) Move() bool {
	if len(r.points) == 0 || r.curr >= len(r.points)-2 {
		r.stopped = true
		return false
	}

	old := r.loc
	r.loc = r.point(r.curr, r.progress)
	r.dir = r.loc.Sub(old)

	r.progress += r.detail
	if r.progress > 1 {
		r.progress = 0
		r.curr += 2
	}
	return true
}

// Loc returns the current position.
func (r *Rocket) Loc() Vec { return r.loc }

// Dir returns the last movement vector.
func (r *Rocket) Dir() Vec { return r.dir }

// Progress returns how far along the whole path the rocket is, in [0, 1].
func (r *Rocket) Progress() float64 {
	segs := (len(r.points) - 1) / 2
	if segs <= 0 || r.stopped {
		if r.stopped && segs > 0 {
			return 1
		}
		return 0
	}
	p := (float64(r.curr/2) + r.progress) / float64(segs)
	if p > 1 {
		p = 1
	}
	return p
}

// Sample returns the spline evaluated at every detail step, for drawing
// the path.
func (r *Rocket) Sample() []Vec {
	var out []Vec
	c, t := 0, 0.0
	for c < len(r.points)-2 {
		out = append(out, r.point(c, t))
		t += r.detail
		if t > 1 {
			t = 0
			c += 2
		}
	}
	return out
}

func (r *Rocket) point(c int, t float64) Vec {
	p0, p1, p2 := r.points[c], r.points[c+1], r.points[c+2]
	a := 1 - 2*t + t*t
	b := 2*t - 2*t*t
	d := t * t
	var v Vec
	for i := range v {
		v[i] = p0[i]*a + p1[i]*b + p2[i]*d
	}
	return v
}
