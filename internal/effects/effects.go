// Package effects keeps the short-lived particles drawn around the rocket:
// its exhaust trail and the splash or blast where it lands. Particles are
// ark entities so the view can sweep them with a single query.
package effects

import (
	"math"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/rocket"
)

// Kind is what emitted a particle.
type Kind uint8

const (
	KindExhaust Kind = iota
	KindSplash       // miss
	KindBlast        // hit
)

// Position is in board cell units, z up.
type Position struct{ X, Y, Z float64 }

// Velocity is in cells per tick.
type Velocity struct{ X, Y, Z float64 }

// Life counts ticks down to removal.
type Life struct{ Left, Total int }

// Spark is the look of a particle.
type Spark struct {
	Kind   Kind
	Colour model.FireColour
	Roll   float64 // fixed random pick for FireRandom
	Size   float64
}

const (
	gravity     = 0.01
	exhaustLife = 6 // ticks per unit of fire length
	impactLife  = 40
	blastSparks = 24
	splashDrops = 14
)

// System owns the particle world.
type System struct {
	world  *ecs.World
	spawn  *ecs.Map4[Position, Velocity, Life, Spark]
	filter *ecs.Filter4[Position, Velocity, Life, Spark]
	rng    *rand.Rand
	dead   []ecs.Entity
}

// New returns an empty system.
func New(rng *rand.Rand) *System {
	w := ecs.NewWorld(512)
	return &System{
		world:  w,
		spawn:  ecs.NewMap4[Position, Velocity, Life, Spark](w),
		filter: ecs.NewFilter4[Position, Velocity, Life, Spark](w),
		rng:    rng,
	}
}

// Exhaust puffs fire out of the back of a rocket at loc heading along dir.
func (s *System) Exhaust(loc, dir rocket.Vec, opts model.RocketOptions) {
	if !opts.Fire {
		return
	}
	back := normalize(dir)
	spread := 0.02 * opts.FireWidth.Scale()
	n := max(1, opts.FireLength/2)
	for range n {
		life := opts.FireLength * exhaustLife
		s.spawn.NewEntity(
			&Position{X: loc[0], Y: loc[1], Z: loc[2]},
			&Velocity{
				X: -back[0]*0.06 + s.jitter(spread),
				Y: -back[1]*0.06 + s.jitter(spread),
				Z: -back[2]*0.06 + s.jitter(spread),
			},
			&Life{Left: life, Total: life},
			&Spark{Kind: KindExhaust, Colour: opts.FireColour, Roll: s.rng.Float64(), Size: 0.1 * float64(opts.Size)},
		)
	}
}

// Impact bursts particles out of board point (x, y).
func (s *System) Impact(x, y float64, hit bool) {
	kind, n, up := KindSplash, splashDrops, 0.12
	if hit {
		kind, n, up = KindBlast, blastSparks, 0.08
	}
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		speed := 0.02 + s.rng.Float64()*0.03
		s.spawn.NewEntity(
			&Position{X: x, Y: y},
			&Velocity{X: math.Cos(a) * speed, Y: math.Sin(a) * speed, Z: up + s.jitter(0.02)},
			&Life{Left: impactLife, Total: impactLife},
			&Spark{Kind: kind, Roll: s.rng.Float64(), Size: 0.2},
		)
	}
}

// Tick moves every particle and drops the expired ones.
func (s *System) Tick() {
	s.dead = s.dead[:0]
	q := s.filter.Query()
	for q.Next() {
		pos, vel, life, spark := q.Get()
		pos.X += vel.X
		pos.Y += vel.Y
		pos.Z += vel.Z
		if spark.Kind != KindExhaust {
			vel.Z -= gravity
			if pos.Z < 0 {
				pos.Z, vel.Z = 0, 0
			}
		}
		life.Left--
		if life.Left <= 0 {
			s.dead = append(s.dead, q.Entity())
		}
	}
	for _, e := range s.dead {
		s.world.RemoveEntity(e)
	}
}

// Each calls fn for every live particle with its remaining life in (0, 1].
func (s *System) Each(fn func(p Position, sp Spark, heat float64)) {
	q := s.filter.Query()
	for q.Next() {
		pos, _, life, spark := q.Get()
		fn(*pos, *spark, float64(life.Left)/float64(life.Total))
	}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	n := 0
	q := s.filter.Query()
	for q.Next() {
		n++
	}
	return n
}

// Clear removes every particle.
func (s *System) Clear() {
	s.dead = s.dead[:0]
	q := s.filter.Query()
	for q.Next() {
		s.dead = append(s.dead, q.Entity())
	}
	for _, e := range s.dead {
		s.world.RemoveEntity(e)
	}
}

func (s *System) jitter(r float64) float64 {
	return (s.rng.Float64()*2 - 1) * r
}

func normalize(v rocket.Vec) rocket.Vec {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return rocket.Vec{}
	}
	return rocket.Vec{v[0] / l, v[1] / l, v[2] / l}
}
