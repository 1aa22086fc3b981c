package simulation

import (
	"math"

	"github.com/olivierh59500/coulomb-sim-go/pkg/physics"
)

const (
	// DefaultFriction is the friction coefficient of the canonical scenario.
	DefaultFriction = 0.01

	minDefaultSeparation = 150.0
	maxDefaultSeparation = 300.0
)

// Simulation owns the authoritative particle set and advances it one step per
// frame. Friction and bounds are written externally between steps; nothing
// here is safe for concurrent use, the whole type assumes the single
// frame-driving goroutine.
type Simulation struct {
	Particles []*physics.Particle
	Friction  float64
	Width     float64
	Height    float64
}

func New(width, height float64) *Simulation {
	return &Simulation{
		Friction: DefaultFriction,
		Width:    width,
		Height:   height,
	}
}

// Step advances the simulation by dt seconds: pairwise forces, integration,
// then boundary resolution. dt is used as given; the caller clamps runaway
// frame times (tab backgrounding, debugger pauses) before calling.
func (s *Simulation) Step(dt float64) {
	physics.ApplyPairwiseForces(s.Particles)
	for _, p := range s.Particles {
		p.Integrate(dt, s.Friction)
	}
	for _, p := range s.Particles {
		s.ResolveBounds(p)
	}
}

// ResolveBounds clamps the particle inside the canvas, each axis treated
// independently. Velocity reverses at half magnitude, and only when still
// pointing into the wall.
func (s *Simulation) ResolveBounds(p *physics.Particle) {
	r := p.Radius()
	if p.Pos.X < r {
		p.Pos.X = r
		if p.Vel.X < 0 {
			p.Vel.X *= -0.5
		}
	} else if p.Pos.X > s.Width-r {
		p.Pos.X = s.Width - r
		if p.Vel.X > 0 {
			p.Vel.X *= -0.5
		}
	}
	if p.Pos.Y < r {
		p.Pos.Y = r
		if p.Vel.Y < 0 {
			p.Vel.Y *= -0.5
		}
	} else if p.Pos.Y > s.Height-r {
		p.Pos.Y = s.Height - r
		if p.Vel.Y > 0 {
			p.Vel.Y *= -0.5
		}
	}
}

// SetSeparation repositions the first two particles symmetrically about
// their midpoint so they sit exactly distance apart, without injecting
// kinetic energy. Coincident particles separate horizontally. No-op with
// fewer than two particles.
func (s *Simulation) SetSeparation(distance float64) {
	if len(s.Particles) < 2 {
		return
	}
	a, b := s.Particles[0], s.Particles[1]

	center := a.Pos.Add(b.Pos).Mul(0.5)
	dir := b.Pos.Sub(a.Pos).Normalize()
	if dir == (physics.Vector2{}) {
		dir = physics.Vector2{X: 1}
	}

	half := dir.Mul(distance / 2)
	a.Pos = center.Sub(half)
	b.Pos = center.Add(half)
	a.Vel, a.Acc = physics.Vector2{}, physics.Vector2{}
	b.Vel, b.Acc = physics.Vector2{}, physics.Vector2{}

	// The requested distance may push a particle past the canvas edge.
	s.ResolveBounds(a)
	s.ResolveBounds(b)
}

// Separation reports the current distance between the first two particles,
// or zero when there are fewer than two.
func (s *Simulation) Separation() float64 {
	if len(s.Particles) < 2 {
		return 0
	}
	return s.Particles[0].Pos.DistanceTo(s.Particles[1].Pos)
}

// Resize recenters existing content under new canvas bounds: every particle
// position and trail point shifts by half the size delta, preserving the
// relative layout without resetting simulation state.
func (s *Simulation) Resize(width, height float64) {
	shift := physics.Vector2{
		X: (width - s.Width) / 2,
		Y: (height - s.Height) / 2,
	}
	for _, p := range s.Particles {
		p.Pos = p.Pos.Add(shift)
		for i := range p.Trail {
			p.Trail[i] = p.Trail[i].Add(shift)
		}
	}
	s.Width = width
	s.Height = height
}

// InitializeDefault replaces the particle set with the canonical scenario: a
// +5/−5 pair of unit masses straddling the canvas center, friction reset.
func (s *Simulation) InitializeDefault() {
	sep := math.Min(s.Width, s.Height) * 0.6
	if sep < minDefaultSeparation {
		sep = minDefaultSeparation
	} else if sep > maxDefaultSeparation {
		sep = maxDefaultSeparation
	}

	cx, cy := s.Width/2, s.Height/2
	s.Particles = []*physics.Particle{
		physics.NewParticle("a", cx-sep/2, cy, 1.0, 5),
		physics.NewParticle("b", cx+sep/2, cy, 1.0, -5),
	}
	s.Friction = DefaultFriction
}
