package physics

import "math"

const (
	// TrailCap bounds the number of stored trail points per particle.
	TrailCap = 50
	// TrailInterval is the number of integration steps between trail samples.
	TrailInterval = 5
)

// Particle is a charged point body. Mass and Charge are written directly by
// the UI between steps; Mass is trusted to stay positive (the slider clamps
// before assigning) since force application divides by it.
type Particle struct {
	ID     string
	Pos    Vector2
	Vel    Vector2
	Acc    Vector2
	Mass   float64
	Charge float64
	Locked bool
	Trail  []Vector2

	trailTick int
}

func NewParticle(id string, x, y, mass, charge float64) *Particle {
	return &Particle{
		ID:     id,
		Pos:    Vector2{x, y},
		Mass:   mass,
		Charge: charge,
		Trail:  make([]Vector2, 0, TrailCap),
	}
}

// Radius grows sub-linearly with mass so heavier particles render larger
// without dominating the canvas.
func (p *Particle) Radius() float64 {
	return 20 + math.Sqrt(p.Mass)*2
}

// ApplyForce accumulates the force into acceleration. Callable any number of
// times before Integrate; forces superpose. Locked particles ignore force.
func (p *Particle) ApplyForce(f Vector2) {
	if p.Locked {
		return
	}
	p.Acc = p.Acc.Add(f.Mul(1 / p.Mass))
}

// Integrate advances the particle by dt seconds using semi-implicit Euler:
// friction decay, then velocity from acceleration, then position from the new
// velocity. The friction coefficient is normalized against a 60 steps-per-
// second baseline so the same value behaves the same at other step rates.
func (p *Particle) Integrate(dt, friction float64) {
	if p.Locked {
		p.Vel = Vector2{}
		p.Acc = Vector2{}
		return
	}

	decay := 1 - friction*dt*60
	if decay < 0 {
		decay = 0
	}
	p.Vel = p.Vel.Mul(decay)
	p.Vel = p.Vel.Add(p.Acc.Mul(dt))
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Acc = Vector2{}

	p.trailTick++
	if p.trailTick >= TrailInterval {
		p.trailTick = 0
		p.Trail = append(p.Trail, p.Pos)
		if len(p.Trail) > TrailCap {
			p.Trail = p.Trail[1:]
		}
	}
}

// Reset places the particle at (x, y) at rest with an empty trail.
func (p *Particle) Reset(x, y float64) {
	p.Pos = Vector2{x, y}
	p.Vel = Vector2{}
	p.Acc = Vector2{}
	p.Trail = p.Trail[:0]
	p.trailTick = 0
}
