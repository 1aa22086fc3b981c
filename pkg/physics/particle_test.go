package physics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestRadiusGrowsWithMass(t *testing.T) {
	p := NewParticle("p", 0, 0, 1, 0)
	if got := p.Radius(); !almostEqual(got, 22) {
		t.Errorf("Radius(mass 1) = %v, want 22", got)
	}
	p.Mass = 4
	if got := p.Radius(); !almostEqual(got, 24) {
		t.Errorf("Radius(mass 4) = %v, want 24", got)
	}
}

func TestApplyForceSuperposition(t *testing.T) {
	p := NewParticle("p", 0, 0, 2, 0)
	p.ApplyForce(Vector2{2, 0})
	p.ApplyForce(Vector2{0, 4})

	if !almostEqual(p.Acc.X, 1) || !almostEqual(p.Acc.Y, 2) {
		t.Errorf("Acc = %v, want (1, 2)", p.Acc)
	}
}

func TestApplyForceLocked(t *testing.T) {
	p := NewParticle("p", 0, 0, 1, 0)
	p.Locked = true
	p.ApplyForce(Vector2{100, 100})

	if p.Acc != (Vector2{}) {
		t.Errorf("locked particle accumulated acceleration: %v", p.Acc)
	}
}

func TestIntegrateSemiImplicitOrder(t *testing.T) {
	// velocity must update from acceleration before position moves
	p := NewParticle("p", 0, 0, 1, 0)
	p.ApplyForce(Vector2{60, 0})
	p.Integrate(1.0/60, 0)

	if !almostEqual(p.Vel.X, 1) {
		t.Errorf("Vel.X = %v, want 1", p.Vel.X)
	}
	if !almostEqual(p.Pos.X, 1.0/60) {
		t.Errorf("Pos.X = %v, want %v", p.Pos.X, 1.0/60)
	}
	if p.Acc != (Vector2{}) {
		t.Errorf("acceleration not reset: %v", p.Acc)
	}
}

func TestIntegrateFrictionDecay(t *testing.T) {
	p := NewParticle("p", 0, 0, 1, 0)
	p.Vel = Vector2{10, 0}
	p.Integrate(1.0/60, 0.05)

	// decay factor 1 - 0.05 * (1/60) * 60 = 0.95
	if !almostEqual(p.Vel.X, 9.5) {
		t.Errorf("Vel.X = %v, want 9.5", p.Vel.X)
	}
}

func TestIntegrateFrictionDecayClampsAtZero(t *testing.T) {
	p := NewParticle("p", 0, 0, 1, 0)
	p.Vel = Vector2{10, -10}
	p.Integrate(1.0, 0.1) // 1 - 0.1*1*60 = -5, clamped to 0

	if p.Vel != (Vector2{}) {
		t.Errorf("velocity should decay to zero, got %v", p.Vel)
	}
}

func TestIntegrateLockedPinned(t *testing.T) {
	p := NewParticle("p", 5, 7, 1, 0)
	p.Locked = true
	p.Vel = Vector2{3, 3}
	p.Acc = Vector2{1, 1}

	for i := 0; i < 10; i++ {
		p.Integrate(1.0/60, 0)
		if p.Vel != (Vector2{}) || p.Acc != (Vector2{}) {
			t.Fatalf("locked particle kept motion: vel %v acc %v", p.Vel, p.Acc)
		}
		if p.Pos != (Vector2{5, 7}) {
			t.Fatalf("locked particle moved to %v", p.Pos)
		}
	}
}

func TestTrailSamplingCadence(t *testing.T) {
	p := NewParticle("p", 0, 0, 1, 0)
	p.Vel = Vector2{60, 0}

	for i := 0; i < 24; i++ {
		p.Integrate(1.0/60, 0)
	}
	if len(p.Trail) != 4 {
		t.Errorf("after 24 steps trail has %d points, want 4", len(p.Trail))
	}
	p.Integrate(1.0/60, 0)
	if len(p.Trail) != 5 {
		t.Errorf("after 25 steps trail has %d points, want 5", len(p.Trail))
	}
}

func TestTrailDropsOldestAtCap(t *testing.T) {
	p := NewParticle("p", 0, 0, 1, 0)
	p.Vel = Vector2{60, 0}

	for i := 0; i < TrailInterval*(TrailCap+20); i++ {
		p.Integrate(1.0/60, 0)
	}
	if len(p.Trail) != TrailCap {
		t.Fatalf("trail has %d points, want %d", len(p.Trail), TrailCap)
	}
	// oldest entries dropped: trail must be strictly increasing in x and end
	// near the current position
	for i := 1; i < len(p.Trail); i++ {
		if p.Trail[i].X <= p.Trail[i-1].X {
			t.Fatalf("trail not ordered oldest-first at %d", i)
		}
	}
	if p.Trail[len(p.Trail)-1].X <= p.Trail[0].X {
		t.Error("newest trail point not last")
	}
}

func TestReset(t *testing.T) {
	p := NewParticle("p", 0, 0, 1, 0)
	p.Vel = Vector2{60, 0}
	for i := 0; i < 30; i++ {
		p.Integrate(1.0/60, 0)
	}

	p.Reset(40, 50)
	if p.Pos != (Vector2{40, 50}) {
		t.Errorf("Pos = %v", p.Pos)
	}
	if p.Vel != (Vector2{}) || p.Acc != (Vector2{}) {
		t.Errorf("motion not cleared: vel %v acc %v", p.Vel, p.Acc)
	}
	if len(p.Trail) != 0 {
		t.Errorf("trail not cleared: %d points", len(p.Trail))
	}

	// sample counter restarts: first trail point arrives after a full interval
	p.Vel = Vector2{60, 0}
	for i := 0; i < TrailInterval-1; i++ {
		p.Integrate(1.0/60, 0)
	}
	if len(p.Trail) != 0 {
		t.Errorf("trail sampled too early after reset")
	}
	p.Integrate(1.0/60, 0)
	if len(p.Trail) != 1 {
		t.Errorf("trail not sampled after full interval")
	}
}
