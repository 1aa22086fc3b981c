package physics

import (
	"math"
	"testing"
)

func TestCoulombAttraction(t *testing.T) {
	a := NewParticle("a", 0, 0, 1, 5)
	b := NewParticle("b", 100, 0, 1, -5)

	f := CoulombForce(a, b)
	if f.X <= 0 {
		t.Errorf("opposite charges must attract, force on a = %v", f)
	}
	if f.Y != 0 {
		t.Errorf("force off-axis: %v", f)
	}
	want := ForceConstant * 25 / (100.0 * 100.0)
	if math.Abs(f.X-want) > 1e-9 {
		t.Errorf("|F| = %v, want %v", f.X, want)
	}
}

func TestCoulombRepulsion(t *testing.T) {
	a := NewParticle("a", 0, 0, 1, 5)
	b := NewParticle("b", 100, 0, 1, 5)

	f := CoulombForce(a, b)
	if f.X >= 0 {
		t.Errorf("like charges must repel, force on a = %v", f)
	}
	if f.Y != 0 {
		t.Errorf("force off-axis: %v", f)
	}
}

func TestCoulombZeroChargeProduct(t *testing.T) {
	a := NewParticle("a", 0, 0, 1, 0)
	b := NewParticle("b", 100, 0, 1, 5)

	if f := CoulombForce(a, b); f != (Vector2{}) {
		t.Errorf("zero charge product must yield exactly zero force, got %v", f)
	}
}

func TestNewtonsThirdLaw(t *testing.T) {
	cases := []struct {
		name   string
		qa, qb float64
		bx, by float64
	}{
		{"opposite axis-aligned", 5, -5, 100, 0},
		{"like diagonal", 3, 7, 80, 60},
		{"opposite diagonal", -2, 9, -40, 130},
		{"inside clamp range", 5, -5, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewParticle("a", 0, 0, 1, tc.qa)
			b := NewParticle("b", tc.bx, tc.by, 1, tc.qb)

			fa := CoulombForce(a, b)
			fb := CoulombForce(b, a)
			if fb != fa.Mul(-1) {
				t.Errorf("force on b = %v, want exact negation of %v", fb, fa)
			}
		})
	}
}

func TestMinDistanceClamp(t *testing.T) {
	a := NewParticle("a", 0, 0, 1, 5)
	near := NewParticle("n", 30, 0, 1, -5)
	floor := NewParticle("f", MinDistance, 0, 1, -5)

	got := CoulombForce(a, near).Len()
	want := CoulombForce(a, floor).Len()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("force at 30 = %v, want the value at the %v floor = %v", got, MinDistance, want)
	}
}

func TestApplyPairwiseForces(t *testing.T) {
	a := NewParticle("a", 0, 0, 1, 5)
	b := NewParticle("b", 100, 0, 1, -5)
	ApplyPairwiseForces([]*Particle{a, b})

	if a.Acc.X <= 0 || b.Acc.X >= 0 {
		t.Errorf("accelerations not equal and opposite: a %v b %v", a.Acc, b.Acc)
	}
	if a.Acc != b.Acc.Mul(-1) {
		t.Errorf("unit masses should mirror acceleration exactly: a %v b %v", a.Acc, b.Acc)
	}
}

func TestApplyPairwiseForcesGeneralizesToN(t *testing.T) {
	// middle particle between two equal charges feels a net zero x force
	left := NewParticle("l", 0, 0, 1, 5)
	mid := NewParticle("m", 200, 0, 1, -5)
	right := NewParticle("r", 400, 0, 1, 5)
	ApplyPairwiseForces([]*Particle{left, mid, right})

	if math.Abs(mid.Acc.X) > 1e-9 {
		t.Errorf("symmetric pulls should cancel on the middle particle, acc %v", mid.Acc)
	}
	if left.Acc.X <= 0 || right.Acc.X >= 0 {
		t.Errorf("outer particles should be pulled inward: left %v right %v", left.Acc, right.Acc)
	}
}
