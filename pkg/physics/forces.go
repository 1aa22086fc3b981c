package physics

import "math"

const (
	// ForceConstant is a visual-scale analogue of Coulomb's constant, tuned
	// so forces are visible at screen-pixel distances.
	ForceConstant = 20000.0
	// MinDistance floors the separation used in the force law, keeping the
	// 1/r² term from blowing up near contact.
	MinDistance = 60.0
)

// CoulombForce returns the force acting on a due to b: opposite charge signs
// attract, like signs repel, a zero charge product yields exactly zero. The
// force on b is the exact negation.
func CoulombForce(a, b *Particle) Vector2 {
	q := a.Charge * b.Charge
	if q == 0 {
		return Vector2{}
	}
	r := b.Pos.Sub(a.Pos)
	dist := r.Len()
	if dist < MinDistance {
		dist = MinDistance
	}
	dir := r.Normalize()
	mag := ForceConstant * math.Abs(q) / (dist * dist)
	if q < 0 {
		// opposite signs: pull a toward b
		return dir.Mul(mag)
	}
	// like signs: push a away from b
	return dir.Mul(-mag)
}

// ApplyPairwiseForces applies Coulomb forces between every unordered pair.
// O(n²), fine for the handful of particles this simulation runs.
func ApplyPairwiseForces(particles []*Particle) {
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			f := CoulombForce(particles[i], particles[j])
			particles[i].ApplyForce(f)
			particles[j].ApplyForce(f.Mul(-1))
		}
	}
}
