package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olivierh59500/coulomb-sim-go/pkg/physics"
)

// Scenario is the on-disk description of a simulation setup.
type Scenario struct {
	Name      string           `json:"name"`
	Friction  float64          `json:"friction"`
	Particles []ParticleConfig `json:"particles"`
}

type ParticleConfig struct {
	ID     string     `json:"id,omitempty"`
	Pos    [2]float64 `json:"pos"`
	Mass   float64    `json:"mass"`
	Charge float64    `json:"charge"`
	Locked bool       `json:"locked,omitempty"`
}

// LoadScenario reads a JSON scenario and builds a simulation with the given
// canvas bounds. Particles placed outside the canvas are clamped in. An
// absent mass defaults to 1; beyond that, values are taken as written.
func LoadScenario(path string, width, height float64) (*Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	s := New(width, height)
	if sc.Friction > 0 {
		s.Friction = sc.Friction
	}
	for i, pc := range sc.Particles {
		id := pc.ID
		if id == "" {
			id = fmt.Sprintf("p%d", i)
		}
		mass := pc.Mass
		if mass == 0 {
			mass = 1.0
		}
		p := physics.NewParticle(id, pc.Pos[0], pc.Pos[1], mass, pc.Charge)
		p.Locked = pc.Locked
		s.Particles = append(s.Particles, p)
		s.ResolveBounds(p)
	}
	return s, nil
}

// SaveScenario snapshots the current particle set and friction to a JSON
// file, loadable back with LoadScenario.
func SaveScenario(path string, s *Simulation) error {
	sc := Scenario{Name: "snapshot", Friction: s.Friction}
	for _, p := range s.Particles {
		sc.Particles = append(sc.Particles, ParticleConfig{
			ID:     p.ID,
			Pos:    [2]float64{p.Pos.X, p.Pos.Y},
			Mass:   p.Mass,
			Charge: p.Charge,
			Locked: p.Locked,
		})
	}

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}
