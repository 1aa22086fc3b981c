package main

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/coulomb-sim-go/pkg/physics"
	"github.com/olivierh59500/coulomb-sim-go/pkg/simulation"
)

const (
	minFieldR2        = 25.0 // r² floor for field sampling
	fieldLineStep     = 4.0
	fieldLineMaxSteps = 400
	seedsPerCharge    = 14
	bgGridStep        = 32
	bgScale           = 0.05
)

// fieldRenderer draws the electric-field layers: a perlin-shimmered intensity
// glow and the traced field lines.
type fieldRenderer struct {
	noise *perlin.Perlin
	t     float64
}

func newFieldRenderer() *fieldRenderer {
	return &fieldRenderer{noise: perlin.NewPerlin(2, 2, 3, 1)}
}

// fieldAt sums each charge's k·q/r³ contribution at (x, y).
func fieldAt(s *simulation.Simulation, x, y float64) (float64, float64) {
	var ex, ey float64
	for _, p := range s.Particles {
		dx := x - p.Pos.X
		dy := y - p.Pos.Y
		r2 := dx*dx + dy*dy
		if r2 < minFieldR2 {
			r2 = minFieldR2
		}
		r := math.Sqrt(r2)
		f := physics.ForceConstant * p.Charge / (r2 * r)
		ex += f * dx
		ey += f * dy
	}
	return ex, ey
}

// drawBackground fills a coarse grid tinted by local field magnitude. The
// perlin term drifts over time so the glow shimmers instead of sitting still.
func (fr *fieldRenderer) drawBackground(screen *ebiten.Image, s *simulation.Simulation) {
	w := int(s.Width)
	h := int(s.Height)
	for py := 0; py < h; py += bgGridStep {
		for px := 0; px < w; px += bgGridStep {
			cx := float64(px) + bgGridStep/2
			cy := float64(py) + bgGridStep/2
			ex, ey := fieldAt(s, cx, cy)
			val := math.Hypot(ex, ey) * bgScale
			if val > 1 {
				val = 1
			}
			shimmer := 0.7 + 0.3*(fr.noise.Noise3D(cx*0.004, cy*0.004, fr.t*0.3)+1)/2
			c := uint8(val * shimmer * 160)
			if c < 4 {
				continue
			}
			col := color.RGBA{c / 4, c / 3, c, 255}
			vector.DrawFilledRect(screen, float32(px), float32(py), bgGridStep, bgGridStep, col, false)
		}
	}
}

// traceFieldLine follows the field from (sx, sy); dir is +1 out of positive
// charges and -1 into negative ones. Tracing stops at the canvas margin, in
// a near-zero field, or on reaching a particle.
func traceFieldLine(s *simulation.Simulation, sx, sy, dir float64) []physics.Vector2 {
	x, y := sx, sy
	points := make([]physics.Vector2, 0, 64)

	for i := 0; i < fieldLineMaxSteps; i++ {
		ex, ey := fieldAt(s, x, y)
		e := math.Hypot(ex, ey)
		if e < 1e-6 {
			break
		}

		x += ex / e * dir * fieldLineStep
		y += ey / e * dir * fieldLineStep

		if x < -50 || x > s.Width+50 || y < -50 || y > s.Height+50 {
			break
		}
		entered := false
		for _, p := range s.Particles {
			if math.Hypot(x-p.Pos.X, y-p.Pos.Y) < p.Radius() {
				entered = true
				break
			}
		}
		if entered {
			break
		}

		points = append(points, physics.Vector2{X: x, Y: y})
	}
	return points
}

// drawFieldLines seeds lines in a ring around every charged particle and
// strokes each traced path.
func (fr *fieldRenderer) drawFieldLines(screen *ebiten.Image, s *simulation.Simulation) {
	lineCol := color.RGBA{200, 200, 220, 90}
	for _, p := range s.Particles {
		if p.Charge == 0 {
			continue
		}
		dir := 1.0
		if p.Charge < 0 {
			dir = -1.0
		}
		seedR := p.Radius() + 4
		for i := 0; i < seedsPerCharge; i++ {
			angle := 2 * math.Pi * float64(i) / seedsPerCharge
			sx := p.Pos.X + seedR*math.Cos(angle)
			sy := p.Pos.Y + seedR*math.Sin(angle)

			line := traceFieldLine(s, sx, sy, dir)
			for j := 1; j < len(line); j++ {
				vector.StrokeLine(screen,
					float32(line[j-1].X), float32(line[j-1].Y),
					float32(line[j].X), float32(line[j].Y),
					1, lineCol, false)
			}
		}
	}
}
