package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/coulomb-sim-go/pkg/physics"
)

const (
	graphW = 200
	graphH = 60
)

var (
	positiveColor = color.RGBA{230, 90, 90, 255}
	negativeColor = color.RGBA{90, 130, 230, 255}
	neutralColor  = color.RGBA{160, 160, 160, 255}
	lockedRing    = color.RGBA{220, 220, 220, 255}
	forceColor    = color.RGBA{90, 220, 110, 220}
	velocityColor = color.RGBA{230, 210, 90, 220}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{12, 12, 20, 255})

	if g.showField {
		g.field.drawBackground(screen, g.sim)
		g.field.drawFieldLines(screen, g.sim)
	}
	if g.showTrails {
		g.drawTrails(screen)
	}
	if g.showVectors {
		g.drawVectors(screen)
	}
	g.drawParticles(screen)
	g.drawHUD(screen)
	g.drawForceGraph(screen)

	mx, my := ebiten.CursorPosition()
	for _, sl := range g.sliders {
		sl.draw(screen)
	}
	for _, b := range g.buttons {
		b.draw(screen, mx, my)
	}
}

func particleColor(p *physics.Particle) color.RGBA {
	switch {
	case p.Charge > 0:
		return positiveColor
	case p.Charge < 0:
		return negativeColor
	default:
		return neutralColor
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.sim.Particles {
		col := particleColor(p)
		r := float32(p.Radius())
		x := float32(p.Pos.X)
		y := float32(p.Pos.Y)

		vector.DrawFilledCircle(screen, x, y, r, col, true)
		if p.Locked {
			vector.StrokeCircle(screen, x, y, r+3, 2, lockedRing, true)
		}

		sign := ""
		if p.Charge > 0 {
			sign = "+"
		} else if p.Charge < 0 {
			sign = "-"
		}
		if sign != "" {
			text.Draw(screen, sign, basicfont.Face7x13, int(p.Pos.X)-3, int(p.Pos.Y)+4, color.White)
		}
	}
}

func (g *Game) drawTrails(screen *ebiten.Image) {
	for _, p := range g.sim.Particles {
		col := particleColor(p)
		n := len(p.Trail)
		for i := 1; i < n; i++ {
			// older segments fade out
			a := uint8(40 + 160*i/n)
			seg := color.RGBA{col.R, col.G, col.B, a}
			vector.StrokeLine(screen,
				float32(p.Trail[i-1].X), float32(p.Trail[i-1].Y),
				float32(p.Trail[i].X), float32(p.Trail[i].Y),
				1, seg, true)
		}
	}
}

// netForce sums the Coulomb forces on particle i from every other particle.
func (g *Game) netForce(i int) physics.Vector2 {
	var f physics.Vector2
	for j, o := range g.sim.Particles {
		if j == i {
			continue
		}
		f = f.Add(physics.CoulombForce(g.sim.Particles[i], o))
	}
	return f
}

func (g *Game) drawVectors(screen *ebiten.Image) {
	for i, p := range g.sim.Particles {
		f := g.netForce(i)
		if mag := f.Len(); mag > 1e-9 {
			length := math.Min(mag*0.8+8, 140)
			tip := p.Pos.Add(f.Normalize().Mul(length))
			drawArrow(screen, p.Pos, tip, forceColor)
		}
		if spd := p.Vel.Len(); spd > 1e-9 {
			length := math.Min(spd*0.4+6, 100)
			tip := p.Pos.Add(p.Vel.Normalize().Mul(length))
			drawArrow(screen, p.Pos, tip, velocityColor)
		}
	}
}

func drawArrow(screen *ebiten.Image, from, to physics.Vector2, col color.RGBA) {
	x1, y1 := float32(from.X), float32(from.Y)
	x2, y2 := float32(to.X), float32(to.Y)
	vector.StrokeLine(screen, x1, y1, x2, y2, 1, col, true)

	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	const headLen = 6.0
	for _, da := range [2]float64{0.6, -0.6} {
		hx := x2 - float32(headLen*math.Cos(angle+da))
		hy := y2 - float32(headLen*math.Sin(angle+da))
		vector.StrokeLine(screen, x2, y2, hx, hy, 1, col, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"space pause  r reset  f field  v vectors  t trails",
		"l lock hovered  s save  o load  drag particles or sliders",
	}
	if len(g.sim.Particles) >= 2 {
		a, b := g.sim.Particles[0], g.sim.Particles[1]
		f := physics.CoulombForce(a, b)
		lines = append(lines,
			fmt.Sprintf("qA %+.1f  qB %+.1f  mA %.2f  mB %.2f", a.Charge, b.Charge, a.Mass, b.Mass),
			fmt.Sprintf("separation %.0f  |F| %.2f  friction %.3f", g.sim.Separation(), f.Len(), g.sim.Friction),
		)
	}
	if g.paused {
		lines = append(lines, "PAUSED")
	}
	for i, s := range lines {
		text.Draw(screen, s, basicfont.Face7x13, 12, 20+i*16, uiTextColor)
	}
}

func (g *Game) drawForceGraph(screen *ebiten.Image) {
	if len(g.forceHistory) < 2 {
		return
	}
	gx := g.width - graphW - 12
	gy := g.height - graphH - 12
	vector.StrokeRect(screen, float32(gx), float32(gy), graphW, graphH, 1, uiTrackColor, true)
	text.Draw(screen, "|F|", basicfont.Face7x13, gx+4, gy+14, uiTextColor)

	maxF := 0.0
	for _, f := range g.forceHistory {
		if f > maxF {
			maxF = f
		}
	}
	if maxF == 0 {
		return
	}

	n := len(g.forceHistory)
	for i := 1; i < n; i++ {
		x0 := float32(gx) + float32(i-1)*graphW/float32(forceHistoryMax)
		x1 := float32(gx) + float32(i)*graphW/float32(forceHistoryMax)
		y0 := float32(gy+graphH) - float32(g.forceHistory[i-1]/maxF)*(graphH-6)
		y1 := float32(gy+graphH) - float32(g.forceHistory[i]/maxF)*(graphH-6)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, uiFillColor, true)
	}
}
