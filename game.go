package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/coulomb-sim-go/pkg/physics"
	"github.com/olivierh59500/coulomb-sim-go/pkg/simulation"
)

const (
	defaultWidth  = 1024
	defaultHeight = 768

	// fixed step: ebiten runs Update at the configured TPS, so dt never
	// needs clamping against long pauses
	simDT = 1.0 / 60

	forceHistoryMax = 240

	snapshotPath = "scenario.json"
)

// Game drives the simulation from the ebiten loop and owns all UI state.
type Game struct {
	sim   *simulation.Simulation
	field *fieldRenderer

	paused      bool
	showField   bool
	showVectors bool
	showTrails  bool

	sliders []*Slider
	buttons []*Button

	dragIdx int // particle under the mouse while dragging, -1 otherwise

	width, height      int
	pendingW, pendingH int

	forceHistory []float64
}

func NewGame(sim *simulation.Simulation) *Game {
	g := &Game{
		sim:         sim,
		field:       newFieldRenderer(),
		showVectors: true,
		showTrails:  true,
		dragIdx:     -1,
		width:       int(sim.Width),
		height:      int(sim.Height),
	}
	g.pendingW, g.pendingH = g.width, g.height
	g.buildUI()
	return g
}

func (g *Game) particle(i int) *physics.Particle {
	if i < 0 || i >= len(g.sim.Particles) {
		return nil
	}
	return g.sim.Particles[i]
}

func (g *Game) buildUI() {
	chargeSlider := func(label string, idx int) *Slider {
		return &Slider{
			Label: label, Fmt: "%+.1f", W: sliderW,
			Min: -10, Max: 10,
			Get: func() float64 {
				if p := g.particle(idx); p != nil {
					return p.Charge
				}
				return 0
			},
			Set: func(v float64) {
				if p := g.particle(idx); p != nil {
					p.Charge = v
				}
			},
		}
	}
	massSlider := func(label string, idx int) *Slider {
		return &Slider{
			Label: label, Fmt: "%.2f", W: sliderW,
			Min: 0.1, Max: 5,
			Get: func() float64 {
				if p := g.particle(idx); p != nil {
					return p.Mass
				}
				return 1
			},
			Set: func(v float64) {
				// the particle divides force by mass, keep it positive
				if v < 0.1 {
					v = 0.1
				}
				if p := g.particle(idx); p != nil {
					p.Mass = v
				}
			},
		}
	}

	g.sliders = []*Slider{
		chargeSlider("charge A", 0),
		chargeSlider("charge B", 1),
		massSlider("mass A", 0),
		massSlider("mass B", 1),
		{
			Label: "separation", Fmt: "%.0f", W: sliderW,
			Min: 60, Max: 500,
			Get: func() float64 { return g.sim.Separation() },
			Set: func(v float64) { g.sim.SetSeparation(v) },
		},
		{
			Label: "friction", Fmt: "%.3f", W: sliderW,
			Min: 0, Max: 0.1,
			Get: func() float64 { return g.sim.Friction },
			Set: func(v float64) { g.sim.Friction = v },
		},
	}

	g.buttons = []*Button{
		{Label: "Pause", W: uiBtnW, H: uiBtnH,
			Active:  func() bool { return g.paused },
			OnClick: func() { g.paused = !g.paused }},
		{Label: "Reset", W: uiBtnW, H: uiBtnH,
			OnClick: func() { g.reset() }},
		{Label: "Field", W: uiBtnW, H: uiBtnH,
			Active:  func() bool { return g.showField },
			OnClick: func() { g.showField = !g.showField }},
		{Label: "Vectors", W: uiBtnW, H: uiBtnH,
			Active:  func() bool { return g.showVectors },
			OnClick: func() { g.showVectors = !g.showVectors }},
		{Label: "Trails", W: uiBtnW, H: uiBtnH,
			Active:  func() bool { return g.showTrails },
			OnClick: func() { g.showTrails = !g.showTrails }},
	}
	g.layoutUI()
}

func (g *Game) layoutUI() {
	for i, sl := range g.sliders {
		sl.X = 12
		sl.Y = 110 + i*sliderPad
	}
	x := g.width - uiBtnPad - uiBtnW
	for _, b := range g.buttons {
		b.X = x
		b.Y = uiBtnPad
		x -= uiBtnPad + uiBtnW
	}
}

func (g *Game) reset() {
	g.sim.InitializeDefault()
	g.forceHistory = g.forceHistory[:0]
}

func (g *Game) Update() error {
	if g.pendingW != g.width || g.pendingH != g.height {
		g.width, g.height = g.pendingW, g.pendingH
		g.sim.Resize(float64(g.width), float64(g.height))
		g.layoutUI()
	}

	g.handleKeys()

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	consumed := false
	for _, sl := range g.sliders {
		if sl.update(mx, my, pressed, justPressed) {
			consumed = true
		}
	}
	if !consumed && justPressed {
		for _, b := range g.buttons {
			if b.update(mx, my) {
				consumed = true
				break
			}
		}
	}
	if !consumed {
		g.handleParticleDrag(mx, my, pressed, justPressed)
	}

	if !g.paused {
		g.sim.Step(simDT)
	}
	g.field.t += simDT
	g.recordForce()
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showField = !g.showField
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.showVectors = !g.showVectors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTrails = !g.showTrails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if p := g.hoveredParticle(); p != nil {
			p.Locked = !p.Locked
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := simulation.SaveScenario(snapshotPath, g.sim); err != nil {
			log.Printf("save scenario: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		ns, err := simulation.LoadScenario(snapshotPath, float64(g.width), float64(g.height))
		if err != nil {
			log.Printf("load scenario: %v", err)
			return
		}
		g.sim = ns
		g.forceHistory = g.forceHistory[:0]
	}
}

func (g *Game) hoveredParticle() *physics.Particle {
	mx, my := ebiten.CursorPosition()
	mouse := physics.Vector2{X: float64(mx), Y: float64(my)}
	for _, p := range g.sim.Particles {
		if p.Pos.DistanceTo(mouse) <= p.Radius() {
			return p
		}
	}
	return nil
}

// handleParticleDrag repositions a grabbed particle directly, bypassing the
// physics; velocity is zeroed so releasing does not fling it.
func (g *Game) handleParticleDrag(mx, my int, pressed, justPressed bool) {
	if justPressed {
		mouse := physics.Vector2{X: float64(mx), Y: float64(my)}
		for i, p := range g.sim.Particles {
			if p.Pos.DistanceTo(mouse) <= p.Radius() {
				g.dragIdx = i
				break
			}
		}
	}
	if !pressed {
		g.dragIdx = -1
		return
	}
	if p := g.particle(g.dragIdx); p != nil {
		p.Pos = physics.Vector2{X: float64(mx), Y: float64(my)}
		p.Vel = physics.Vector2{}
		g.sim.ResolveBounds(p)
	}
}

func (g *Game) recordForce() {
	if len(g.sim.Particles) < 2 {
		return
	}
	f := physics.CoulombForce(g.sim.Particles[0], g.sim.Particles[1])
	g.forceHistory = append(g.forceHistory, f.Len())
	if len(g.forceHistory) > forceHistoryMax {
		g.forceHistory = g.forceHistory[len(g.forceHistory)-forceHistoryMax:]
	}
}

// Layout reports the window size as the logical canvas; the actual resize of
// simulation bounds happens at the top of Update so a frame stays indivisible.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.pendingW, g.pendingH = outsideWidth, outsideHeight
	}
	return g.pendingW, g.pendingH
}
