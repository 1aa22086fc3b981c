package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// UI metrics
const (
	sliderW    = 150
	sliderH    = 14
	sliderPad  = 34
	uiBtnW     = 86
	uiBtnH     = 26
	uiBtnPad   = 10
	knobRadius = 6
)

var (
	uiTrackColor  = color.RGBA{90, 90, 110, 255}
	uiFillColor   = color.RGBA{120, 170, 255, 255}
	uiKnobColor   = color.RGBA{230, 230, 240, 255}
	uiTextColor   = color.RGBA{210, 210, 220, 255}
	uiBtnColor    = color.RGBA{50, 50, 70, 255}
	uiBtnHotColor = color.RGBA{80, 80, 110, 255}
	uiBtnOnColor  = color.RGBA{70, 110, 170, 255}
)

func pointInRect(px, py, x, y, w, h int) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// Slider is a horizontal drag widget bound to a live value through Get/Set.
// Set is only called while the knob is being dragged, so external writes to
// the underlying value (e.g. the physics moving the separation) win otherwise.
type Slider struct {
	Label    string
	Fmt      string
	X, Y, W  int
	Min, Max float64
	Get      func() float64
	Set      func(float64)

	dragging bool
}

// update returns true while the slider owns the pointer.
func (sl *Slider) update(mx, my int, pressed, justPressed bool) bool {
	if justPressed && pointInRect(mx, my, sl.X-knobRadius, sl.Y-knobRadius, sl.W+2*knobRadius, sliderH+knobRadius) {
		sl.dragging = true
	}
	if !pressed {
		sl.dragging = false
		return false
	}
	if !sl.dragging {
		return false
	}

	t := float64(mx-sl.X) / float64(sl.W)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	sl.Set(sl.Min + t*(sl.Max-sl.Min))
	return true
}

func (sl *Slider) draw(screen *ebiten.Image) {
	v := sl.Get()
	t := (v - sl.Min) / (sl.Max - sl.Min)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	cy := float32(sl.Y) + sliderH/2
	vector.StrokeLine(screen, float32(sl.X), cy, float32(sl.X+sl.W), cy, 3, uiTrackColor, true)
	kx := float32(sl.X) + float32(t*float64(sl.W))
	vector.StrokeLine(screen, float32(sl.X), cy, kx, cy, 3, uiFillColor, true)
	vector.DrawFilledCircle(screen, kx, cy, knobRadius, uiKnobColor, true)

	label := fmt.Sprintf("%s: "+sl.Fmt, sl.Label, v)
	text.Draw(screen, label, basicfont.Face7x13, sl.X, sl.Y-4, uiTextColor)
}

// Button is a click widget; Active tints it when the toggle it controls is on.
type Button struct {
	Label   string
	X, Y    int
	W, H    int
	Active  func() bool
	OnClick func()
}

func (b *Button) update(mx, my int) bool {
	if !pointInRect(mx, my, b.X, b.Y, b.W, b.H) {
		return false
	}
	b.OnClick()
	return true
}

func (b *Button) draw(screen *ebiten.Image, mx, my int) {
	bg := uiBtnColor
	if b.Active != nil && b.Active() {
		bg = uiBtnOnColor
	} else if pointInRect(mx, my, b.X, b.Y, b.W, b.H) {
		bg = uiBtnHotColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, uiTrackColor, true)

	tx := b.X + (b.W-len(b.Label)*7)/2
	ty := b.Y + b.H/2 + 4
	text.Draw(screen, b.Label, basicfont.Face7x13, tx, ty, uiTextColor)
}
