package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker. With a non-zero Step the value snaps to
// Min + k*Step, which makes it usable for integer settings.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	Step     float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a slider of width w with a continuous range.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     12,
	}
	s.Set(value)
	return s
}

// Set stores v after clamping and snapping it.
func (s *Slider) Set(v float64) {
	s.Value = s.snap(v)
}

// Int returns the value rounded to the nearest integer.
func (s *Slider) Int() int {
	return int(math.Round(s.Value))
}

func (s *Slider) snap(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// valueAt maps a cursor x coordinate to a slider value.
func (s *Slider) valueAt(mx float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	p := (mx - s.X) / s.W
	return s.snap(s.Min + p*(s.Max-s.Min))
}

// ratio is the filled fraction of the bar.
func (s *Slider) ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if hit(s.X, s.Y, s.W, s.H, mx, my) {
		s.Value = s.valueAt(float64(mx))
	}
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	// Background
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	// Value bar
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.ratio()), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, s.text(), int(s.X+s.W-40), int(s.Y-15))
}

func (s *Slider) text() string {
	if s.Step >= 1 {
		return fmt.Sprintf("%d", s.Int())
	}
	return fmt.Sprintf("%.2f", s.Value)
}

// hit reports whether the cursor (mx, my) is inside the rectangle.
func hit(x, y, w, h float64, mx, my int) bool {
	fx, fy := float64(mx), float64(my)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}
