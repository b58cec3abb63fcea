package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	Label    string
	Value    bool
	X, Y     float64
	Size     float64
	OnToggle func(bool) // optional
	clicked  bool       // Track if already clicked this frame
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16, // Default size
	}
}

// Update checks for mouse interaction
func (c *Checkbox) Update() {
	mx, my := ebiten.CursorPosition()
	c.toggle(hit(c.X, c.Y, c.Size, c.Size, mx, my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// toggle flips Value on the first frame of a press over the box.
func (c *Checkbox) toggle(over, down bool) {
	if !over || !down {
		c.clicked = false
		return
	}
	if c.clicked {
		return
	}
	c.clicked = true
	c.Value = !c.Value
	if c.OnToggle != nil {
		c.OnToggle(c.Value)
	}
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	// Fill if checked
	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}
}
