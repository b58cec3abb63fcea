package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 5 // Checkbox size + small margin
}

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 10
}

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	Title         string
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Widgets       []UIWidget
	Labels        []string // Labels for widgets, empty for buttons
	ScrollOffset  float64  // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
	TextColor   color.RGBA

	sections []PanelSection
}

// PanelSection is a titled group of consecutive widgets.
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
}

// NewUIPanel creates a new UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		TextColor:   color.RGBA{R: 220, G: 220, B: 220, A: 255},
	}
}

// AddSection starts a new titled group; following widgets belong to it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{Title: title, StartIndex: len(p.Widgets)})
}

// AddSlider adds a continuous slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, p.Y+p.contentHeight()+15, p.Width-20, label, min, max, value)
	p.Widgets = append(p.Widgets, &SliderWrapper{slider})
	p.Labels = append(p.Labels, label)
	return slider
}

// AddIntSlider adds a slider snapping to whole numbers.
func (p *UIPanel) AddIntSlider(label string, min, max, value int) *Slider {
	slider := p.AddSlider(label, float64(min), float64(max), float64(min))
	slider.Step = 1
	slider.Set(float64(value))
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, p.Y+p.contentHeight()+15, label, value)
	p.Widgets = append(p.Widgets, &CheckboxWrapper{checkbox})
	p.Labels = append(p.Labels, label)
	return checkbox
}

// AddButton adds a full width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, p.Y+p.contentHeight(), p.Width-20, 24, label, onClick)
	p.Widgets = append(p.Widgets, &ButtonWrapper{button})
	p.Labels = append(p.Labels, "")
	return button
}

// contentHeight is the unscrolled height of everything added so far.
func (p *UIPanel) contentHeight() float64 {
	height := titleHeight + float64(len(p.sections))*sectionHeight
	for _, widget := range p.Widgets {
		height += widget.GetHeight()
	}
	return height
}

// panelLayout holds the scrolled y coordinate of every section header and widget.
type panelLayout struct {
	sections []float64
	widgets  []float64
}

func (p *UIPanel) layout() panelLayout {
	l := panelLayout{
		sections: make([]float64, len(p.sections)),
		widgets:  make([]float64, len(p.Widgets)),
	}
	y := p.Y + titleHeight - p.ScrollOffset
	next := 0
	for i, widget := range p.Widgets {
		for next < len(p.sections) && p.sections[next].StartIndex <= i {
			l.sections[next] = y
			y += sectionHeight
			next++
		}
		l.widgets[i] = y
		y += widget.GetHeight()
	}
	for ; next < len(p.sections); next++ {
		l.sections[next] = y
		y += sectionHeight
	}
	return l
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.scroll(dy)
	}
	for _, widget := range p.Widgets {
		widget.Update()
	}
}

func (p *UIPanel) scroll(dy float64) {
	p.ScrollOffset -= dy * 20

	// Clamp scroll
	maxScroll := p.contentHeight() - p.Height + 40
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
	if p.ScrollOffset > maxScroll {
		p.ScrollOffset = maxScroll
	}
}

// visible reports whether a row starting at y is inside the panel.
func (p *UIPanel) visible(y float64) bool {
	return y >= p.Y-sectionHeight && y <= p.Y+p.Height
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	l := p.layout()
	for i, section := range p.sections {
		y := l.sections[i]
		if !p.visible(y) {
			continue
		}
		vector.FillRect(screen,
			float32(p.X+5), float32(y),
			float32(p.Width-10), 20,
			color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
		ebitenutil.DebugPrintAt(screen, section.Title, int(p.X+10), int(y+5))
	}

	for i, widget := range p.Widgets {
		y := l.widgets[i]
		// widgets keep their drawn position so the next Update hit-tests the right place
		p.moveWidget(widget, y)
		if !p.visible(y) {
			continue
		}
		if p.Labels[i] != "" {
			ebitenutil.DebugPrintAt(screen, p.Labels[i], int(p.X+10), int(y))
		}
		widget.Draw(screen)
	}
}

func (p *UIPanel) moveWidget(widget UIWidget, y float64) {
	switch w := widget.(type) {
	case *SliderWrapper:
		w.Y = y + 15
	case *CheckboxWrapper:
		w.X = p.X + p.Width - 10 - w.Size
		w.Y = y
	case *ButtonWrapper:
		w.Y = y
	}
}
