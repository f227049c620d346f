package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	labelHeight   = 15 // space reserved above each widget for its label
	widgetSpacing = 6
	sectionHeight = 25
	titleHeight   = 30
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	Contains(x, y float64) bool
}

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return labelHeight + c.Size + widgetSpacing
}

// ButtonRow lays out buttons side by side on one line of the panel.
type ButtonRow struct {
	Buttons []*Button
}

func (r *ButtonRow) Update() {
	for _, b := range r.Buttons {
		b.Update()
	}
}

func (r *ButtonRow) Draw(screen *ebiten.Image) {
	for _, b := range r.Buttons {
		b.Draw(screen)
	}
}

func (r *ButtonRow) GetHeight() float64 {
	if len(r.Buttons) == 0 {
		return labelHeight + widgetSpacing
	}
	return labelHeight + r.Buttons[0].Height + widgetSpacing
}

func (r *ButtonRow) Contains(x, y float64) bool {
	for _, b := range r.Buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	Title         string
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Widgets       []UIWidget
	Labels        []string // Labels for widgets
	ScrollOffset  float64  // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	// Section headers
	sections []PanelSection
}

// PanelSection groups consecutive widgets under a header.
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
	EndIndex   int // Widget index where this section ends (exclusive)
}

// NewUIPanel creates a new UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Widgets:     make([]UIWidget, 0),
		Labels:      make([]string, 0),
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		sections:    make([]PanelSection, 0),
	}
}

// AddSection adds a section header
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	yOffset := p.calculateNextYOffset()

	checkbox := NewCheckbox(
		p.X+10,
		p.Y+yOffset+labelHeight,
		label,
		value,
	)

	p.Widgets = append(p.Widgets, &CheckboxWrapper{checkbox})
	p.Labels = append(p.Labels, label)

	return checkbox
}

// AddButtonRow adds one button per label on a single line, splitting the
// panel width evenly. onClick[i] is wired to labels[i].
func (p *UIPanel) AddButtonRow(label string, labels []string, onClick []func()) []*Button {
	yOffset := p.calculateNextYOffset()

	row := &ButtonRow{}
	if n := len(labels); n > 0 {
		gap := 10.0
		w := (p.Width - 20 - gap*float64(n-1)) / float64(n)
		for i, l := range labels {
			var cb func()
			if i < len(onClick) {
				cb = onClick[i]
			}
			row.Buttons = append(row.Buttons,
				NewButton(p.X+10+float64(i)*(w+gap), p.Y+yOffset+labelHeight, w, 20, l, cb))
		}
	}

	p.Widgets = append(p.Widgets, row)
	p.Labels = append(p.Labels, label)

	return row.Buttons
}

// calculateNextYOffset calculates the Y offset for the next widget
func (p *UIPanel) calculateNextYOffset() float64 {
	offset := float64(titleHeight)

	// Add section header heights
	offset += float64(len(p.sections)) * sectionHeight

	// Add all widget heights
	for _, widget := range p.Widgets {
		offset += widget.GetHeight()
	}

	return offset
}

// Contains reports whether the screen point (x, y) is over the panel, so
// clicks there belong to the UI and not to the world behind it.
func (p *UIPanel) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	// Handle scroll
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.ScrollOffset -= dy * 20

		// Clamp scroll
		maxScroll := max(p.calculateTotalHeight()-p.Height+10, 0)
		p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
	}

	// Update all widgets
	for _, widget := range p.Widgets {
		widget.Update()
	}
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	// Draw panel background
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	// Draw border
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	// Draw title
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	// Draw widgets with clipping and scrolling
	currentY := p.Y + titleHeight - p.ScrollOffset

	for _, section := range p.sections {
		// Draw section header
		if currentY >= p.Y-sectionHeight && currentY <= p.Y+p.Height {
			sectionBG := color.RGBA{R: 60, G: 60, B: 70, A: 255}
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				sectionBG, true)
			ebitenutil.DebugPrintAt(screen, section.Title,
				int(p.X+10), int(currentY+2))
		}
		currentY += sectionHeight

		// Draw widgets in this section
		for idx := section.StartIndex; idx < section.EndIndex && idx < len(p.Widgets); idx++ {
			widget := p.Widgets[idx]

			// Adjust widget Y position for scrolling, even when hidden,
			// so hit tests follow what is on screen
			p.adjustWidgetPosition(widget, currentY+labelHeight)

			// Only draw if visible
			if currentY >= p.Y && currentY+widget.GetHeight() <= p.Y+p.Height {
				if label := p.Labels[idx]; label != "" {
					ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(currentY-2))
				}
				widget.Draw(screen)
			}

			currentY += widget.GetHeight()
		}
	}
}

// adjustWidgetPosition moves a widget to its scrolled position
func (p *UIPanel) adjustWidgetPosition(widget UIWidget, newY float64) {
	switch w := widget.(type) {
	case *CheckboxWrapper:
		w.Y = newY
	case *ButtonRow:
		for _, b := range w.Buttons {
			b.Y = newY
		}
	}
}

// calculateTotalHeight calculates the total content height
func (p *UIPanel) calculateTotalHeight() float64 {
	height := float64(titleHeight)

	// Add section headers
	height += float64(len(p.sections)) * sectionHeight

	// Add all widgets
	for _, widget := range p.Widgets {
		height += widget.GetHeight()
	}

	return height
}

// FitHeight shrinks or grows the panel to show every widget without scrolling.
func (p *UIPanel) FitHeight() {
	p.Height = p.calculateTotalHeight() + 5
}
