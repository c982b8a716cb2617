package worldmap

import (
	"github.com/charmbracelet/lipgloss"
)

// Painter is the render target a shape draws onto.
type Painter interface {
	// GetPoint maps a logical point to a paintable position, or reports false
	// when the point is outside the visible window.
	GetPoint(x, y float64) (int, int, bool)
	Paint(x, y int, c lipgloss.TerminalColor)
}

// WorldMap draws every point of one catalog resolution.
type WorldMap struct {
	Catalog    *Catalog
	Resolution Resolution
	Color      lipgloss.TerminalColor
}

// Draw scans the whole dataset and paints each point that maps into view.
// An unconfigured resolution draws nothing.
func (m WorldMap) Draw(p Painter) {
	d, ok := m.Catalog.Get(m.Resolution)
	if !ok {
		return
	}
	for pt := range d.All() {
		if x, y, ok := p.GetPoint(pt[0], pt[1]); ok {
			p.Paint(x, y, m.Color)
		}
	}
}
