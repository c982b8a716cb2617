package tui

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb/geo"

	"worldmap/internal/geom"
)

// cellToLonLat converts a map cell to the lon/lat at its centre.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.vp.Valid() || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	lon := m.vp.MinX + (float64(cx)+0.5)/float64(w)*m.vp.Width()
	lat := m.vp.MaxY - (float64(cy)+0.5)/float64(h)*m.vp.Height()
	return lon, lat, true
}

// trackHover updates the lon/lat readout for a pointer at screen cell (x, y).
func (m *Model) trackHover(x, y int) {
	l := m.layout()
	cx, cy := x-l.mapX, y-l.mapY
	if cx < 0 || cy < 0 || cx >= l.mapW || cy >= l.mapH {
		m.hoverHasGeo = false
		return
	}
	m.hoverLon, m.hoverLat, m.hoverHasGeo = m.cellToLonLat(cx, cy, l.mapW, l.mapH)
}

// toggleInspect shows the dataset point nearest to the viewport centre.
func (m *Model) toggleInspect() {
	if m.inspectPopup != "" {
		m.inspectPopup = ""
		return
	}
	d, ok := m.catalog.Get(m.res)
	if !ok {
		m.inspectPopup = "no dataset"
		m.status = m.inspectPopup
		return
	}
	center := m.vp.Center()
	near := d.Nearest(center)
	meta := []string{
		fmt.Sprintf("dataset: %s (%s)", d.Name(), m.res),
		fmt.Sprintf("points: %d", d.Len()),
		fmt.Sprintf("viewport: %s", m.vp),
		fmt.Sprintf("centre: lon=%.5f lat=%.5f", center.X(), center.Y()),
		fmt.Sprintf("nearest: lon=%.6f lat=%.6f", near.X(), near.Y()),
		fmt.Sprintf("distance: %s", formatDistance(near, center)),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

func formatDistance(a, b geom.Point) string {
	d := geo.Distance(a, b)
	if d < 1000 {
		return fmt.Sprintf("%.0f m", d)
	}
	return fmt.Sprintf("%.1f km", d/1000)
}
