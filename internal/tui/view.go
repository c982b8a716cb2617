package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"worldmap/internal/canvas"
	"worldmap/internal/worldmap"
)

const (
	headerHeight = 1
	footerHeight = 2
)

type layout struct {
	contentW, contentH int
	// map canvas inside the border, in screen cells
	mapX, mapY int
	mapW, mapH int
}

// layout computes the screen areas for the current size; Update and View share it.
func (m Model) layout() layout {
	var l layout
	l.contentW = max(10, m.width)
	l.contentH = max(4, m.height-headerHeight-footerHeight)
	left := 0
	if m.showSidebar {
		left = sidebarWidth + 1
	}
	l.mapX = left + 1
	l.mapY = headerHeight + 1
	l.mapW = max(1, l.contentW-left-2)
	l.mapH = max(1, l.contentH-2)
	return l
}

func (m Model) View() string {
	if m.exiting || m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	header := titleStyle.Render(" worldmap ─ " + m.res.String() + " ")
	header = lipgloss.NewStyle().Width(l.contentW).Render(header)

	// Map
	var mapBody string
	if m.pasteMode {
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapBody = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	} else {
		mapBody = m.renderMap(l.mapW, l.mapH)
	}
	mapView := mapBoxStyle.Render(mapBody)
	if m.inspectPopup != "" {
		box := boxStyle.MaxWidth(max(20, min(48, l.contentW/2))).Render(m.inspectPopup)
		mapView = overlay(mapView, box)
	}

	body := mapView
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status with hover coords on the right, help below
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	spacerW := max(0, l.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := status + strings.Repeat(" ", spacerW) + coords
	helpLine := ""
	if m.helpVisible {
		m.help.Width = l.contentW
		helpLine = " " + m.help.View(keys)
	}

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, statusLine, helpLine)
	return appStyle.Width(l.contentW).MaxHeight(m.height).Render(ui)
}

// renderMap draws one frame of the point shape and any markers.
func (m Model) renderMap(w, h int) string {
	c := canvas.New(w, h, m.vp)
	worldmap.WorldMap{Catalog: m.catalog, Resolution: m.res, Color: m.color}.Draw(c)
	for _, p := range m.markers {
		if x, y, ok := c.GetPoint(p[0], p[1]); ok {
			c.Paint(x, y, markerFg)
		}
	}
	return c.String()
}

// overlay places box over the left middle of base, line by line.
func overlay(base, box string) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	top := max(0, (len(baseLines)-len(boxLines))/2)
	for i, bl := range boxLines {
		y := top + i
		if y >= len(baseLines) {
			break
		}
		rest := max(0, lipgloss.Width(baseLines[y])-lipgloss.Width(bl))
		baseLines[y] = bl + strings.Repeat(" ", rest)
	}
	return strings.Join(baseLines, "\n")
}
