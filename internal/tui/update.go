package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"worldmap/internal/geom"
	"worldmap/internal/viewport"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.exiting {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, max(0, m.layout().contentH-2))
	case tea.KeyMsg:
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showSidebar {
			return m.updateSidebar(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.ZoomIn):
		m.zoom(1)
	case key.Matches(msg, keys.ZoomOut):
		m.zoom(-1)
	case key.Matches(msg, keys.PanUp):
		m.pan(viewport.Up)
	case key.Matches(msg, keys.PanLeft):
		m.pan(viewport.Left)
	case key.Matches(msg, keys.PanDown):
		m.pan(viewport.Down)
	case key.Matches(msg, keys.PanRight):
		m.pan(viewport.Right)
	case key.Matches(msg, keys.Reset):
		m.vp = viewport.Default()
		m.status = "viewport reset"
	case key.Matches(msg, keys.Resolution):
		m.setResolution(m.catalog.Next(m.res))
	case key.Matches(msg, keys.Sidebar):
		m.showSidebar = true
		m.refreshResolutions()
	case key.Matches(msg, keys.Inspect):
		m.toggleInspect()
	case key.Matches(msg, keys.Paste):
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		return m, m.ta.Focus()
	case key.Matches(msg, keys.Help):
		m.helpVisible = !m.helpVisible
	case msg.Type == tea.KeyEsc:
		m.inspectPopup = ""
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.exiting = true
	m.log.Info("quit", zap.Stringer("viewport", m.vp))
	return m, tea.Quit
}

// zoom applies steps, refusing a zoom in that would collapse the viewport.
func (m *Model) zoom(steps int) {
	if steps > 0 && !m.vp.CanZoom(steps) {
		m.status = "zoom limit reached"
		return
	}
	m.vp.Zoom(steps)
	m.status = fmt.Sprintf("zoom %+d  %s", steps, m.vp)
	m.log.Debug("zoom", zap.Int("steps", steps), zap.Stringer("viewport", m.vp))
}

func (m *Model) pan(d viewport.Direction) {
	m.vp.Pan(d)
	m.status = fmt.Sprintf("pan %s  %s", d, m.vp)
	m.log.Debug("pan", zap.Stringer("direction", d), zap.Stringer("viewport", m.vp))
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.trackHover(msg.X, msg.Y)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.zoom(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.zoom(-1)
	case msg.Action == tea.MouseActionRelease:
		// dragging finishes
		m.drag = nil
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.drag = &cell{msg.X, msg.Y}
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionMotion:
		if m.drag != nil {
			m.vp.Drag(msg.X-m.drag.x, msg.Y-m.drag.y)
			m.status = "drag  " + m.vp.String()
		}
		m.drag = &cell{msg.X, msg.Y}
	}
}

func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Sidebar), msg.Type == tea.KeyEsc:
		m.showSidebar = false
		return m, nil
	case msg.Type == tea.KeyEnter:
		if it, ok := m.l.SelectedItem().(resolutionItem); ok {
			m.setResolution(it.res)
		}
		m.showSidebar = false
		return m, nil
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEsc:
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case tea.KeyEnter:
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.markers = nil
			m.status = "markers cleared"
		} else {
			pts, err := geom.ParseWKT(w)
			if err != nil {
				m.status = "wkt error: " + err.Error()
				return m, nil
			}
			m.markers = pts
			m.status = fmt.Sprintf("marked %d points", len(pts))
		}
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}
