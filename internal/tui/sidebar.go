package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"

	"worldmap/internal/worldmap"
)

const sidebarWidth = 28

// resolution picker entries
type resolutionItem struct {
	res    worldmap.Resolution
	name   string
	points int
}

func (r resolutionItem) Title() string       { return r.res.String() }
func (r resolutionItem) Description() string { return fmt.Sprintf("%s, %d pts", r.name, r.points) }
func (r resolutionItem) FilterValue() string { return r.res.String() }

func (m *Model) refreshResolutions() {
	var items []list.Item
	sel := 0
	for i, r := range m.catalog.Available() {
		d, _ := m.catalog.Get(r)
		items = append(items, resolutionItem{res: r, name: d.Name(), points: d.Len()})
		if r == m.res {
			sel = i
		}
	}
	m.l.SetItems(items)
	m.l.Select(sel)
}

// setResolution switches the drawn dataset. The viewport is kept.
func (m *Model) setResolution(r worldmap.Resolution) {
	if _, ok := m.catalog.Get(r); !ok {
		m.status = fmt.Sprintf("%s: no dataset", r)
		return
	}
	m.res = r
	m.status = m.datasetStatus()
	m.log.Info("resolution changed", zap.Stringer("resolution", r))
}
