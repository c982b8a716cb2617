package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worldmap/internal/geom"
	"worldmap/internal/worldmap"
)

func TestViewBeforeResize(t *testing.T) {
	assert.Empty(t, newTestModel(t).View())
}

func TestViewDrawsDataset(t *testing.T) {
	d, err := geom.LoadFile("testdata/world.txt")
	require.NoError(t, err)
	cat := worldmap.NewCatalog(map[worldmap.Resolution]*geom.Dataset{worldmap.High: d})
	m, _ := send(t, New(cat, worldmap.High, nil, zap.NewNop()), tea.WindowSizeMsg{Width: 40, Height: 12})

	out := m.View()
	assert.Contains(t, out, "worldmap")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "world.txt (3 points)")
	// top left corner (-180, 90) is the first dot
	assert.Contains(t, out, "⠁")
	// bottom right corner (180, -90) is the last dot
	assert.Contains(t, out, "⢀")
}

func TestViewLayout(t *testing.T) {
	m, _ := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})
	l := m.layout()
	assert.Equal(t, layout{contentW: 40, contentH: 9, mapX: 1, mapY: 2, mapW: 38, mapH: 7}, l)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	l = m.layout()
	assert.Equal(t, sidebarWidth+2, l.mapX)
	assert.Equal(t, 40-sidebarWidth-3, l.mapW)
}

func TestRenderMapMarkers(t *testing.T) {
	m := newTestModel(t)
	before := m.renderMap(38, 7)
	assert.NotContains(t, before, "⠄")

	// (90, 45) lands on dot (56, 6), cell (28, 1)
	m.markers = []geom.Point{{90, 45}}
	assert.Contains(t, m.renderMap(38, 7), "⠄")
}

func TestRenderMapFollowsViewport(t *testing.T) {
	m := newTestModel(t)
	full := m.renderMap(10, 5)
	assert.Contains(t, full, "⠁")

	// panning right drops the western corner out of view
	m, _ = send(t, m, runeKey('d'))
	assert.NotContains(t, m.renderMap(10, 5), "⠁")
}

func TestViewSidebar(t *testing.T) {
	m, _ := send(t, newTestModel(t),
		tea.WindowSizeMsg{Width: 80, Height: 24},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	out := m.View()
	assert.Contains(t, out, "Resolutions")
	assert.Contains(t, out, "coarse.txt, 1 pts")
	assert.Contains(t, out, "world.txt, 3 pts")
}

func TestViewInspectPopup(t *testing.T) {
	m, _ := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 24}, runeKey('i'))
	assert.Contains(t, m.View(), "nearest: lon=0.000000 lat=0.000000")
}

func TestViewHelpToggle(t *testing.T) {
	m, _ := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 120, Height: 24})
	assert.Contains(t, m.View(), "zoom in")

	m, _ = send(t, m, runeKey('h'))
	assert.NotContains(t, m.View(), "zoom in")
}

func TestOverlay(t *testing.T) {
	base := "aaaa\nbbbb\ncccc\ndddd"
	got := overlay(base, "xy\nzw")
	assert.Equal(t, "aaaa\nxy  \nzw  \ndddd", got)
}
