package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"worldmap/internal/geom"
	"worldmap/internal/viewport"
	"worldmap/internal/worldmap"
)

// cell is a terminal cell position.
type cell struct {
	x, y int
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	vp viewport.Viewport
	// last pointer cell while the left button is held, nil when idle
	drag *cell

	exiting bool
	status  string

	// Data
	catalog *worldmap.Catalog
	res     worldmap.Resolution
	color   lipgloss.TerminalColor
	markers []geom.Point

	// resolution picker
	l list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	help help.Model

	// inspect popup
	inspectPopup string

	// hover state
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	log *zap.Logger
}

// New returns a model showing res from catalog in the given colour, with the
// viewport over the whole world.
func New(catalog *worldmap.Catalog, res worldmap.Resolution, color lipgloss.TerminalColor, log *zap.Logger) Model {
	m := Model{
		helpVisible: true,
		vp:          viewport.Default(),
		catalog:     catalog,
		res:         res,
		color:       color,
		help:        help.New(),
		log:         log,
	}
	m.status = m.datasetStatus()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Resolutions"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	m.l.DisableQuitKeybindings()
	m.refreshResolutions()
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to mark; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Viewport returns the current viewport.
func (m Model) Viewport() viewport.Viewport { return m.vp }

// Exiting reports whether the quit key has been handled.
func (m Model) Exiting() bool { return m.exiting }

func (m Model) datasetStatus() string {
	d, ok := m.catalog.Get(m.res)
	if !ok {
		return fmt.Sprintf("%s: no dataset", m.res)
	}
	return fmt.Sprintf("%s: %s (%d points)", m.res, d.Name(), d.Len())
}
