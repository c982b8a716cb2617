package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	PanUp      key.Binding
	PanLeft    key.Binding
	PanDown    key.Binding
	PanRight   key.Binding
	Reset      key.Binding
	Resolution key.Binding
	Sidebar    key.Binding
	Inspect    key.Binding
	Paste      key.Binding
	Help       key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	ZoomIn:     key.NewBinding(key.WithKeys("up", "+", "="), key.WithHelp("↑/+", "zoom in")),
	ZoomOut:    key.NewBinding(key.WithKeys("down", "-"), key.WithHelp("↓/-", "zoom out")),
	PanUp:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "pan up")),
	PanLeft:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "pan left")),
	PanDown:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "pan down")),
	PanRight:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "pan right")),
	Reset:      key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
	Resolution: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resolution")),
	Sidebar:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "datasets")),
	Inspect:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
	Paste:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
	Help:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
}

// help only; the pan bindings above do the matching
var panHelp = key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("w,a,s,d", "pan"))

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, panHelp, k.Reset, k.Resolution, k.Sidebar, k.Inspect, k.Paste, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Reset},
		{k.PanUp, k.PanLeft, k.PanDown, k.PanRight},
		{k.Resolution, k.Sidebar, k.Inspect, k.Paste},
		{k.Help, k.Quit},
	}
}
