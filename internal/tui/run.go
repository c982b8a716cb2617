package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the draw / read input / update cycle until the quit key is
// pressed. The terminal is restored before Run returns, on error too.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, fmt.Errorf("run viewer: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("run viewer: unexpected final model %T", final)
	}
	return fm, nil
}
