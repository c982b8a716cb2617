package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldmap/internal/viewport"
)

func TestRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	final, err := Run(newTestModel(t),
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("\x1b[Aq")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	require.NoError(t, err)
	assert.True(t, final.Exiting())
	assert.Equal(t, viewport.Viewport{MinX: -178, MaxX: 178, MinY: -89, MaxY: 89}, final.Viewport())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(newTestModel(t),
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, tea.ErrProgramKilled)
	assert.Contains(t, err.Error(), "run viewer")
}
