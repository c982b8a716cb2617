// Package canvas is a braille render target mapping lon/lat onto terminal cells.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"worldmap/internal/viewport"
)

// Canvas is a width x height cell area with 2x4 braille dots per cell,
// showing the logical window vp.
type Canvas struct {
	w, h   int
	vp     viewport.Viewport
	buf    *brailleBuf
	colors [][]lipgloss.TerminalColor
}

// New returns an empty canvas. Negative sizes are treated as zero.
func New(width, height int, vp viewport.Viewport) *Canvas {
	width, height = max(0, width), max(0, height)
	colors := make([][]lipgloss.TerminalColor, height)
	for i := range colors {
		colors[i] = make([]lipgloss.TerminalColor, width)
	}
	return &Canvas{w: width, h: height, vp: vp, buf: newBrailleBuf(width, height), colors: colors}
}

// Resolution returns the dot grid size.
func (c *Canvas) Resolution() (int, int) { return c.w * 2, c.h * 4 }

// GetPoint maps a logical point to dot coordinates. Points on the viewport
// edges are inside: MinX maps to the first dot column and MaxX to the last,
// MaxY to the top dot row and MinY to the bottom one. A degenerate viewport
// maps nothing.
func (c *Canvas) GetPoint(x, y float64) (int, int, bool) {
	if !c.vp.Valid() || c.w == 0 || c.h == 0 {
		return 0, 0, false
	}
	if !c.vp.Contains(x, y) {
		return 0, 0, false
	}
	rw, rh := c.Resolution()
	dx := int((x - c.vp.MinX) * float64(rw-1) / c.vp.Width())
	dy := int((c.vp.MaxY - y) * float64(rh-1) / c.vp.Height())
	return dx, dy, true
}

// Paint sets the dot at (dx, dy) and colours its cell.
func (c *Canvas) Paint(dx, dy int, col lipgloss.TerminalColor) {
	if c.buf.setDot(dx, dy) {
		c.colors[dy/4][dx/2] = col
	}
}

// Cell returns the braille rune at a cell, ' ' when empty.
func (c *Canvas) Cell(cx, cy int) rune { return c.buf.rune(cx, cy) }

// Lines renders each cell row, styling runs of equally coloured cells once.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb, run strings.Builder
		var runColor lipgloss.TerminalColor
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == nil {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			col := c.colors[y][x]
			if col != runColor {
				flush()
				runColor = col
			}
			run.WriteRune(c.buf.rune(x, y))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
