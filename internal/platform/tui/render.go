package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Each board cell is drawn two terminal columns wide so cells look square.
const (
	cellColumns   = 2
	outlinedGlyph = "[]"
	plainGlyph    = "  "
)

// styleCache maps a screen cell to its lipgloss style.
type styleCache map[core.Cell]lipgloss.Style

func (c styleCache) style(cell core.Cell) lipgloss.Style {
	if st, ok := c[cell]; ok {
		return st
	}
	st := lipgloss.NewStyle().Background(lipgloss.Color(core.Hex(cell.Fill)))
	if cell.Outlined {
		st = st.Foreground(lipgloss.Color(core.Hex(cell.Border)))
	}
	c[cell] = st
	return st
}

func glyph(cell core.Cell) string {
	if cell.Outlined {
		return outlinedGlyph
	}
	return plainGlyph
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same look to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*cellColumns*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell != start {
					break
				}
				run.WriteString(glyph(cell))
				x++
			}

			sb.WriteString(styles.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
