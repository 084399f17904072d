package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

// styleKey identifies a foreground/background pair by hex.
type styleKey struct {
	fg, bg string
}

// RenderScreen converts a Screen buffer to a styled string for display
// using the default renderer.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
// Colours are emitted as truecolor hex and degraded by the renderer's profile.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[styleKey]lipgloss.Style)
	styleFor := func(k styleKey) lipgloss.Style {
		if st, ok := styles[k]; ok {
			return st
		}
		st := r.NewStyle().
			Foreground(lipgloss.Color(k.fg)).
			Background(lipgloss.Color(k.bg))
		styles[k] = st
		return st
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{fg: cell.Fg.Hex(), bg: cell.Bg.Hex()}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{fg: cell.Fg.Hex(), bg: cell.Bg.Hex()}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
