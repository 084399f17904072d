package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestRenderScreenWithPlainProfile(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "beat", core.White)
	s.Paint(1, 1, core.Red)
	s.Set(1, 1, '#')

	out := RenderScreenWith(asciiRenderer(), s)
	assert.Equal(t, s.String(), out)
}

func TestRenderScreenWithTrueColor(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	s := core.NewScreen(4, 1)
	s.Paint(2, 0, core.Red)

	out := RenderScreenWith(r, s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	// Red background is emitted as a 24-bit colour.
	assert.Contains(t, out, "48;2;255;0;0")
	assert.Equal(t, 4, lipgloss.Width(out))
}
