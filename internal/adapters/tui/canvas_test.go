package tui

import (
	"strings"
	"testing"

	"github.com/bnema/kiroku/internal/particles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDiscColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff0000"), DiscColor(0))
	assert.Equal(t, lipgloss.Color("#00ff00"), DiscColor(120))
	assert.Equal(t, lipgloss.Color("#0000ff"), DiscColor(240))
}

func TestRenderFramePlacesDiscsByCell(t *testing.T) {
	frame := particles.Frame{Discs: []particles.Disc{
		{X: 0, Y: 0, Radius: 5},
		{X: 17, Y: 33, Radius: 3},
		{X: 1000, Y: 0, Radius: 5},
		{X: -1, Y: 0, Radius: 5},
	}}

	out := RenderFrame(frame, 4, 3)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "●"))
	assert.Contains(t, lines[2], "•")
	assert.Equal(t, "    ", lines[1])
}

func TestRenderFrameEmptyGrid(t *testing.T) {
	assert.Empty(t, RenderFrame(particles.Frame{}, 0, 10))
}
