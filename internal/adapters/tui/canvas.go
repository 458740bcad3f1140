package tui

import (
	"strings"

	"github.com/bnema/kiroku/internal/particles"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Each terminal cell covers CellWidth x CellHeight simulator units.
const (
	CellWidth  = 8
	CellHeight = 16
)

// DiscColor maps a hue in degrees to the fully saturated mid-lightness color.
func DiscColor(hue int) lipgloss.Color {
	return lipgloss.Color(colorful.Hsl(float64(hue), 1, 0.5).Hex())
}

func discGlyph(radius float64) string {
	switch {
	case radius >= 4:
		return "●"
	case radius >= 2:
		return "•"
	default:
		return "·"
	}
}

// RenderFrame rasterizes a frame onto a cols x rows cell grid. Discs that
// fall outside the grid are skipped; later discs overwrite earlier ones.
func RenderFrame(frame particles.Frame, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for _, disc := range frame.Discs {
		if disc.X < 0 || disc.Y < 0 {
			continue
		}
		col := int(disc.X / CellWidth)
		row := int(disc.Y / CellHeight)
		if col >= cols || row >= rows {
			continue
		}
		grid[row][col] = lipgloss.NewStyle().Foreground(DiscColor(disc.Hue)).Render(discGlyph(disc.Radius))
	}

	lines := make([]string, rows)
	for r, cells := range grid {
		lines[r] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}
