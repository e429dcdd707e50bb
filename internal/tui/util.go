package tui

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"freeselect/internal/geom"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}

// micro rounds a node point onto the braille micro grid.
func micro(p geom.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// terminalColor flattens c onto the canvas background by its alpha.
func terminalColor(c color.RGBA) lipgloss.Color {
	bg, _ := colorful.Hex(string(subtleBg))
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return lipgloss.Color(bg.BlendRgb(fg, float64(c.A)/255).Clamped().Hex())
}
