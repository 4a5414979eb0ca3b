package styles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// rainLevels is the number of precomputed trail shades.
const rainLevels = 12

var (
	rainShades [rainLevels]lipgloss.Style
	rainBright lipgloss.Style
)

// applyRain blends the trail color toward the background so faded glyphs
// sink into the terminal.
func applyRain(p Palette) {
	bg, err := colorful.Hex(string(p.Background))
	if err != nil {
		bg = colorful.Color{}
	}
	fg, err := colorful.Hex(string(p.Rain))
	if err != nil {
		fg = colorful.Color{G: 1}
	}

	for i := range rainShades {
		t := float64(i+1) / rainLevels
		c := bg.BlendLab(fg, t).Clamped()
		rainShades[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	rainBright = lipgloss.NewStyle().Foreground(p.RainBright).Bold(true)
}

// RainStyle returns the style for a glyph of the given intensity (0-1).
func RainStyle(intensity float64, bright bool) lipgloss.Style {
	if bright {
		return rainBright
	}
	i := int(math.Ceil(intensity*rainLevels)) - 1
	if i < 0 {
		i = 0
	}
	if i >= rainLevels {
		i = rainLevels - 1
	}
	return rainShades[i]
}
