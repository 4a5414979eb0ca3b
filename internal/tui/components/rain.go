package components

import (
	"strings"

	"github.com/hy4ri/termfolio/internal/rain"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// RenderRain draws the field, one terminal line per row. Each column
// occupies CellWidth cells so narrow and wide glyphs line up.
func RenderRain(f *rain.Field) string {
	width, _ := f.Size()
	cw := f.CellWidth()
	rows := f.Rows()

	lines := make([]string, len(rows))
	for y, row := range rows {
		var b strings.Builder
		used := 0
		for _, c := range row {
			if c.Empty() {
				b.WriteString(strings.Repeat(" ", cw))
			} else {
				g := string(c.Glyph)
				if pad := cw - runewidth.RuneWidth(c.Glyph); pad > 0 {
					g += strings.Repeat(" ", pad)
				}
				b.WriteString(styles.RainStyle(c.Intensity, c.Bright).Render(g))
			}
			used += cw
		}
		if used < width {
			b.WriteString(strings.Repeat(" ", width-used))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
