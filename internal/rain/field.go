// Package rain implements the falling-glyph animation shown by /rain.
package rain

import (
	"math/rand/v2"
	"time"

	"github.com/mattn/go-runewidth"
)

// DefaultCharset is binary digits followed by half of the katakana syllabary.
const DefaultCharset = "01アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン"

// Config tunes the animation.
type Config struct {
	Charset string
	FPS     int
	// Fade is the share of intensity every cell loses per frame.
	Fade float64
	// Bright is the chance that a freshly drawn glyph is highlighted.
	Bright float64
	// Reset is the chance that a column jumps back to the top after a frame.
	Reset float64
}

// DefaultConfig returns the stock animation settings.
func DefaultConfig() Config {
	return Config{
		Charset: DefaultCharset,
		FPS:     20,
		Fade:    0.12,
		Bright:  0.05,
		Reset:   0.025,
	}
}

// Interval returns the frame period for the configured FPS.
func (c Config) Interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 20
	}
	return time.Second / time.Duration(c.FPS)
}

// minIntensity is the level under which a faded cell is blanked.
const minIntensity = 0.05

// Cell is one glyph slot of the field.
type Cell struct {
	Glyph     rune
	Intensity float64
	Bright    bool
}

// Empty reports whether the cell has nothing to draw.
func (c Cell) Empty() bool {
	return c.Glyph == 0
}

// Field is the grid of falling glyphs. Every column holds the row its next
// glyph will be drawn at.
type Field struct {
	cfg        Config
	glyphs     []rune
	glyphWidth int
	rng        *rand.Rand

	active  bool
	width   int
	height  int
	columns []int
	cells   [][]Cell
}

// NewField creates an inactive field. A nil rng uses a time-seeded source.
func NewField(cfg Config, rng *rand.Rand) *Field {
	if cfg.Charset == "" {
		cfg.Charset = DefaultCharset
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xc0ffee))
	}
	glyphs := []rune(cfg.Charset)
	return &Field{
		cfg:        cfg,
		glyphs:     glyphs,
		glyphWidth: GlyphWidth(glyphs),
		rng:        rng,
	}
}

// GlyphWidth returns the widest cell width among glyphs, never less than one.
func GlyphWidth(glyphs []rune) int {
	w := 1
	for _, r := range glyphs {
		if rw := runewidth.RuneWidth(r); rw > w {
			w = rw
		}
	}
	return w
}

// Activate turns the field on and lays out columns for the given viewport.
func (f *Field) Activate(width, height int) {
	f.active = true
	f.Resize(width, height)
}

// Deactivate turns the field off and drops its grid.
func (f *Field) Deactivate() {
	f.active = false
	f.columns = nil
	f.cells = nil
}

// Active reports whether the field is running.
func (f *Field) Active() bool {
	return f.active
}

// Resize recomputes the column layout. All cursors restart at the top and
// the grid is rebuilt, so no column from an older width survives.
func (f *Field) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height

	n := width / f.glyphWidth
	f.columns = make([]int, n)
	f.cells = make([][]Cell, height)
	for y := range f.cells {
		f.cells[y] = make([]Cell, n)
	}
}

// Step advances the animation by one frame. It does nothing while inactive.
func (f *Field) Step() {
	if !f.active || f.height == 0 || len(f.columns) == 0 {
		return
	}

	keep := 1 - f.cfg.Fade
	for y := range f.cells {
		row := f.cells[y]
		for x := range row {
			if row[x].Empty() {
				continue
			}
			row[x].Intensity *= keep
			row[x].Bright = false
			if row[x].Intensity < minIntensity {
				row[x] = Cell{}
			}
		}
	}

	for x, y := range f.columns {
		f.cells[y][x] = Cell{
			Glyph:     f.glyphs[f.rng.IntN(len(f.glyphs))],
			Intensity: 1,
			Bright:    f.rng.Float64() < f.cfg.Bright,
		}
		if y+1 >= f.height || f.rng.Float64() < f.cfg.Reset {
			f.columns[x] = 0
		} else {
			f.columns[x] = y + 1
		}
	}
}

// Columns returns a copy of the column cursors.
func (f *Field) Columns() []int {
	out := make([]int, len(f.columns))
	copy(out, f.columns)
	return out
}

// Rows returns the grid, top row first. Callers must not modify it.
func (f *Field) Rows() [][]Cell {
	return f.cells
}

// Size returns the viewport the field was laid out for.
func (f *Field) Size() (width, height int) {
	return f.width, f.height
}

// CellWidth is the number of terminal cells each column occupies.
func (f *Field) CellWidth() int {
	return f.glyphWidth
}
