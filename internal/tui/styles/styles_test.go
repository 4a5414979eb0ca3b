package styles

import (
	"testing"

	"github.com/hy4ri/termfolio/internal/theme"
)

func TestEveryThemeHasPalette(t *testing.T) {
	for _, info := range theme.All() {
		if _, ok := palettes[info.ID]; !ok {
			t.Errorf("theme %s has no palette", info.ID)
		}
	}
}

func TestPaletteFor_UnknownFallsBack(t *testing.T) {
	if got := PaletteFor("neon"); got != palettes[theme.Default] {
		t.Errorf("expected default palette, got %+v", got)
	}
}

func TestApply(t *testing.T) {
	defer Apply(theme.Default)

	Apply(theme.Ayu)
	if Theme != theme.Ayu {
		t.Fatalf("Apply did not switch palette: %s", Theme)
	}
	if got := Title.GetForeground(); got != palettes[theme.Ayu].Accent {
		t.Errorf("Title foreground = %v, want %v", got, palettes[theme.Ayu].Accent)
	}
}

func TestRainStyle_Levels(t *testing.T) {
	Apply(theme.OneDark)

	if RainStyle(1, false).GetForeground() != rainShades[rainLevels-1].GetForeground() {
		t.Error("full intensity should use the strongest shade")
	}
	if RainStyle(0, false).GetForeground() != rainShades[0].GetForeground() {
		t.Error("zero intensity should clamp to the faintest shade")
	}
	if RainStyle(0.5, true).GetForeground() != PaletteFor(theme.OneDark).RainBright {
		t.Error("bright glyphs use the bright color")
	}
	if rainShades[0].GetForeground() == rainShades[rainLevels-1].GetForeground() {
		t.Error("shades should differ across the gradient")
	}
}
