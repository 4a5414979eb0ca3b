package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/theme"
)

// Palette is the set of colors a theme defines.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Secondary  lipgloss.Color
	Comment    lipgloss.Color
	Prompt     lipgloss.Color
	Accent     lipgloss.Color
	Link       lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color
	Selection  lipgloss.Color
	Border     lipgloss.Color

	// Rain is the trail color; RainBright is used for highlighted glyphs.
	Rain       lipgloss.Color
	RainBright lipgloss.Color
}

var palettes = map[theme.ID]Palette{
	theme.OneDark: {
		Background: "#282c34",
		Foreground: "#abb2bf",
		Secondary:  "#828997",
		Comment:    "#5c6370",
		Prompt:     "#98c379",
		Accent:     "#61afef",
		Link:       "#56b6c2",
		Error:      "#e06c75",
		Warning:    "#e5c07b",
		Success:    "#98c379",
		Selection:  "#3e4451",
		Border:     "#4b5263",
		Rain:       "#00ff41",
		RainBright: "#e6ffe9",
	},
	theme.Light: {
		Background: "#fafafa",
		Foreground: "#383a42",
		Secondary:  "#696c77",
		Comment:    "#a0a1a7",
		Prompt:     "#50a14f",
		Accent:     "#c18401",
		Link:       "#0184bc",
		Error:      "#e45649",
		Warning:    "#986801",
		Success:    "#50a14f",
		Selection:  "#e5e5e6",
		Border:     "#d3d3d4",
		Rain:       "#0a7d29",
		RainBright: "#000000",
	},
	theme.Ayu: {
		Background: "#0f1419",
		Foreground: "#bfbdb6",
		Secondary:  "#8a8986",
		Comment:    "#5c6773",
		Prompt:     "#aad94c",
		Accent:     "#ffb454",
		Link:       "#59c2ff",
		Error:      "#f07178",
		Warning:    "#e6b450",
		Success:    "#aad94c",
		Selection:  "#273747",
		Border:     "#2d3640",
		Rain:       "#aad94c",
		RainBright: "#ffffff",
	},
	theme.GithubDark: {
		Background: "#0d1117",
		Foreground: "#c9d1d9",
		Secondary:  "#8b949e",
		Comment:    "#6e7681",
		Prompt:     "#3fb950",
		Accent:     "#58a6ff",
		Link:       "#79c0ff",
		Error:      "#f85149",
		Warning:    "#d29922",
		Success:    "#3fb950",
		Selection:  "#161b22",
		Border:     "#30363d",
		Rain:       "#3fb950",
		RainBright: "#f0f6fc",
	},
}

// PaletteFor returns the palette of id, or the default theme's palette.
func PaletteFor(id theme.ID) Palette {
	if p, ok := palettes[id]; ok {
		return p
	}
	return palettes[theme.Default]
}
