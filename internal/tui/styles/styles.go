// Package styles provides Lip Gloss styles for the TUI. Apply swaps every
// style to another theme's palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/theme"
)

// Theme is the id of the active palette.
var Theme theme.ID

// Base styles
var (
	// App is the base style for the entire application
	App lipgloss.Style

	// Title is the style for section titles
	// NOTE: No margins - they break viewport line counting
	Title lipgloss.Style

	// Subtitle is for secondary headings
	Subtitle lipgloss.Style

	Text      lipgloss.Style
	Secondary lipgloss.Style
	Comment   lipgloss.Style
	Accent    lipgloss.Style
	Link      lipgloss.Style
	Tag       lipgloss.Style
	ErrorText lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
)

// Header and status
var (
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	Timestamp   lipgloss.Style
	Spinner     lipgloss.Style
)

// Sections
var (
	SectionHeader lipgloss.Style
	Card          lipgloss.Style
	RatingFull    lipgloss.Style
	RatingEmpty   lipgloss.Style
	Banner        lipgloss.Style
	CTA           lipgloss.Style
)

// Overlays
var (
	Dialog         lipgloss.Style
	DialogTitle    lipgloss.Style
	PickerItem     lipgloss.Style
	PickerSelected lipgloss.Style
)

func init() {
	Apply(theme.Default)
}

// Apply rebuilds every style from the palette of id.
func Apply(id theme.ID) {
	p := PaletteFor(id)
	Theme = id

	App = lipgloss.NewStyle().Padding(0, 1)
	Title = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	Text = lipgloss.NewStyle().Foreground(p.Foreground)
	Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	Comment = lipgloss.NewStyle().Foreground(p.Comment).Italic(true)
	Accent = lipgloss.NewStyle().Foreground(p.Accent)
	Link = lipgloss.NewStyle().Foreground(p.Link).Underline(true)
	Tag = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Selection).
		Padding(0, 1)
	ErrorText = lipgloss.NewStyle().Foreground(p.Error)
	Warning = lipgloss.NewStyle().Foreground(p.Warning)
	Success = lipgloss.NewStyle().Foreground(p.Success)

	Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border)
	HeaderTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Prompt)
	StatusBar = lipgloss.NewStyle().Foreground(p.Comment)
	StatusKey = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	Timestamp = lipgloss.NewStyle().Foreground(p.Comment)
	Spinner = lipgloss.NewStyle().Foreground(p.Prompt)

	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border)
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	RatingFull = lipgloss.NewStyle().Foreground(p.Prompt)
	RatingEmpty = lipgloss.NewStyle().Foreground(p.Selection)
	Banner = lipgloss.NewStyle().Bold(true).Foreground(p.Prompt)
	CTA = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Background).
		Background(p.Accent).
		Padding(0, 2)

	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)
	DialogTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	PickerItem = lipgloss.NewStyle().Foreground(p.Foreground).PaddingLeft(2)
	PickerSelected = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Selection).
		Bold(true).
		PaddingLeft(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(p.Accent)

	applyCommand(p)
	applyRain(p)
}

// Swatch renders a small block in color.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}
