package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui/styles"
)

// ThemePickerModel is the overlay listing the available themes.
type ThemePickerModel struct {
	themes  []theme.Info
	cursor  int
	current theme.ID
	open    bool
	width   int
	height  int
}

// NewThemePicker creates a closed picker.
func NewThemePicker() *ThemePickerModel {
	return &ThemePickerModel{themes: theme.All()}
}

// Open shows the picker with the cursor on current.
func (p *ThemePickerModel) Open(current theme.ID) {
	p.open = true
	p.current = current
	p.cursor = 0
	for i, t := range p.themes {
		if t.ID == current {
			p.cursor = i
		}
	}
}

// Close hides the picker.
func (p *ThemePickerModel) Close() {
	p.open = false
}

// IsOpen reports whether the picker is visible.
func (p *ThemePickerModel) IsOpen() bool {
	return p.open
}

// Init implements Component.
func (p *ThemePickerModel) Init() tea.Cmd {
	return nil
}

// SetSize implements Component.
func (p *ThemePickerModel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update implements Component.
func (p *ThemePickerModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !p.open {
		return p, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "up", "k", "shift+tab":
		p.cursor = (p.cursor - 1 + len(p.themes)) % len(p.themes)
	case "down", "j", "tab":
		p.cursor = (p.cursor + 1) % len(p.themes)
	case "enter", " ":
		id := p.themes[p.cursor].ID
		p.open = false
		return p, func() tea.Msg { return ThemeChosenMsg{ID: id} }
	case "esc", "q", "ctrl+t":
		p.open = false
		return p, func() tea.Msg { return PickerClosedMsg{} }
	}
	return p, nil
}

// View implements Component.
func (p *ThemePickerModel) View() string {
	if !p.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Theme"))
	b.WriteString("\n\n")
	for i, t := range p.themes {
		mark := "  "
		if t.ID == p.current {
			mark = "✓ "
		}
		line := styles.Swatch(t.Swatch) + " " + mark + t.Name
		if i == p.cursor {
			b.WriteString(styles.PickerSelected.Render(line))
		} else {
			b.WriteString(styles.PickerItem.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.StatusBar.Render("↑/↓ move • enter apply • esc close"))
	return styles.Dialog.Render(b.String())
}
