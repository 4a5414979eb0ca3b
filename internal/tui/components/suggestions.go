package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/utils"
)

// SuggestionsModel renders the autocomplete popup above the prompt.
type SuggestionsModel struct {
	items    []shell.Suggestion
	selected int
	width    int
}

// NewSuggestions creates an empty popup.
func NewSuggestions() *SuggestionsModel {
	return &SuggestionsModel{}
}

// Init implements Component.
func (s *SuggestionsModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Selection is owned by the input controller,
// so the popup only renders.
func (s *SuggestionsModel) Update(tea.Msg) (Component, tea.Cmd) {
	return s, nil
}

// SetSize implements Component.
func (s *SuggestionsModel) SetSize(width, _ int) {
	s.width = width
}

// SetItems replaces the visible list.
func (s *SuggestionsModel) SetItems(items []shell.Suggestion, selected int) {
	s.items = items
	s.selected = selected
}

// Visible reports whether there is anything to draw.
func (s *SuggestionsModel) Visible() bool {
	return len(s.items) > 0
}

// Height is the number of lines View produces.
func (s *SuggestionsModel) Height() int {
	if !s.Visible() {
		return 0
	}
	return len(s.items) + 2
}

// ItemAt maps a line of the popup (0 = top border) to an item index.
func (s *SuggestionsModel) ItemAt(line int) (int, bool) {
	i := line - 1
	if !s.Visible() || i < 0 || i >= len(s.items) {
		return 0, false
	}
	return i, true
}

// View implements Component.
func (s *SuggestionsModel) View() string {
	if !s.Visible() {
		return ""
	}

	cmdWidth := 0
	for _, it := range s.items {
		cmdWidth = max(cmdWidth, lipgloss.Width(it.Command))
	}
	inner := s.width - 2
	if inner < cmdWidth+4 {
		inner = cmdWidth + 4
	}

	var b strings.Builder
	for i, it := range s.items {
		line := utils.PadRight(it.Command, cmdWidth)
		if room := inner - 1 - cmdWidth - 2; room > 0 {
			line += "  " + styles.SuggestionDescription.Render(utils.TruncateString(it.Description, room))
		}
		style := styles.CommandSuggestion
		if i == s.selected {
			style = styles.CommandSuggestionSelected
		}
		b.WriteString(style.Width(inner).Render(line))
		if i < len(s.items)-1 {
			b.WriteString("\n")
		}
	}
	return styles.SuggestionBox.Render(b.String())
}
