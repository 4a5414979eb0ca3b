package styles

import "github.com/charmbracelet/lipgloss"

var (
	// PromptUser is the "user@host" part of the prompt.
	PromptUser lipgloss.Style

	// PromptPath is the ":~$" part of the prompt.
	PromptPath lipgloss.Style

	// CommandInput is the style for the typed command.
	CommandInput lipgloss.Style

	// CommandEcho is a submitted command shown in the transcript.
	CommandEcho lipgloss.Style

	// CommandSuggestion is the style for autocomplete suggestions.
	CommandSuggestion lipgloss.Style

	// CommandSuggestionSelected is the style for the selected autocomplete suggestion.
	CommandSuggestionSelected lipgloss.Style

	// SuggestionDescription is the description column of the popup.
	SuggestionDescription lipgloss.Style

	// SuggestionBox frames the suggestion popup.
	SuggestionBox lipgloss.Style
)

func applyCommand(p Palette) {
	PromptUser = lipgloss.NewStyle().Foreground(p.Prompt).Bold(true)
	PromptPath = lipgloss.NewStyle().Foreground(p.Accent)
	CommandInput = lipgloss.NewStyle().Foreground(p.Foreground)
	CommandEcho = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	CommandSuggestion = lipgloss.NewStyle().Foreground(p.Accent).PaddingLeft(1)
	CommandSuggestionSelected = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Selection).
		Bold(true).
		PaddingLeft(1)
	SuggestionDescription = lipgloss.NewStyle().Foreground(p.Comment)
	SuggestionBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border)
}
