// Package shell implements the command line behind the portfolio terminal:
// suggestion filtering, command history, the input controller, the command
// dispatcher and the transcript of executed commands.
//
// Nothing in this package knows about Bubble Tea or lipgloss. The tui and
// plain packages translate their own input events into calls on these types.
package shell

import "strings"

// Marker is the leading character that identifies command input.
const Marker = "/"

// Command names understood by the dispatcher.
const (
	CmdHome       = "/home"
	CmdExperience = "/experience"
	CmdProjects   = "/projects"
	CmdSkills     = "/skills"
	CmdContact    = "/contact"
	CmdCV         = "/cv"
	CmdRain       = "/rain"
	CmdHelp       = "/help"
	CmdClear      = "/clear"
)

// Suggestion is a command offered for autocomplete while typing.
type Suggestion struct {
	Command     string
	Description string
}

// defaultSuggestions is ordered; the order is the display and fallback order.
var defaultSuggestions = []Suggestion{
	{Command: CmdHome, Description: "Go to the home page"},
	{Command: CmdExperience, Description: "Show work experience"},
	{Command: CmdProjects, Description: "Show featured projects"},
	{Command: CmdSkills, Description: "Show technical skills"},
	{Command: CmdContact, Description: "Contact information"},
	{Command: CmdCV, Description: "Download my CV"},
	{Command: CmdRain, Description: "Feel like a hacker"},
	{Command: CmdHelp, Description: "Show help"},
	{Command: CmdClear, Description: "Clear the terminal"},
}

// DefaultSuggestions returns a copy of the built-in suggestion index.
func DefaultSuggestions() []Suggestion {
	out := make([]Suggestion, len(defaultSuggestions))
	copy(out, defaultSuggestions)
	return out
}

// Filter returns the suggestions whose command starts with the typed prefix.
// Input that does not start with the marker, or is blank, yields nil.
// Matching is case-insensitive on the input and keeps index order.
func Filter(input string, index []Suggestion) []Suggestion {
	if !strings.HasPrefix(input, Marker) || strings.TrimSpace(input) == "" {
		return nil
	}

	prefix := strings.ToLower(strings.TrimPrefix(input, Marker))

	var matches []Suggestion
	for _, s := range index {
		if strings.HasPrefix(strings.TrimPrefix(s.Command, Marker), prefix) {
			matches = append(matches, s)
		}
	}
	return matches
}
