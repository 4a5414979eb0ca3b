package ui

import (
	"strings"

	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/utils"
)

// Help lists the commands. The commands collection adds aliases and hints;
// without it the built-in suggestion index is used.
func (r *Renderer) Help() string {
	cmds := r.Content.Commands
	if len(cmds) == 0 {
		for _, s := range shell.DefaultSuggestions() {
			cmds = append(cmds, content.Command{Command: s.Command, Description: s.Description})
		}
	}

	width := 0
	for _, c := range cmds {
		width = max(width, len(c.Command))
	}

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("Available commands"))
	for _, c := range cmds {
		b.WriteString("\n  ")
		b.WriteString(styles.Accent.Render(utils.PadRight(c.Command, width)))
		b.WriteString("  ")
		b.WriteString(styles.Text.Render(truncateString(c.Description, r.width()-width-4)))
		if c.Hint != "" {
			b.WriteString(" ")
			b.WriteString(styles.Comment.Render("(" + c.Hint + ")"))
		}
		if len(c.Aliases) > 0 {
			b.WriteString(" ")
			b.WriteString(styles.Secondary.Render("aka " + strings.Join(c.Aliases, ", ")))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Comment.Render("# Tip: ↑/↓ browse your command history, Tab completes, Ctrl+T changes the theme."))
	return b.String()
}
