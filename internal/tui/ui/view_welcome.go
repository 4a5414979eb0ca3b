package ui

import (
	"strings"

	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/tui/styles"
)

const banner = ` _                       __       _ _
| |_ ___ _ __ _ __ ___  / _| ___ | (_) ___
| __/ _ \ '__| '_ ` + "`" + ` _ \| |_ / _ \| | |/ _ \
| ||  __/ |  | | | | | |  _| (_) | | | (_) |
 \__\___|_|  |_| |_| |_|_|  \___/|_|_|\___/`

const (
	defaultWelcomeTitle = "Welcome to my interactive portfolio"
	defaultWelcomeHint  = "Type /help to see the available commands, or start with /home."
)

// Welcome renders the banner shown while the transcript is empty.
func (r *Renderer) Welcome() string {
	title, hint := defaultWelcomeTitle, defaultWelcomeHint
	if e, ok := r.Content.Entry(content.KeyWelcome); ok {
		if e.Title != "" {
			title = e.Title
		}
		hint = e.Content
	}

	var b strings.Builder
	if r.width() >= 50 {
		b.WriteString(styles.Banner.Render(banner))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(highlightCommands(hint))

	var meta []string
	if r.Version != "" {
		meta = append(meta, "v"+r.Version)
	}
	if r.Now != nil {
		meta = append(meta, r.Now().Format("Mon Jan 2 2006"))
	}
	if len(meta) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Comment.Render(strings.Join(meta, " · ")))
	}
	return b.String()
}

// highlightCommands colors every slash-command word in text.
func highlightCommands(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		trimmed := strings.TrimRight(w, ".,;:!?")
		if strings.HasPrefix(trimmed, shell.Marker) && len(trimmed) > 1 {
			words[i] = styles.Accent.Render(trimmed) + styles.Text.Render(w[len(trimmed):])
		} else {
			words[i] = styles.Text.Render(w)
		}
	}
	return strings.Join(words, " ")
}
