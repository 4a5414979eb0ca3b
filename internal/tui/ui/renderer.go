// Package ui renders transcript entries and portfolio sections.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui/styles"
)

// Renderer turns command output into styled text. Output is rendered on
// demand so that old entries follow width and theme changes.
type Renderer struct {
	Content *content.Content
	Width   int
	Version string
	Prompt  string
	// Timestamps shows the time of each entry next to its command.
	Timestamps bool
	Now        func() time.Time

	markdown      *glamour.TermRenderer
	markdownWidth int
	markdownTheme theme.ID

	// rendered holds finished entries by ID while renderKey is unchanged.
	rendered  map[uuid.UUID]string
	renderKey renderKey
}

// renderKey is everything an entry's rendering depends on besides the
// entry itself.
type renderKey struct {
	width   int
	theme   theme.ID
	content *content.Content
}

// NewRenderer creates a renderer over c.
func NewRenderer(c *content.Content) *Renderer {
	if c == nil {
		c = &content.Content{}
	}
	return &Renderer{
		Content: c,
		Width:   80,
		Prompt:  "guest@termfolio:~$",
		Now:     time.Now,
	}
}

// Transcript renders every entry, or the welcome banner when there are none.
// Entries are rendered once per width, theme and content.
func (r *Renderer) Transcript(entries []shell.Entry) string {
	if len(entries) == 0 {
		return r.Welcome()
	}

	key := renderKey{width: r.width(), theme: styles.Theme, content: r.Content}
	if key != r.renderKey {
		r.rendered = nil
		r.renderKey = key
	}

	// Only entries still in the transcript survive, so /clear empties it.
	rendered := make(map[uuid.UUID]string, len(entries))
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		s, ok := r.rendered[e.ID]
		if !ok || e.ID == uuid.Nil {
			s = r.Entry(e)
		}
		if e.ID != uuid.Nil {
			rendered[e.ID] = s
		}
		parts = append(parts, s)
	}
	r.rendered = rendered
	return strings.Join(parts, "\n\n")
}

// Entry renders the echoed command line followed by its output.
func (r *Renderer) Entry(e shell.Entry) string {
	out := r.Output(e.Output)
	if e.Input == "" {
		return out
	}

	line := r.PromptLine() + " " + styles.CommandEcho.Render(e.Input)
	if r.Timestamps && !e.CreatedAt.IsZero() {
		line += "  " + styles.Timestamp.Render(e.CreatedAt.Format("15:04:05"))
	}
	if out == "" {
		return line
	}
	return line + "\n" + out
}

// PromptLine renders "user@host:~$" in prompt colors.
func (r *Renderer) PromptLine() string {
	user, path, ok := strings.Cut(r.Prompt, ":")
	if !ok {
		return styles.PromptUser.Render(r.Prompt)
	}
	return styles.PromptUser.Render(user) + styles.PromptPath.Render(":"+path)
}

// Output renders one command result.
func (r *Renderer) Output(out shell.Output) string {
	switch out.Kind {
	case shell.OutputSection:
		return r.Section(out.Section)
	case shell.OutputHelp:
		return r.Help()
	case shell.OutputRain:
		return styles.Success.Render("Matrix mode activated.") + " " +
			styles.Secondary.Render("Press Ctrl+C to return to the terminal.")
	case shell.OutputDownload:
		return r.Download(out.Text)
	case shell.OutputUnknown:
		return r.Unknown(out.Input)
	case shell.OutputNotice:
		return styles.Secondary.Render(out.Text)
	default:
		return ""
	}
}

// Section renders a portfolio section.
func (r *Renderer) Section(s shell.Section) string {
	switch s {
	case shell.SectionHome:
		return r.Home()
	case shell.SectionExperience:
		return r.Experience()
	case shell.SectionProjects:
		return r.Projects()
	case shell.SectionSkills:
		return r.Skills()
	case shell.SectionContact:
		return r.Contact()
	}
	return noData(string(s))
}

// Unknown renders the not-found message.
func (r *Renderer) Unknown(input string) string {
	return styles.ErrorText.Render(fmt.Sprintf("command not found: %s", input)) + "\n" +
		styles.Secondary.Render("Type ") + styles.Accent.Render(shell.CmdHelp) +
		styles.Secondary.Render(" to see the available commands.")
}

func noData(what string) string {
	return styles.Warning.Render(fmt.Sprintf("⚠ No %s data available.", what))
}

func (r *Renderer) width() int {
	if r.Width < 20 {
		return 20
	}
	return r.Width
}
