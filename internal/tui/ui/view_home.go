package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui/styles"
)

// Home renders the "home" general entry.
func (r *Renderer) Home() string {
	entry, ok := r.Content.Entry(content.KeyHome)
	if !ok {
		return noData("home")
	}

	var b strings.Builder
	if entry.Title != "" {
		b.WriteString(styles.PromptUser.Render("$ ") + styles.Accent.Render("echo ") + styles.Text.Render(`"`+entry.Title+`"`))
		b.WriteString("\n")
		b.WriteString(styles.Title.Render(entry.Title))
		b.WriteString("\n")
	}
	b.WriteString(r.Markdown(entry.Content))
	return strings.TrimRight(b.String(), "\n")
}

// Markdown renders md with glamour, falling back to plain text.
func (r *Renderer) Markdown(md string) string {
	w := r.width()
	if r.markdown == nil || r.markdownWidth != w || r.markdownTheme != styles.Theme {
		style := "dark"
		if styles.Theme == theme.Light {
			style = "light"
		}
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			return styles.Text.Render(md)
		}
		r.markdown = tr
		r.markdownWidth = w
		r.markdownTheme = styles.Theme
	}

	out, err := r.markdown.Render(md)
	if err != nil {
		return styles.Text.Render(md)
	}
	return strings.Trim(out, "\n")
}
