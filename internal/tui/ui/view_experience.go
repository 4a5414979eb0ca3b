package ui

import (
	"strings"

	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/utils"
)

// Experience renders the work history as a timeline.
func (r *Renderer) Experience() string {
	items := r.Content.Experience
	if len(items) == 0 {
		return noData("experience")
	}

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("Experience"))
	for _, e := range items {
		b.WriteString("\n\n")
		b.WriteString(styles.Accent.Render("● ") + styles.Title.Render(e.Title))
		b.WriteString("  ")
		b.WriteString(styles.Comment.Render(e.Date))
		b.WriteString("\n")
		b.WriteString(indent(styles.Text.Render(utils.Wrap(e.Description, r.width()-2)), 2))
		if len(e.Tags) > 0 {
			b.WriteString("\n  ")
			b.WriteString(tags(e.Tags))
		}
	}
	return b.String()
}

func tags(names []string) string {
	rendered := make([]string, len(names))
	for i, n := range names {
		rendered[i] = styles.Tag.Render(n)
	}
	return strings.Join(rendered, " ")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
