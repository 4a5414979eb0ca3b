package ui

import (
	"strings"

	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/utils"
)

// Projects renders each project with its links and technologies.
func (r *Renderer) Projects() string {
	items := r.Content.Projects
	if len(items) == 0 {
		return noData("projects")
	}

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("Projects"))
	for _, p := range items {
		b.WriteString("\n\n")

		title := styles.Title.Render(p.Title)
		if p.Link != "" {
			title = utils.Hyperlink(p.Link, title)
		}
		b.WriteString(title)
		if p.Featured {
			b.WriteString(styles.Warning.Render(" ★"))
		}
		if p.GitHub != "" {
			b.WriteString("  ")
			b.WriteString(utils.Hyperlink(p.GitHub, styles.Link.Render("[code]")))
		}
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(utils.Wrap(p.Description, r.width())))
		if p.Link != "" {
			b.WriteString("\n")
			b.WriteString(styles.Secondary.Render("↳ ") + utils.Hyperlink(p.Link, styles.Link.Render(p.Link)))
		}
		if len(p.Technologies) > 0 {
			b.WriteString("\n")
			b.WriteString(tags(p.Technologies))
		}
	}
	return b.String()
}
