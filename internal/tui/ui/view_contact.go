package ui

import (
	"strings"

	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/utils"
)

const (
	defaultCTAMessage = "Want to work together on a project?"
	defaultCTAButton  = "Send a message"
)

// Contact renders the contact links and a call to action.
func (r *Renderer) Contact() string {
	items := r.Content.Contact
	if len(items) == 0 {
		return noData("contact")
	}

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("Contact"))
	b.WriteString("\n")

	titleWidth := 0
	for _, c := range items {
		titleWidth = max(titleWidth, len([]rune(c.Title)))
	}
	for _, c := range items {
		b.WriteString("\n")
		icon := c.Icon
		if icon == "" {
			icon = "›"
		}
		b.WriteString(styles.Accent.Render(utils.PadRight(icon, 2)) + " ")
		b.WriteString(styles.Subtitle.Render(utils.PadRight(c.Title, titleWidth)))
		b.WriteString("  ")
		b.WriteString(utils.Hyperlink(c.Link, styles.Link.Render(c.Content)))
	}

	message, button, email := defaultCTAMessage, defaultCTAButton, ""
	if cta, ok := r.Content.Entry(content.KeyContactCTA); ok {
		message = cta.Content
		if v := cta.MetaString("button"); v != "" {
			button = v
		}
		email = cta.MetaString("email")
	}
	if email == "" {
		for _, c := range items {
			if strings.HasPrefix(c.Link, "mailto:") {
				email = strings.TrimPrefix(c.Link, "mailto:")
				break
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(message))
	b.WriteString("\n")
	btn := styles.CTA.Render(button)
	if email != "" {
		btn = utils.Hyperlink("mailto:"+email, btn)
	}
	b.WriteString(btn)
	return b.String()
}
