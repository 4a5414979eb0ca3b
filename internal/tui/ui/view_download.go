package ui

import (
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/utils"
)

// Download renders the /cv message with its fallback link.
func (r *Renderer) Download(url string) string {
	msg := styles.Success.Render("Downloading CV...")
	if url == "" {
		return msg
	}
	return msg + "\n" +
		styles.Secondary.Render("If the download does not start, open ") +
		utils.Hyperlink(url, styles.Link.Render(url))
}
