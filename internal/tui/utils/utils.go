// Package utils provides shared utility functions for the TUI.
package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// TruncateString truncates a plain string to a given width and adds an
// ellipsis if truncated.
func TruncateString(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	if width <= 1 {
		return "…"
	}

	res := s
	for lipgloss.Width(res+"…") > width && len(res) > 0 {
		_, size := utf8.DecodeLastRuneInString(res)
		res = res[:len(res)-size]
	}
	return res + "…"
}

// PadRight pads s with spaces to width cells. Styled text is measured
// without its escape sequences.
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Hyperlink wraps text in an OSC 8 link. Terminals without support show
// the text alone.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return termenv.Hyperlink(url, text)
}

// Wrap soft-wraps plain text to width.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
