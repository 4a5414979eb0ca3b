package utils

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 6, "hello…"},
		{"tiny", "hello", 1, "…"},
		{"wide runes", "アイウエオ", 5, "アイ…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.in, tt.width); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestHyperlink(t *testing.T) {
	if got := Hyperlink("", "plain"); got != "plain" {
		t.Errorf("empty url should return text, got %q", got)
	}
	got := Hyperlink("https://example.com", "site")
	if !strings.Contains(got, "https://example.com") || !strings.Contains(got, "site") {
		t.Errorf("unexpected hyperlink %q", got)
	}
}

func TestWrap(t *testing.T) {
	out := Wrap("one two three four five six", 10)
	for _, line := range strings.Split(out, "\n") {
		if lipgloss.Width(line) > 10 {
			t.Errorf("line %q wider than 10", line)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  int
	}{
		{"short", "/cv", 6, 6},
		{"exact", "/skills", 7, 7},
		{"longer", "/experience", 4, 11},
		{"wide runes", "アイ", 6, 6},
		{"styled", lipgloss.NewStyle().Bold(true).Render("/help"), 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lipgloss.Width(PadRight(tt.in, tt.width)); got != tt.want {
				t.Errorf("PadRight(%q, %d) width = %d, want %d", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
