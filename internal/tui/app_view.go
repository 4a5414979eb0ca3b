package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui/components"
	"github.com/hy4ri/termfolio/internal/tui/styles"
)

// Rows below the body: loader, prompt and status bar.
const footerHeight = 3

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()

	var body string
	if a.field.Active() {
		body = components.RenderRain(a.field)
	} else {
		body = a.transcript.View()
		body = overlayBottom(body, a.suggestions.View(), a.bodyHeight())
	}
	body = lipgloss.Place(a.width, a.bodyHeight(), lipgloss.Left, lipgloss.Top, body)

	if a.picker.IsOpen() {
		body = overlayCenter(body, a.picker.View(), a.width)
	}

	loader := ""
	if a.loading {
		loader = a.spinner.View() + " " + styles.Secondary.Render("processing...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		loader,
		a.renderPrompt(),
		a.renderStatusBar(),
	)
}

// layout sizes the components after a resize.
func (a *App) layout() {
	a.transcript.Width = a.width
	a.transcript.Height = a.bodyHeight()
	a.renderer.Width = a.width - 1
	a.suggestions.SetSize(min(a.width, 60), 0)
	a.picker.SetSize(a.width, a.bodyHeight())
	a.input.Width = max(a.width-lipgloss.Width(a.renderer.PromptLine())-2, 10)
	if a.field.Active() {
		a.field.Resize(a.width, a.bodyHeight())
	}
	a.refresh()
}

// headerHeight includes the header's bottom border.
func (a *App) headerHeight() int {
	return lipgloss.Height(a.renderHeader())
}

func (a *App) bodyHeight() int {
	return max(a.height-a.headerHeight()-footerHeight, 1)
}

// popupTop is the screen row of the suggestion popup's top border. The
// popup sits on the last rows of the body, below the header.
func (a *App) popupTop() int {
	return a.headerHeight() + a.bodyHeight() - a.suggestions.Height()
}

func (a *App) renderHeader() string {
	title := styles.HeaderTitle.Render("termfolio")
	right := ""
	if a.themes != nil {
		if info, ok := theme.Lookup(a.themes.Get()); ok {
			right = styles.Swatch(info.Swatch) + " " + styles.Secondary.Render(info.Name)
		}
	}
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if gap < 1 {
		return styles.Header.Width(a.width).Render(title)
	}
	return styles.Header.Width(a.width).Render(title + strings.Repeat(" ", gap) + right)
}

func (a *App) renderPrompt() string {
	return a.renderer.PromptLine() + " " + styles.CommandInput.Render(a.input.View())
}

func (a *App) renderStatusBar() string {
	if a.field.Active() {
		return styles.StatusBar.Render(styles.StatusKey.Render("ctrl+c") + " stop")
	}
	var parts []string
	for _, item := range a.keymap.HelpItems() {
		parts = append(parts, styles.StatusKey.Render(item[0])+" "+item[1])
	}
	return styles.StatusBar.Render(strings.Join(parts, " • "))
}

// overlayBottom draws top over the last lines of base, which is padded to
// height lines first.
func overlayBottom(base, top string, height int) string {
	if top == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	topLines := strings.Split(top, "\n")
	start := max(len(baseLines)-len(topLines), 0)
	for i := 0; i < len(topLines) && start+i < len(baseLines); i++ {
		baseLines[start+i] = topLines[i]
	}
	return strings.Join(baseLines, "\n")
}

// overlayCenter draws top centered over base.
func overlayCenter(base, top string, width int) string {
	topLines := strings.Split(top, "\n")
	leftPad := max((width-lipgloss.Width(top))/2, 0)

	baseLines := strings.Split(base, "\n")
	startLine := max((len(baseLines)-len(topLines))/2, 0)
	for i := 0; i < len(topLines) && startLine+i < len(baseLines); i++ {
		baseLines[startLine+i] = strings.Repeat(" ", leftPad) + topLines[i]
	}
	return strings.Join(baseLines, "\n")
}
