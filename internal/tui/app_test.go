package tui

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/download"
	"github.com/hy4ri/termfolio/internal/prefs"
	"github.com/hy4ri/termfolio/internal/rain"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/ui"
)

func newTestApp(t *testing.T, delay shell.Delay) (*App, *rain.ManualClock) {
	t.Helper()

	c, err := content.Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	d := shell.NewDispatcher(shell.DispatcherConfig{ResumeURL: "https://example.com/cv.pdf", Aliases: c.Aliases()})
	clock := rain.NewManualClock(time.Time{}, 50*time.Millisecond)

	a := NewApp(Options{
		Session:   shell.NewSession(d, shell.WithDelay(delay)),
		Themes:    theme.NewStore(prefs.NewMemory(), nil),
		Renderer:  ui.NewRenderer(c),
		Rain:      rain.NewField(rain.Config{Charset: "01", Reset: 0, Fade: 0.5}, rand.New(rand.NewPCG(1, 2))),
		Scheduler: clock,
	})
	t.Cleanup(func() {
		a.Close()
		styles.Apply(theme.Default)
	})

	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a, clock
}

func typeText(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(a *App, k tea.KeyType) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: k})
	return cmd
}

// run submits s and drives the command to completion, returning the
// follow-up command produced by its effect.
func run(t *testing.T, a *App, s string) tea.Cmd {
	t.Helper()
	typeText(a, s)
	cmd := press(a, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("submitting %q produced no command", s)
	}
	if _, ok := cmd().(commandReadyMsg); !ok {
		t.Fatalf("expected commandReadyMsg for %q", s)
	}
	_, next := a.Update(commandReadyMsg{})
	return next
}

func lastEntry(t *testing.T, a *App) shell.Entry {
	t.Helper()
	entries := a.session.Transcript.Entries()
	if len(entries) == 0 {
		t.Fatal("transcript is empty")
	}
	return entries[len(entries)-1]
}

func TestApp_ViewShowsWelcome(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})

	view := a.View()
	if !strings.Contains(view, "termfolio") {
		t.Error("view should show the header")
	}
	if !strings.Contains(view, "/help") {
		t.Error("view should show the welcome hint")
	}
}

func TestApp_TypingOpensSuggestions(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})

	typeText(a, "/he")
	if _, ok := a.ctrl.Mode().(shell.SuggestionsOpen); !ok {
		t.Fatalf("expected suggestions to be open, got %T", a.ctrl.Mode())
	}
	if !strings.Contains(a.View(), "Show help") {
		t.Error("popup should list /help with its description")
	}

	press(a, tea.KeyEsc)
	if a.suggestions.Visible() {
		t.Error("Escape should hide the popup")
	}

	press(a, tea.KeyTab)
	if a.input.Value() != "/help" {
		t.Errorf("Tab should still complete to /help, got %q", a.input.Value())
	}
}

func TestApp_SubmitAppendsEntry(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})

	if cmd := run(t, a, "/skills"); cmd != nil {
		t.Error("/skills should have no follow-up effect")
	}

	e := lastEntry(t, a)
	if e.Input != "/skills" || e.Output.Section != shell.SectionSkills {
		t.Errorf("unexpected entry %+v", e)
	}
	if a.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", a.input.Value())
	}
}

func TestApp_BlankSubmitIgnored(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})

	typeText(a, "   ")
	if cmd := press(a, tea.KeyEnter); cmd != nil {
		t.Error("blank input should not start a command")
	}
	if a.session.Transcript.Len() != 0 || a.session.History.Len() != 0 {
		t.Error("blank input must not touch transcript or history")
	}
}

func TestApp_InputDisabledWhileBusy(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{Min: time.Second, Max: time.Second})

	typeText(a, "/home")
	if cmd := press(a, tea.KeyEnter); cmd == nil {
		t.Fatal("expected a delayed command")
	}
	if !a.loading || !a.ctrl.Disabled() {
		t.Fatal("app should be busy while the command is pending")
	}
	if !strings.Contains(a.View(), "processing") {
		t.Error("view should show the loader")
	}

	typeText(a, "/help")
	if cmd := press(a, tea.KeyEnter); cmd != nil {
		t.Error("a second command must not start while one is in flight")
	}
	if a.input.Value() != "" {
		t.Errorf("typing should be ignored while busy, got %q", a.input.Value())
	}

	a.Update(commandReadyMsg{})
	if a.loading || a.ctrl.Disabled() {
		t.Error("app should accept input again")
	}
	if a.session.Transcript.Len() != 1 {
		t.Errorf("expected one entry, got %d", a.session.Transcript.Len())
	}
}

func TestApp_HistoryNavigation(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	run(t, a, "/home")
	run(t, a, "/skills")

	typeText(a, "draft")
	press(a, tea.KeyUp)
	if a.input.Value() != "/skills" {
		t.Errorf("Up should recall /skills, got %q", a.input.Value())
	}
	press(a, tea.KeyUp)
	if a.input.Value() != "/home" {
		t.Errorf("Up should recall /home, got %q", a.input.Value())
	}
	press(a, tea.KeyDown)
	press(a, tea.KeyDown)
	if a.input.Value() != "draft" {
		t.Errorf("Down past the newest entry should restore the draft, got %q", a.input.Value())
	}
}

func TestApp_Clear(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	run(t, a, "/home")
	run(t, a, "/clear")

	if a.session.Transcript.Len() != 0 {
		t.Errorf("transcript should be empty, got %d entries", a.session.Transcript.Len())
	}
}

func TestApp_RainLifecycle(t *testing.T) {
	a, clock := newTestApp(t, shell.Delay{})

	wait := run(t, a, "/rain")
	if !a.field.Active() || !clock.Running() {
		t.Fatal("/rain should activate the field and start the scheduler")
	}
	if wait == nil {
		t.Fatal("expected a frame waiter")
	}
	if got := len(a.field.Columns()); got != 80 {
		t.Errorf("expected 80 columns, got %d", got)
	}

	clock.Tick(1)
	msg := wait()
	if _, ok := msg.(rainFrameMsg); !ok {
		t.Fatalf("expected rainFrameMsg, got %T", msg)
	}
	a.Update(msg)
	for x, y := range a.field.Columns() {
		if y != 1 {
			t.Fatalf("column %d at row %d after one frame", x, y)
		}
	}

	typeText(a, "x")
	if a.input.Value() != "" {
		t.Error("keys other than Ctrl+C are ignored during rain")
	}

	if cmd := press(a, tea.KeyCtrlC); cmd != nil {
		t.Error("Ctrl+C during rain should not quit")
	}
	if a.field.Active() || clock.Running() {
		t.Error("Ctrl+C should stop the rain")
	}
	e := lastEntry(t, a)
	if e.Input != "" || e.Output.Text != noticeRainStopped {
		t.Errorf("expected a deactivation notice, got %+v", e)
	}

	cmd := press(a, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatal("Ctrl+C without rain should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_RainFollowsResize(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	run(t, a, "/rain")

	a.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if got := len(a.field.Columns()); got != 30 {
		t.Errorf("expected 30 columns after resize, got %d", got)
	}
	want := 10 - a.headerHeight() - footerHeight
	if _, h := a.field.Size(); h != want {
		t.Errorf("field height = %d, want %d", h, want)
	}
}

func TestApp_ThemePicker(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	var sent []tea.Msg
	a.SetSender(func(m tea.Msg) { sent = append(sent, m) })

	press(a, tea.KeyCtrlT)
	if !a.picker.IsOpen() {
		t.Fatal("Ctrl+T should open the picker")
	}
	if !strings.Contains(a.View(), "GitHub") {
		t.Error("picker should list the themes")
	}

	press(a, tea.KeyDown)
	cmd := press(a, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("Enter should choose a theme")
	}
	_, setCmd := a.Update(cmd())
	if setCmd == nil {
		t.Fatal("expected a command persisting the theme")
	}
	setCmd()

	if a.themes.Get() != theme.Light {
		t.Errorf("theme = %s, want %s", a.themes.Get(), theme.Light)
	}
	if len(sent) != 1 {
		t.Fatalf("expected one change notification, got %d", len(sent))
	}
	a.Update(sent[0])
	if styles.Theme != theme.Light {
		t.Errorf("styles should follow the theme, got %s", styles.Theme)
	}
}

func TestApp_NextThemeKey(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if cmd == nil {
		t.Fatal("Ctrl+N should switch the theme")
	}
	cmd()
	if a.themes.Get() != theme.Light {
		t.Errorf("theme = %s, want %s", a.themes.Get(), theme.Light)
	}
	if a.picker.IsOpen() {
		t.Error("cycling should not open the picker")
	}
}

func TestApp_MouseChoosesSuggestion(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	typeText(a, "/")

	row := -1
	for i, line := range strings.Split(a.View(), "\n") {
		if strings.Contains(line, shell.CmdExperience) {
			row = i
		}
	}
	if row < 0 {
		t.Fatalf("%s is not drawn", shell.CmdExperience)
	}

	a.Update(tea.MouseMsg{X: 3, Y: row, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.input.Value() != shell.CmdExperience {
		t.Errorf("clicking the second item should choose %s, got %q", shell.CmdExperience, a.input.Value())
	}

	a.ctrl.SetText("/")
	a.syncInput()
	a.Update(tea.MouseMsg{X: 3, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.suggestions.Visible() {
		t.Error("clicking outside should close the popup")
	}
}

func TestApp_ViewFillsWindow(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})

	sizes := []struct{ w, h int }{{80, 24}, {100, 40}, {60, 12}}
	for _, sz := range sizes {
		a.Update(tea.WindowSizeMsg{Width: sz.w, Height: sz.h})
		view := a.View()
		if got := lipgloss.Height(view); got != sz.h {
			t.Errorf("%dx%d: view has %d lines", sz.w, sz.h, got)
		}
		if first := strings.Split(view, "\n")[0]; !strings.Contains(first, "termfolio") {
			t.Errorf("%dx%d: first line should carry the title, got %q", sz.w, sz.h, first)
		}
	}

	typeText(a, "/")
	if got := lipgloss.Height(a.View()); got != 12 {
		t.Errorf("view with suggestions has %d lines, want 12", got)
	}
}

func TestApp_BlurClosesSuggestions(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	typeText(a, "/h")

	_, cmd := a.Update(tea.BlurMsg{})
	if cmd == nil {
		t.Fatal("blur should schedule a timeout")
	}
	if !a.suggestions.Visible() {
		t.Error("popup should survive until the timeout")
	}

	a.Update(blurTimeoutMsg{seq: a.blurSeq})
	if a.suggestions.Visible() {
		t.Error("popup should close after the timeout")
	}

	a.Update(tea.FocusMsg{})
	if !a.suggestions.Visible() {
		t.Error("focus should reopen the popup")
	}
}

func TestApp_StaleBlurTimeoutIgnored(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	typeText(a, "/h")

	a.Update(tea.BlurMsg{})
	stale := a.blurSeq
	a.Update(tea.FocusMsg{})
	a.Update(blurTimeoutMsg{seq: stale})
	if !a.suggestions.Visible() {
		t.Error("a timeout from an earlier blur must not close the popup")
	}
}

func TestApp_ContentReload(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})

	reloaded := &content.Content{Commands: []content.Command{{Command: shell.CmdSkills, Aliases: []string{"/s"}}}}
	a.Update(Reload(reloaded, nil))
	if a.renderer.Content != reloaded {
		t.Fatal("renderer should use the reloaded content")
	}

	run(t, a, "/s")
	if e := lastEntry(t, a); e.Output.Section != shell.SectionSkills {
		t.Errorf("alias from reloaded content not applied: %+v", e.Output)
	}

	a.Update(Reload(nil, content.ErrInvalid))
	if a.renderer.Content != reloaded {
		t.Error("a failed reload must keep the previous content")
	}
}

func TestApp_Download(t *testing.T) {
	a, _ := newTestApp(t, shell.Delay{})
	dir := t.TempDir()
	a.downloader = download.New(download.Options{Name: "cv.pdf", Dir: dir}, nil)

	cmd := run(t, a, "/cv")
	if cmd == nil {
		t.Fatal("/cv should start a download")
	}
	a.Update(cmd())

	e := lastEntry(t, a)
	if e.Output.Kind != shell.OutputNotice || !strings.Contains(e.Output.Text, filepath.Join(dir, "cv.pdf")) {
		t.Errorf("expected a saved notice, got %+v", e.Output)
	}
}
