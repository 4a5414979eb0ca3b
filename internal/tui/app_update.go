package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui/components"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"go.uber.org/zap"
)

// Notices appended to the transcript.
const (
	noticeRainStopped = "Matrix mode deactivated."
	noticeLinkCopied  = "The download link was copied to the clipboard."
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case tea.FocusMsg:
		a.focused = true
		a.blurSeq++
		a.ctrl.Focus()
		a.syncSuggestions()
		return a, nil

	case tea.BlurMsg:
		a.focused = false
		a.blurSeq++
		seq := a.blurSeq
		return a, tea.Tick(blurGrace, func(time.Time) tea.Msg {
			return blurTimeoutMsg{seq: seq}
		})

	case blurTimeoutMsg:
		if !a.focused && msg.seq == a.blurSeq {
			a.ctrl.Close()
			a.syncSuggestions()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case commandReadyMsg:
		return a, a.runCommand()

	case rainFrameMsg:
		a.frameWaiting = false
		if !a.field.Active() {
			return a, nil
		}
		a.field.Step()
		return a, a.waitForFrame()

	case downloadDoneMsg:
		if msg.err != nil {
			a.log.Warn("résumé download failed", zap.Error(msg.err))
			return a, nil
		}
		a.session.Notice(msg.result.Summary())
		if msg.result.Copied {
			a.session.Notice(noticeLinkCopied)
		}
		a.refresh()
		return a, nil

	case components.ThemeChosenMsg:
		return a, a.setTheme(msg.ID)

	case components.PickerClosedMsg:
		return a, nil

	case themeChangedMsg:
		styles.Apply(msg.id)
		a.spinner.Style = styles.Spinner
		a.refresh()
		return a, nil

	case ContentReloadedMsg:
		if msg.Err != nil {
			a.log.Warn("content reload failed, keeping previous content", zap.Error(msg.Err))
			return a, nil
		}
		a.renderer.Content = msg.Content
		a.session.Dispatcher = shell.NewDispatcher(shell.DispatcherConfig{
			ResumeURL: a.resumeURL,
			Aliases:   msg.Content.Aliases(),
		})
		a.log.Info("content reloaded")
		a.refresh()
		return a, nil
	}

	return a, nil
}

// handleKeyMsg routes a key press. The picker and the rain take every key
// while they are shown; otherwise navigation keys go to the controller and
// the rest to the text input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.picker.IsOpen() {
		_, cmd := a.picker.Update(msg)
		return a, cmd
	}

	action := a.keymap.Action(msg)

	if action == actionInterrupt {
		if a.field.Active() {
			a.stopRain()
			return a, nil
		}
		return a, tea.Quit
	}

	if a.field.Active() {
		return a, nil
	}

	switch action {
	case actionTheme:
		if a.themes != nil {
			a.picker.Open(a.themes.Get())
		}
		return a, nil
	case actionNextTheme:
		if a.themes != nil {
			return a, a.setTheme(a.themes.Next())
		}
		return a, nil
	case actionPageUp:
		a.transcript.ViewUp()
		return a, nil
	case actionPageDown:
		a.transcript.ViewDown()
		return a, nil
	}

	if a.ctrl.Disabled() {
		return a, nil
	}

	switch action {
	case actionSubmit:
		return a, a.submit()
	case actionUp:
		return a.navigate(shell.KeyUp)
	case actionDown:
		return a.navigate(shell.KeyDown)
	case actionComplete:
		return a.navigate(shell.KeyTab)
	case actionDismiss:
		return a.navigate(shell.KeyEscape)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.ctrl.SetText(a.input.Value())
	a.syncSuggestions()
	return a, cmd
}

func (a *App) navigate(k shell.Key) (tea.Model, tea.Cmd) {
	if a.ctrl.HandleKey(k) {
		a.syncInput()
	}
	return a, nil
}

// handleMouseMsg processes mouse input.
func (a *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.picker.IsOpen() || a.field.Active() {
		return a, nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		a.transcript, cmd = a.transcript.Update(msg)
		return a, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	if a.suggestions.Visible() {
		if i, ok := a.suggestions.ItemAt(msg.Y - a.popupTop()); ok {
			a.ctrl.Choose(i)
			a.syncInput()
			return a, nil
		}
		a.ctrl.Close()
		a.syncSuggestions()
	}
	return a, nil
}

// submit starts the submitted command after the simulated delay.
func (a *App) submit() tea.Cmd {
	raw, ok := a.ctrl.Submit()
	if !ok {
		return nil
	}
	a.syncInput()

	wait, ok := a.session.Begin(raw)
	if !ok {
		return nil
	}
	a.ctrl.SetDisabled(true)
	a.input.Blur()
	a.loading = true

	ready := func(time.Time) tea.Msg { return commandReadyMsg{} }
	if wait <= 0 {
		return func() tea.Msg { return commandReadyMsg{} }
	}
	return tea.Batch(a.spinner.Tick, tea.Tick(wait, ready))
}

// runCommand executes the pending command and performs its effect.
func (a *App) runCommand() tea.Cmd {
	res := a.session.Run()
	a.loading = false
	a.ctrl.SetDisabled(false)
	a.input.Focus()
	a.refresh()
	a.transcript.GotoBottom()

	switch res.Effect {
	case shell.EffectRain:
		return a.startRain()
	case shell.EffectDownload:
		return a.download()
	}
	return nil
}

func (a *App) startRain() tea.Cmd {
	a.field.Activate(a.width, a.bodyHeight())
	frames := a.frames
	a.scheduler.Start(func(time.Time) {
		select {
		case frames <- struct{}{}:
		default:
		}
	})
	a.log.Debug("rain started", zap.Int("columns", len(a.field.Columns())))
	return a.waitForFrame()
}

func (a *App) stopRain() {
	a.scheduler.Stop()
	a.field.Deactivate()
	a.session.Notice(noticeRainStopped)
	a.refresh()
	a.transcript.GotoBottom()
	a.log.Debug("rain stopped")
}

// waitForFrame blocks on the frame channel. Only one waiter is kept alive.
func (a *App) waitForFrame() tea.Cmd {
	if a.frameWaiting {
		return nil
	}
	a.frameWaiting = true
	frames := a.frames
	return func() tea.Msg {
		<-frames
		return rainFrameMsg{}
	}
}

func (a *App) download() tea.Cmd {
	if a.downloader == nil {
		return nil
	}
	d, ctx := a.downloader, a.ctx
	return func() tea.Msg {
		res, err := d.Save(ctx)
		return downloadDoneMsg{result: res, err: err}
	}
}

// setTheme persists the theme off the event loop; subscribers report the
// change back through themeChangedMsg.
func (a *App) setTheme(id theme.ID) tea.Cmd {
	if a.themes == nil {
		return nil
	}
	store, log := a.themes, a.log
	return func() tea.Msg {
		if err := store.Set(id); err != nil {
			log.Warn("failed to set theme", zap.Error(err))
		}
		return nil
	}
}

// syncInput copies the controller text into the text input.
func (a *App) syncInput() {
	if a.input.Value() != a.ctrl.Text() {
		a.input.SetValue(a.ctrl.Text())
		a.input.CursorEnd()
	}
	a.syncSuggestions()
}

func (a *App) syncSuggestions() {
	items, sel, ok := a.ctrl.Suggestions()
	if !ok {
		a.suggestions.SetItems(nil, 0)
		return
	}
	a.suggestions.SetItems(items, sel)
}

// refresh re-renders the transcript into the viewport.
func (a *App) refresh() {
	a.transcript.SetContent(a.renderer.Transcript(a.session.Transcript.Entries()))
}
