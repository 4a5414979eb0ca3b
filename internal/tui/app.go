package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/download"
	"github.com/hy4ri/termfolio/internal/rain"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui/components"
	"github.com/hy4ri/termfolio/internal/tui/styles"
	"github.com/hy4ri/termfolio/internal/tui/ui"
	"go.uber.org/zap"
)

// blurGrace is how long the suggestion list survives losing focus, so a
// click on it can still land.
const blurGrace = 200 * time.Millisecond

// Options wires the App to its collaborators.
type Options struct {
	Session  *shell.Session
	Themes   *theme.Store
	Renderer *ui.Renderer
	// Downloader handles /cv. Nil only shows the fallback link.
	Downloader *download.Downloader
	Rain       *rain.Field
	Scheduler  rain.Scheduler
	Logger     *zap.Logger
	// ResumeURL is passed to the dispatcher when content is reloaded.
	ResumeURL string
	// Index is the suggestion index. Nil means the built-in one.
	Index []shell.Suggestion
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	session    *shell.Session
	ctrl       *shell.Controller
	themes     *theme.Store
	renderer   *ui.Renderer
	downloader *download.Downloader
	field      *rain.Field
	scheduler  rain.Scheduler
	log        *zap.Logger
	resumeURL  string

	ctx    context.Context
	cancel context.CancelFunc

	// send delivers messages from outside the event loop, usually
	// tea.Program.Send.
	send        func(tea.Msg)
	unsubscribe func()

	// Rain frames arrive on a one-slot channel so the ticker never blocks.
	frames       chan struct{}
	frameWaiting bool

	// UI state
	width   int
	height  int
	loading bool
	focused bool
	blurSeq int

	// Components
	keymap      Keymap
	input       textinput.Model
	spinner     spinner.Model
	transcript  viewport.Model
	suggestions *components.SuggestionsModel
	picker      *components.ThemePickerModel
}

// NewApp creates a new App instance.
func NewApp(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "type /help"
	input.CharLimit = 100
	input.Focus()

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true

	field := opts.Rain
	if field == nil {
		field = rain.NewField(rain.DefaultConfig(), nil)
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = rain.NewTickerScheduler(rain.DefaultConfig().Interval())
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = ui.NewRenderer(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		session:     opts.Session,
		ctrl:        shell.NewController(opts.Session.History, opts.Index),
		themes:      opts.Themes,
		renderer:    renderer,
		downloader:  opts.Downloader,
		field:       field,
		scheduler:   scheduler,
		log:         log,
		resumeURL:   opts.ResumeURL,
		ctx:         ctx,
		cancel:      cancel,
		send:        func(tea.Msg) {},
		frames:      make(chan struct{}, 1),
		focused:     true,
		keymap:      DefaultKeymap(),
		input:       input,
		spinner:     s,
		transcript:  vp,
		suggestions: components.NewSuggestions(),
		picker:      components.NewThemePicker(),
	}

	if a.themes != nil {
		styles.Apply(a.themes.Get())
		a.unsubscribe = a.themes.Subscribe(func(id theme.ID) {
			a.send(themeChangedMsg{id: id})
		})
	}

	a.refresh()
	return a
}

// SetSender sets how messages produced outside the event loop reach the
// program. Call it with tea.Program.Send before running the program.
func (a *App) SetSender(send func(tea.Msg)) {
	if send == nil {
		send = func(tea.Msg) {}
	}
	a.send = send
}

// Close stops the rain ticker, cancels pending downloads and drops the
// theme subscription.
func (a *App) Close() {
	a.scheduler.Stop()
	a.cancel()
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Reload returns the message that swaps in new content, for use from
// content.Watcher callbacks.
func Reload(c *content.Content, err error) tea.Msg {
	return ContentReloadedMsg{Content: c, Err: err}
}
