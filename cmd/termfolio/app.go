package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/config"
	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/download"
	"github.com/hy4ri/termfolio/internal/logging"
	"github.com/hy4ri/termfolio/internal/plain"
	"github.com/hy4ri/termfolio/internal/prefs"
	"github.com/hy4ri/termfolio/internal/rain"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/theme"
	"github.com/hy4ri/termfolio/internal/tui"
	"github.com/hy4ri/termfolio/internal/tui/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// env holds everything the front ends share.
type env struct {
	cfg        *config.Config
	log        *zap.Logger
	content    *content.Content
	prefs      prefs.Store
	themes     *theme.Store
	session    *shell.Session
	renderer   *ui.Renderer
	downloader *download.Downloader
	index      []shell.Suggestion
}

// setup loads configuration and content and builds the shared services.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("content") {
		cfg.Content.Dir = contentDir
	}
	if cmd.Flags().Changed("watch") {
		cfg.Content.Watch = watch
	}
	if err := cfg.Resolve(); err != nil {
		return nil, fmt.Errorf("failed to resolve config: %w", err)
	}

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	c, err := content.Load(cfg.Content.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	p, err := prefs.Open(cfg.Preferences.Backend, cfg.Preferences.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	themes, err := openThemes(p, cfg.Theme.Default, log)
	if err != nil {
		prefs.Close(p)
		return nil, err
	}

	downloader := download.New(download.Options{
		Source:   cfg.Resume.File,
		Name:     cfg.Resume.Name,
		Dir:      cfg.Resume.DownloadDir,
		URL:      cfg.Resume.URL,
		Notify:   cfg.Resume.Notify,
		CopyLink: cfg.Resume.CopyLink,
	}, log)

	d := shell.NewDispatcher(shell.DispatcherConfig{
		ResumeURL: downloader.URL(),
		Aliases:   c.Aliases(),
	})
	session := shell.NewSession(d,
		shell.WithDelay(shell.Delay{Min: cfg.UI.DelayMin, Max: cfg.UI.DelayMax}),
		shell.WithLogger(log),
	)

	renderer := ui.NewRenderer(c)
	renderer.Prompt = fmt.Sprintf("%s@%s:~$", cfg.UI.User, cfg.UI.Host)
	renderer.Version = version
	renderer.Timestamps = cfg.UI.Timestamps

	log.Info("starting",
		zap.String("version", version),
		zap.String("content", cfg.Content.Dir),
		zap.String("theme", string(themes.Get())),
		zap.String("prefs", cfg.Preferences.Backend),
	)

	return &env{
		cfg:        cfg,
		log:        log,
		content:    c,
		prefs:      p,
		themes:     themes,
		session:    session,
		renderer:   renderer,
		downloader: downloader,
		index:      suggestionIndex(c),
	}, nil
}

// Close releases the preference backend and flushes the log.
func (e *env) Close() {
	if err := prefs.Close(e.prefs); err != nil {
		e.log.Warn("failed to close preferences", zap.Error(err))
	}
	_ = e.log.Sync()
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openThemes creates the theme store. The config default applies until a
// choice is stored; --theme overrides both and is remembered.
func openThemes(p prefs.Store, fallback string, log *zap.Logger) (*theme.Store, error) {
	themes := theme.NewStore(p, log)

	if themeFlag != "" {
		if err := themes.Set(theme.ID(themeFlag)); err != nil {
			return nil, err
		}
		return themes, nil
	}

	if _, err := p.Get(theme.PrefKey); errors.Is(err, prefs.ErrNotFound) {
		id := theme.ID(fallback)
		if id.Valid() && id != themes.Get() {
			if err := themes.Set(id); err != nil {
				return nil, err
			}
		}
	}
	return themes, nil
}

// suggestionIndex uses the descriptions from the commands collection where
// one exists.
func suggestionIndex(c *content.Content) []shell.Suggestion {
	index := shell.DefaultSuggestions()
	for i, s := range index {
		if cmd, ok := c.Command(s.Command); ok && cmd.Description != "" {
			index[i].Description = cmd.Description
		}
	}
	return index
}

// runApp starts the full-screen UI, or the line-mode shell when asked to or
// when stdout is not a terminal.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if plainMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(e)
	}
	return runTUI(e)
}

func runTUI(e *env) error {
	cfg := e.cfg
	field := rain.NewField(cfg.RainSettings(), nil)

	app := tui.NewApp(tui.Options{
		Session:    e.session,
		Themes:     e.themes,
		Renderer:   e.renderer,
		Downloader: e.downloader,
		Rain:       field,
		Scheduler:  rain.NewTickerScheduler(cfg.RainSettings().Interval()),
		Logger:     e.log,
		ResumeURL:  e.downloader.URL(),
		Index:      e.index,
	})
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)
	app.SetSender(p.Send)

	if cfg.Content.Watch && cfg.Content.Dir != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		w, err := content.NewWatcher(ctx, cfg.Content.Dir, content.DefaultDebounce, func(c *content.Content, err error) {
			p.Send(tui.Reload(c, err))
		}, e.log)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func runPlain(e *env) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e.renderer.Width = terminalWidth()
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}

	sh := plain.New(plain.Options{
		Session:     e.session,
		Renderer:    e.renderer,
		Downloader:  e.downloader,
		Index:       e.index,
		Out:         os.Stdout,
		Logger:      e.log,
		HistoryFile: filepath.Join(dataDir, "history"),
	})
	return sh.Run(ctx)
}

// runShow prints one command's output.
func runShow(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	raw := strings.TrimSpace(args[0])
	if !strings.HasPrefix(raw, shell.Marker) {
		raw = shell.Marker + raw
	}

	e.renderer.Width = terminalWidth()
	sh := plain.New(plain.Options{
		Session:    e.session,
		Renderer:   e.renderer,
		Downloader: e.downloader,
		Index:      e.index,
		Out:        cmd.OutOrStdout(),
		Logger:     e.log,
	})
	fmt.Fprintln(cmd.OutOrStdout(), sh.Exec(cmd.Context(), raw))
	return nil
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
