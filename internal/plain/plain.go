// Package plain runs the portfolio as a line-mode shell for terminals that
// cannot host the full-screen UI, and for piping output.
package plain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hy4ri/termfolio/internal/download"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/tui/ui"
	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

// noticeNoRain replaces the animation, which needs the full-screen UI.
const noticeNoRain = "Matrix mode needs the full-screen terminal. Run termfolio without --plain."

// Options configures a Shell.
type Options struct {
	Session    *shell.Session
	Renderer   *ui.Renderer
	Downloader *download.Downloader
	Index      []shell.Suggestion
	Out        io.Writer
	Logger     *zap.Logger
	// HistoryFile keeps line history between runs. Empty disables it.
	HistoryFile string
}

// Shell is the line-mode front end over a shell.Session.
type Shell struct {
	session     *shell.Session
	renderer    *ui.Renderer
	downloader  *download.Downloader
	index       []shell.Suggestion
	out         io.Writer
	log         *zap.Logger
	historyFile string
}

// New creates a Shell.
func New(opts Options) *Shell {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Index == nil {
		opts.Index = shell.DefaultSuggestions()
	}
	return &Shell{
		session:     opts.Session,
		renderer:    opts.Renderer,
		downloader:  opts.Downloader,
		index:       opts.Index,
		out:         opts.Out,
		log:         opts.Logger,
		historyFile: opts.HistoryFile,
	}
}

// Complete returns the commands completing line.
func (s *Shell) Complete(line string) []string {
	matches := shell.Filter(line, s.index)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Command
	}
	return out
}

// Run reads commands until Ctrl+C, Ctrl+D or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(s.Complete)
	s.loadHistory(line)
	defer s.saveHistory(line)

	fmt.Fprintln(s.out, s.renderer.Welcome())
	fmt.Fprintln(s.out)

	prompt := s.renderer.Prompt + " "
	for ctx.Err() == nil {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if out := s.Exec(ctx, input); out != "" {
			fmt.Fprintln(s.out, out)
			fmt.Fprintln(s.out)
		}
	}
	return ctx.Err()
}

// Exec runs one command and returns its rendered output. Effects are
// performed inline: /clear clears the screen and /cv saves the résumé.
func (s *Shell) Exec(ctx context.Context, raw string) string {
	res := s.session.Execute(raw)
	if res.Clear {
		termenv.NewOutput(s.out).ClearScreen()
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderer.Output(res.Output))

	switch res.Effect {
	case shell.EffectRain:
		b.WriteString("\n")
		b.WriteString(s.notice(noticeNoRain))
	case shell.EffectDownload:
		if s.downloader == nil {
			break
		}
		saved, err := s.downloader.Save(ctx)
		if err != nil {
			s.log.Warn("résumé download failed", zap.Error(err))
			break
		}
		b.WriteString("\n")
		b.WriteString(s.notice(saved.Summary()))
	}
	return b.String()
}

func (s *Shell) notice(text string) string {
	s.session.Notice(text)
	return s.renderer.Output(shell.Output{Kind: shell.OutputNotice, Text: text})
}

func (s *Shell) loadHistory(line *liner.State) {
	if s.historyFile == "" {
		return
	}
	if f, err := os.Open(s.historyFile); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			s.log.Debug("failed to read history", zap.Error(err))
		}
		f.Close()
	}
}

func (s *Shell) saveHistory(line *liner.State) {
	if s.historyFile == "" {
		return
	}
	f, err := os.OpenFile(s.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		s.log.Debug("failed to save history", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		s.log.Debug("failed to save history", zap.Error(err))
	}
}
