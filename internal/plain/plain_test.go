package plain

import (
	"bytes"
	"context"
	"testing"

	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/download"
	"github.com/hy4ri/termfolio/internal/shell"
	"github.com/hy4ri/termfolio/internal/tui/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	c, err := content.Defaults()
	require.NoError(t, err)

	var out bytes.Buffer
	d := shell.NewDispatcher(shell.DispatcherConfig{ResumeURL: "https://example.com/cv.pdf", Aliases: c.Aliases()})
	s := New(Options{
		Session:  shell.NewSession(d, shell.WithDelay(shell.Delay{})),
		Renderer: ui.NewRenderer(c),
		Out:      &out,
	})
	return s, &out
}

func TestComplete(t *testing.T) {
	s, _ := newTestShell(t)

	assert.Equal(t, []string{shell.CmdSkills}, s.Complete("/sk"))
	assert.Equal(t, []string{shell.CmdContact, shell.CmdCV, shell.CmdClear}, s.Complete("/c"))
	assert.Empty(t, s.Complete("skills"))
}

func TestExec(t *testing.T) {
	s, _ := newTestShell(t)
	ctx := context.Background()

	assert.Contains(t, s.Exec(ctx, "/help"), shell.CmdRain)
	assert.Contains(t, s.Exec(ctx, "/nope"), "command not found: /nope")
	assert.Contains(t, s.Exec(ctx, "/rain"), "full-screen")
	assert.Equal(t, 4, s.session.Transcript.Len(), "three commands plus the rain notice")
	assert.Equal(t, 3, s.session.History.Len())
}

func TestExec_Clear(t *testing.T) {
	s, out := newTestShell(t)
	ctx := context.Background()

	s.Exec(ctx, "/home")
	assert.Empty(t, s.Exec(ctx, "/clear"))
	assert.Zero(t, s.session.Transcript.Len())
	assert.NotEmpty(t, out.String(), "clear writes the escape sequence")
}

func TestExec_Download(t *testing.T) {
	s, _ := newTestShell(t)
	s.downloader = download.New(download.Options{Name: "cv.pdf", Dir: t.TempDir()}, nil)

	got := s.Exec(context.Background(), "/cv")
	assert.Contains(t, got, "https://example.com/cv.pdf")
	assert.Contains(t, got, "cv.pdf (")
}
