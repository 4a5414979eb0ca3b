package tui

import (
	"github.com/hy4ri/termfolio/internal/content"
	"github.com/hy4ri/termfolio/internal/download"
	"github.com/hy4ri/termfolio/internal/theme"
)

// ContentReloadedMsg carries content reloaded from disk. Err is set when
// the reload failed and the current content should be kept.
type ContentReloadedMsg struct {
	Content *content.Content
	Err     error
}

// Message types
type commandReadyMsg struct{}
type rainFrameMsg struct{}
type themeChangedMsg struct{ id theme.ID }
type blurTimeoutMsg struct{ seq int }
type downloadDoneMsg struct {
	result download.Result
	err    error
}
