// Package tui provides the terminal user interface for the portfolio.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Prompt
	Submit   Key
	Up       Key
	Down     Key
	Complete Key
	Dismiss  Key

	// Transcript
	PageUp   Key
	PageDown Key

	// General
	Theme     Key
	NextTheme Key
	Interrupt Key
}

// DefaultKeymap returns the shell-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Submit:   Key{Key: "enter", Help: "run"},
		Up:       Key{Key: "up", Help: "history"},
		Down:     Key{Key: "down", Help: "history"},
		Complete: Key{Key: "tab", Help: "complete"},
		Dismiss:  Key{Key: "esc", Help: "dismiss"},

		PageUp:   Key{Key: "pgup", Help: "scroll up"},
		PageDown: Key{Key: "pgdown", Help: "scroll down"},

		Theme:     Key{Key: "ctrl+t", Help: "theme"},
		NextTheme: Key{Key: "ctrl+n", Help: "next theme"},
		Interrupt: Key{Key: "ctrl+c", Help: "quit"},
	}
}

// Action names returned by Keymap.Action.
const (
	actionSubmit    = "submit"
	actionUp        = "up"
	actionDown      = "down"
	actionComplete  = "complete"
	actionDismiss   = "dismiss"
	actionPageUp    = "page_up"
	actionPageDown  = "page_down"
	actionTheme     = "theme"
	actionNextTheme = "next_theme"
	actionInterrupt = "interrupt"
)

// Action maps a key press to an action name. Keys without a binding
// return "" and go to the text input.
func (k Keymap) Action(msg tea.KeyMsg) string {
	switch msg.String() {
	case k.Submit.Key:
		return actionSubmit
	case k.Up.Key:
		return actionUp
	case k.Down.Key:
		return actionDown
	case k.Complete.Key:
		return actionComplete
	case k.Dismiss.Key:
		return actionDismiss
	case k.PageUp.Key:
		return actionPageUp
	case k.PageDown.Key:
		return actionPageDown
	case k.Theme.Key:
		return actionTheme
	case k.NextTheme.Key:
		return actionNextTheme
	case k.Interrupt.Key:
		return actionInterrupt
	}
	return ""
}

// HelpItems returns key-description pairs for the status bar.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{k.Submit.Key, k.Submit.Help},
		{k.Complete.Key, k.Complete.Help},
		{"↑/↓", k.Up.Help},
		{k.Theme.Key, k.Theme.Help},
		{k.Interrupt.Key, k.Interrupt.Help},
	}
}
