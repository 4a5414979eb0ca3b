package components

import "github.com/hy4ri/termfolio/internal/theme"

// ThemeChosenMsg is emitted when a theme is picked.
type ThemeChosenMsg struct {
	ID theme.ID
}

// PickerClosedMsg is emitted when the theme picker is dismissed.
type PickerClosedMsg struct{}
