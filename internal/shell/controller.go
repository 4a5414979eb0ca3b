package shell

import "strings"

// Key is a navigation key the controller reacts to. Ordinary typing is not
// a Key; front ends report it through SetText.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyTab
	KeyEscape
)

// Mode is the controller state. Exactly one of Idle, SuggestionsOpen or
// Navigating is current at any time.
type Mode interface {
	isMode()
}

// Idle means no visible suggestions and no history browsing. Computed holds
// the suggestions for the current text even while they are hidden, so Tab
// can still complete after Escape.
type Idle struct {
	Computed []Suggestion
	Selected int
}

// SuggestionsOpen means the suggestion list is visible. Items is never
// empty and Selected is always a valid index into it.
type SuggestionsOpen struct {
	Items    []Suggestion
	Selected int
}

// Navigating means the input shows a history entry.
type Navigating struct {
	Cursor int
}

func (Idle) isMode()            {}
func (SuggestionsOpen) isMode() {}
func (Navigating) isMode()      {}

// Controller owns the prompt text and decides what navigation keys do.
type Controller struct {
	index    []Suggestion
	history  *History
	text     string
	mode     Mode
	disabled bool
}

// NewController creates a controller over the given history and suggestion
// index. A nil index means DefaultSuggestions.
func NewController(history *History, index []Suggestion) *Controller {
	if index == nil {
		index = DefaultSuggestions()
	}
	if history == nil {
		history = NewHistory()
	}
	return &Controller{
		index:   index,
		history: history,
		mode:    Idle{},
	}
}

// Mode returns the current state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Text returns the prompt text.
func (c *Controller) Text() string {
	return c.text
}

// SetDisabled blocks keys and submission while a command is in flight.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports whether input is blocked.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// Suggestions returns the visible suggestion list and selected index.
// ok is false when the list is hidden.
func (c *Controller) Suggestions() (items []Suggestion, selected int, ok bool) {
	open, isOpen := c.mode.(SuggestionsOpen)
	if !isOpen || c.disabled {
		return nil, 0, false
	}
	return open.Items, open.Selected, true
}

// SetText records an edit made by the user. Editing ends history browsing
// and recomputes suggestions.
func (c *Controller) SetText(text string) {
	if text == c.text {
		return
	}
	c.text = text
	if _, nav := c.mode.(Navigating); nav {
		c.history.Reset()
	}
	c.mode = suggestionMode(Filter(text, c.index))
}

// HandleKey applies a navigation key and reports whether it was consumed.
// Consumed keys must not reach the text widget.
func (c *Controller) HandleKey(k Key) bool {
	if c.disabled {
		return false
	}

	if k == KeyEscape {
		return c.Close()
	}

	if open, ok := c.mode.(SuggestionsOpen); ok {
		n := len(open.Items)
		switch k {
		case KeyDown:
			open.Selected = (open.Selected + 1) % n
			c.mode = open
		case KeyUp:
			open.Selected = (open.Selected - 1 + n) % n
			c.mode = open
		case KeyTab:
			c.accept(open.Items[open.Selected].Command)
		}
		return true
	}

	switch k {
	case KeyUp:
		c.applyStep(c.history.Up(c.text))
	case KeyDown:
		c.applyStep(c.history.Down())
	case KeyTab:
		if idle, ok := c.mode.(Idle); ok && len(idle.Computed) > 0 {
			sel := idle.Selected
			if sel < 0 || sel >= len(idle.Computed) {
				sel = 0
			}
			c.accept(idle.Computed[sel].Command)
		}
	}
	return true
}

// Choose accepts the i-th visible suggestion, as a pointer click does.
func (c *Controller) Choose(i int) bool {
	open, ok := c.mode.(SuggestionsOpen)
	if !ok || c.disabled || i < 0 || i >= len(open.Items) {
		return false
	}
	c.accept(open.Items[i].Command)
	return true
}

// Close hides the suggestion list and reports whether it was visible.
func (c *Controller) Close() bool {
	open, ok := c.mode.(SuggestionsOpen)
	if !ok {
		return false
	}
	c.mode = Idle{Computed: open.Items, Selected: open.Selected}
	return true
}

// Focus shows the suggestions computed for the current text again.
func (c *Controller) Focus() {
	if idle, ok := c.mode.(Idle); ok && len(idle.Computed) > 0 {
		sel := idle.Selected
		if sel < 0 || sel >= len(idle.Computed) {
			sel = 0
		}
		c.mode = SuggestionsOpen{Items: idle.Computed, Selected: sel}
	}
}

// Submit returns the text to execute and clears the prompt. Blank input and
// input while disabled are ignored and leave every piece of state alone.
func (c *Controller) Submit() (string, bool) {
	if c.disabled || strings.TrimSpace(c.text) == "" {
		return "", false
	}
	raw := c.text
	c.text = ""
	c.history.Reset()
	c.mode = Idle{}
	return raw, true
}

func (c *Controller) accept(command string) {
	c.text = command
	c.mode = Idle{Computed: Filter(command, c.index)}
}

func (c *Controller) applyStep(step Step) {
	switch step.Kind {
	case StepEntry:
		c.text = step.Text
		c.mode = Navigating{Cursor: c.history.Cursor()}
	case StepRestore:
		c.text = step.Text
		c.mode = Idle{Computed: Filter(step.Text, c.index)}
	}
}

func suggestionMode(items []Suggestion) Mode {
	if len(items) == 0 {
		return Idle{}
	}
	return SuggestionsOpen{Items: items}
}
