package shell

// StepKind tells the caller what a history step means for the input line.
type StepKind int

const (
	// StepNone leaves the input untouched (empty log, or nothing to go down to).
	StepNone StepKind = iota
	// StepEntry replaces the input with a history entry.
	StepEntry
	// StepRestore puts back the text that was typed before navigation began.
	StepRestore
)

// Step is the result of moving through the history.
type Step struct {
	Kind StepKind
	Text string
}

// notNavigating is the cursor value when the user is not browsing history.
const notNavigating = -1

// History is the append-only log of submitted commands plus the cursor
// used for up/down traversal. It is never persisted.
type History struct {
	entries []string
	cursor  int
	saved   string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cursor: notNavigating}
}

// Push appends a command. Duplicates are kept and navigation is reset.
func (h *History) Push(cmd string) {
	h.entries = append(h.entries, cmd)
	h.cursor = notNavigating
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Navigating reports whether the cursor points at an entry.
func (h *History) Navigating() bool {
	return h.cursor != notNavigating
}

// Cursor returns the current index, or -1 when not navigating.
func (h *History) Cursor() int {
	return h.cursor
}

// Up moves toward older entries. The first press saves current so it can
// be restored later; at the oldest entry it stays put.
func (h *History) Up(current string) Step {
	if len(h.entries) == 0 {
		return Step{Kind: StepNone}
	}

	switch {
	case h.cursor == notNavigating:
		if h.saved == "" {
			h.saved = current
		}
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}

	return Step{Kind: StepEntry, Text: h.entries[h.cursor]}
}

// Down moves toward newer entries. Past the newest entry the saved text is
// handed back and navigation ends.
func (h *History) Down() Step {
	if len(h.entries) == 0 || h.cursor == notNavigating {
		return Step{Kind: StepNone}
	}

	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return Step{Kind: StepEntry, Text: h.entries[h.cursor]}
	}

	restored := h.saved
	h.cursor = notNavigating
	h.saved = ""
	return Step{Kind: StepRestore, Text: restored}
}

// Reset abandons navigation and drops the saved text.
func (h *History) Reset() {
	h.cursor = notNavigating
	h.saved = ""
}
