package shell

import (
	"time"

	"github.com/google/uuid"
)

// Section names a portfolio section.
type Section string

const (
	SectionHome       Section = "home"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionSkills     Section = "skills"
	SectionContact    Section = "contact"
)

// OutputKind selects how an output is rendered.
type OutputKind int

const (
	OutputSection  OutputKind = iota // a portfolio section
	OutputHelp                       // the command listing
	OutputRain                       // rain activated message
	OutputDownload                   // résumé download with fallback link
	OutputUnknown                    // unrecognized command
	OutputNotice                     // informational line, e.g. rain stopped
)

// Output is what a command produced. It is rendered lazily so that width
// and theme changes re-render old entries.
type Output struct {
	Kind    OutputKind
	Section Section
	Input   string // offending input for OutputUnknown
	Text    string // notice text, or the fallback link for OutputDownload
}

// Entry is one transcript record.
type Entry struct {
	// ID keys the rendered form of the entry.
	ID        uuid.UUID
	Input     string
	Output    Output
	CreatedAt time.Time
}

// Transcript is the ordered log shown in the terminal body.
type Transcript struct {
	entries []Entry
	now     func() time.Time
}

// NewTranscript creates an empty transcript. A nil clock means time.Now.
func NewTranscript(now func() time.Time) *Transcript {
	if now == nil {
		now = time.Now
	}
	return &Transcript{now: now}
}

// Append records an entry at the end of the transcript.
func (t *Transcript) Append(input string, out Output) Entry {
	e := Entry{
		ID:        uuid.New(),
		Input:     input,
		Output:    out,
		CreatedAt: t.now(),
	}
	t.entries = append(t.entries, e)
	return e
}

// Clear removes every entry.
func (t *Transcript) Clear() {
	t.entries = nil
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in submission order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
