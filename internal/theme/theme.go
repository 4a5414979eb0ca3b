// Package theme holds the color theme selection and its persistence.
package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hy4ri/termfolio/internal/prefs"
	"go.uber.org/zap"
)

// ID identifies a color theme.
type ID string

const (
	OneDark    ID = "one-dark"
	Light      ID = "light"
	Ayu        ID = "ayu"
	GithubDark ID = "github-dark"

	// Default is used when nothing valid is stored.
	Default = OneDark
)

// PrefKey is the preference key the selection is stored under.
const PrefKey = "theme"

// ErrUnknown is returned by Set for an id outside the theme list.
var ErrUnknown = errors.New("unknown theme")

// Info describes a theme for pickers.
type Info struct {
	ID     ID
	Name   string
	Swatch string // representative hex color
}

var themes = []Info{
	{ID: OneDark, Name: "One Dark", Swatch: "#61afef"},
	{ID: Light, Name: "Light", Swatch: "#e5c07b"},
	{ID: Ayu, Name: "Ayu", Swatch: "#ffb454"},
	{ID: GithubDark, Name: "GitHub", Swatch: "#58a6ff"},
}

// All returns every theme in display order.
func All() []Info {
	out := make([]Info, len(themes))
	copy(out, themes)
	return out
}

// Lookup returns the theme with the given id.
func Lookup(id ID) (Info, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Info{}, false
}

// Valid reports whether id names a known theme.
func (id ID) Valid() bool {
	_, ok := Lookup(id)
	return ok
}

// Store is the current theme plus its subscribers. Every change is
// written to the preference backend.
type Store struct {
	prefs prefs.Store
	log   *zap.Logger

	mu      sync.Mutex
	current ID
	subs    map[int]func(ID)
	nextSub int
}

// NewStore reads the stored selection from p. Missing, unreadable or
// unknown values fall back to Default.
func NewStore(p prefs.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		prefs: p,
		log:   log,
		subs:  make(map[int]func(ID)),
	}
	s.current = s.load()
	return s
}

func (s *Store) load() ID {
	raw, err := s.prefs.Get(PrefKey)
	if err != nil {
		if !errors.Is(err, prefs.ErrNotFound) {
			s.log.Warn("failed to read theme preference", zap.Error(err))
		}
		return Default
	}

	id := ID(raw)
	if !id.Valid() {
		s.log.Warn("ignoring unknown stored theme", zap.String("theme", raw))
		return Default
	}
	return id
}

// Get returns the current theme.
func (s *Store) Get() ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set switches to id, persists it and notifies subscribers. A failed write
// is logged and the new theme still applies for this run.
func (s *Store) Set(id ID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknown, id)
	}

	s.mu.Lock()
	changed := s.current != id
	s.current = id
	subs := make([]func(ID), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if err := s.prefs.Set(PrefKey, string(id)); err != nil {
		s.log.Warn("failed to save theme preference", zap.String("theme", string(id)), zap.Error(err))
	}

	if changed {
		for _, fn := range subs {
			fn(id)
		}
	}
	return nil
}

// Subscribe registers fn to run after every theme change. The returned
// function removes it.
func (s *Store) Subscribe(fn func(ID)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Next returns the theme after the current one in display order.
func (s *Store) Next() ID {
	cur := s.Get()
	for i, t := range themes {
		if t.ID == cur {
			return themes[(i+1)%len(themes)].ID
		}
	}
	return Default
}
