package theme

import (
	"errors"
	"testing"

	"github.com/hy4ri/termfolio/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type brokenPrefs struct {
	getErr error
	setErr error
}

func (b brokenPrefs) Get(string) (string, error) { return "", b.getErr }
func (b brokenPrefs) Set(string, string) error  { return b.setErr }

func TestStore_DefaultWhenUnset(t *testing.T) {
	s := NewStore(prefs.NewMemory(), nil)
	assert.Equal(t, OneDark, s.Get())
}

func TestStore_SetPersistsAcrossReload(t *testing.T) {
	for _, info := range All() {
		t.Run(string(info.ID), func(t *testing.T) {
			p := prefs.NewMemory()
			require.NoError(t, NewStore(p, nil).Set(info.ID))

			stored, err := p.Get(PrefKey)
			require.NoError(t, err)
			assert.Equal(t, string(info.ID), stored)

			assert.Equal(t, info.ID, NewStore(p, nil).Get())
		})
	}
}

func TestStore_UnknownStoredValue(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := prefs.NewMemory()
	require.NoError(t, p.Set(PrefKey, "solarized"))

	s := NewStore(p, zap.New(core))

	assert.Equal(t, Default, s.Get())
	assert.Equal(t, 1, logs.FilterMessage("ignoring unknown stored theme").Len())
}

func TestStore_ReadFailureFallsBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewStore(brokenPrefs{getErr: errors.New("disk on fire")}, zap.New(core))

	assert.Equal(t, Default, s.Get())
	assert.Equal(t, 1, logs.Len())
}

func TestStore_WriteFailureStillApplies(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewStore(brokenPrefs{getErr: prefs.ErrNotFound, setErr: errors.New("read-only")}, zap.New(core))

	var got []ID
	s.Subscribe(func(id ID) { got = append(got, id) })

	require.NoError(t, s.Set(Ayu))
	assert.Equal(t, Ayu, s.Get())
	assert.Equal(t, []ID{Ayu}, got)
	assert.Equal(t, 1, logs.FilterMessage("failed to save theme preference").Len())
}

func TestStore_SetUnknown(t *testing.T) {
	s := NewStore(prefs.NewMemory(), nil)

	err := s.Set("neon")
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Equal(t, Default, s.Get())
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(prefs.NewMemory(), nil)

	var a, b []ID
	cancelA := s.Subscribe(func(id ID) { a = append(a, id) })
	s.Subscribe(func(id ID) { b = append(b, id) })

	require.NoError(t, s.Set(Light))
	require.NoError(t, s.Set(Light)) // no change, no event
	cancelA()
	require.NoError(t, s.Set(GithubDark))

	assert.Equal(t, []ID{Light}, a)
	assert.Equal(t, []ID{Light, GithubDark}, b)
}

func TestStore_Next(t *testing.T) {
	s := NewStore(prefs.NewMemory(), nil)

	var order []ID
	for range All() {
		id := s.Next()
		order = append(order, id)
		require.NoError(t, s.Set(id))
	}
	assert.Equal(t, []ID{Light, Ayu, GithubDark, OneDark}, order)
}
