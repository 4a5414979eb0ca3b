package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, err := s.Get("theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("theme", "ayu"))
	v, err := s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "ayu", v)

	require.NoError(t, s.Set("theme", "light"))
	v, err = s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	_, err = s.Get("other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	exerciseStore(t, NewFile(path))

	// A fresh store over the same file sees the saved value.
	v, err := NewFile(path).Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not: [valid"), 0600))

	_, err := NewFile(path).Get("theme")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	v, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestKeyring(t *testing.T) {
	keyring.MockInit()
	exerciseStore(t, NewKeyring("termfolio-test"))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		kind    string
		want    any
		wantErr bool
	}{
		{kind: BackendMemory, want: &Memory{}},
		{kind: "", want: &File{}},
		{kind: BackendFile, want: &File{}},
		{kind: BackendSQLite, want: &SQLite{}},
		{kind: BackendKeyring, want: &Keyring{}},
		{kind: "redis", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := Open(tt.kind, filepath.Join(dir, tt.kind+".store"))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			assert.NoError(t, Close(s))
		})
	}
}
