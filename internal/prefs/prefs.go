// Package prefs stores small string preferences such as the selected theme.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("preference not found")

// Store is a string key/value preference backend.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Backend names accepted by Open.
const (
	BackendMemory  = "memory"
	BackendFile    = "file"
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
)

// Open returns the backend named by kind. path is the file or database
// location and is ignored by the memory and keyring backends.
func Open(kind, path string) (Store, error) {
	switch kind {
	case BackendMemory:
		return NewMemory(), nil
	case "", BackendFile:
		return NewFile(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendKeyring:
		return NewKeyring(""), nil
	default:
		return nil, fmt.Errorf("unknown preference backend %q", kind)
	}
}

// Close releases the store if it holds resources.
func Close(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Memory keeps preferences in a map. It is used in tests and when nothing
// should touch the disk.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
