package prefs

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const defaultKeyringService = "termfolio"

// Keyring keeps preferences in the system keyring, one secret per key.
type Keyring struct {
	service string
}

// NewKeyring creates a keyring store. An empty service uses "termfolio".
func NewKeyring(service string) *Keyring {
	if service == "" {
		service = defaultKeyringService
	}
	return &Keyring{service: service}
}

func (k *Keyring) Get(key string) (string, error) {
	v, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read keyring: %w", err)
	}
	return v, nil
}

func (k *Keyring) Set(key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("failed to write keyring: %w", err)
	}
	return nil
}
