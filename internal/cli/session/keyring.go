package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service  = "jobtrack-cli"
	tokenKey = "token"
)

// saveToken persists the bearer token in the OS keychain/credential manager
func saveToken(token string) error {
	if err := keyring.Set(service, tokenKey, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// loadToken retrieves the bearer token, returning "" when none is stored
func loadToken() (string, error) {
	token, err := keyring.Get(service, tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

// deleteToken removes the bearer token. Deleting an absent token is a no-op.
func deleteToken() error {
	if err := keyring.Delete(service, tokenKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
