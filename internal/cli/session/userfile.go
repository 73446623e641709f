package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName = "jobtrack"
	userFileName  = "user.json"
)

// userFilePath returns the path to the persisted user record,
// ~/.config/jobtrack/user.json
func userFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", configDirName, userFileName), nil
}

// writeUser persists the user record next to the CLI's other local state
func writeUser(user UserRecord) error {
	path, err := userFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write user record: %w", err)
	}

	return nil
}

// readUser loads the persisted user record. A missing or unreadable file
// counts as no record rather than an error, so a corrupted half-session
// degrades to "not authenticated" instead of wedging every command.
func readUser() (*UserRecord, error) {
	path, err := userFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user record: %w", err)
	}

	var user UserRecord
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, nil
	}
	if user.ID == 0 {
		return nil, nil
	}

	return &user, nil
}

// removeUser deletes the persisted user record. Removing an absent record is
// a no-op.
func removeUser() error {
	path, err := userFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove user record: %w", err)
	}
	return nil
}
