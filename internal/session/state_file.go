package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
)

func stateFileDir() (string, error) {
	dirname, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return path.Join(dirname, stateFileDirectory), nil
}

func Save() error {
	dirname, err := stateFileDir()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(dirname, 0700); err != nil {
		return fmt.Errorf("failed to create state file directory: %w", err)
	}

	stateFile, err := json.Marshal(State)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path.Join(dirname, stateFileName), stateFile, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Reset removes the state file and clears the in-memory state. A missing
// state file is not an error.
func Reset() error {
	dirname, err := stateFileDir()
	if err != nil {
		return err
	}

	if err = os.Remove(path.Join(dirname, stateFileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	State = Session{}
	return nil
}
