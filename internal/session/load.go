package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/humanitec/humctl-login/internal/message"
)

// Load reads the state file into State. Unless force is set, the user is
// asked whether the previous session should be reused.
func Load(force bool) error {
	dirname, err := stateFileDir()
	if err != nil {
		return err
	}

	stateFile, err := os.ReadFile(path.Join(dirname, stateFileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read state file: %w", err)
		}
		message.Debug("State file not found, creating new state")
		return nil
	}

	answer := true
	if !force {
		answer, err = message.BoolSelect("Do you want to load the state from the previous session?")
		if err != nil {
			return fmt.Errorf("failed to get user input: %w", err)
		}
	}
	if answer {
		if err := json.Unmarshal(stateFile, &State); err != nil {
			return fmt.Errorf("failed to unmarshal state file: %w", err)
		}
	}
	return nil
}
