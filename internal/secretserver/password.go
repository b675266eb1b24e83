package secretserver

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PasswordKeys lists the response keys that may carry the password, in
// priority order.
var PasswordKeys = []string{"secret", "password", "secret_value", "value"}

// Password returns the first non-empty value found under PasswordKeys.
// Empty strings, zero numbers, false and null are skipped.
func Password(resp Response) (string, error) {
	for _, key := range PasswordKeys {
		if password, ok := passwordValue(resp[key]); ok {
			return password, nil
		}
	}

	serialized, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("%w. Response: %v", ErrPasswordNotFound, map[string]any(resp))
	}
	return "", fmt.Errorf("%w. Response: %s", ErrPasswordNotFound, string(serialized))
}

func passwordValue(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, typed != ""
	case bool:
		return strconv.FormatBool(typed), typed
	case json.Number:
		f, err := typed.Float64()
		if err == nil && f == 0 {
			return "", false
		}
		return typed.String(), true
	case float64:
		if typed == 0 {
			return "", false
		}
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	default:
		serialized, err := json.Marshal(typed)
		if err != nil {
			return "", false
		}
		return string(serialized), true
	}
}
