package login

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSON(t *testing.T) {
	var tests = []struct {
		name     string
		result   Result
		expected string
	}{
		{name: "success", result: Succeeded(map[string]any{"status": "ok"}), expected: `{"success":true,"loginResult":{"status":"ok"}}`},
		{name: "success without body", result: Succeeded(nil), expected: `{"success":true,"loginResult":null}`},
		{name: "failure", result: Failed(errors.New("boom")), expected: `{"success":false,"error":"boom"}`},
		{name: "failure without message", result: Failed(nil), expected: `{"success":false,"error":"unknown error"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.result)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(out))

			var decoded Result
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, tc.result.Success, decoded.Success)
			assert.Equal(t, tc.result.Error, decoded.Error)
		})
	}
}
