package browseruse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humanitec/humctl-login/internal/request"
)

func TestLoginTask(t *testing.T) {
	assert.Equal(t,
		"navigate to the url https://example.com/login and login with username as raman and password as p@ss",
		LoginTask("https://example.com/login", "raman", "p@ss"),
	)
}

func TestExecuteTask(t *testing.T) {
	var tests = []struct {
		name         string
		responseBody string
		expected     any
	}{
		{name: "json object", responseBody: `{"status":"ok"}`, expected: map[string]any{"status": "ok"}},
		{name: "json number kept exact", responseBody: `{"id":12345678901234567890}`, expected: map[string]any{"id": json.Number("12345678901234567890")}},
		{name: "json array", responseBody: `["a","b"]`, expected: []any{"a", "b"}},
		{name: "plain text", responseBody: `task queued`, expected: "task queued"},
		{name: "trailing garbage", responseBody: `42 tasks`, expected: "42 tasks"},
		{name: "empty body", responseBody: ``, expected: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var received TaskRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/task/execute", r.URL.Path)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				_, _ = w.Write([]byte(tc.responseBody))
			}))
			defer server.Close()

			result, err := NewClient(server.Client()).ExecuteTask(context.Background(), server.URL, TaskRequest{
				SessionId: "sess-1",
				Task:      "do something",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
			assert.Equal(t, TaskRequest{SessionId: "sess-1", Task: "do something"}, received)
		})
	}
}

func TestExecuteTaskServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewClient(nil).ExecuteTask(context.Background(), server.URL, TaskRequest{})
	require.ErrorIs(t, err, request.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "browser-use service returned unexpected status code: 401")
}
