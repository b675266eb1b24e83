package secretserver

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

func TestGetSecret(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secrets/secret", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"secret":"p@ss","meta":{"version":3}}`))
	}))
	defer server.Close()

	client := NewClient(server.Client())
	resp, err := client.GetSecret(context.Background(), server.URL, SecretRequest{
		OrganizationName: "acme",
		Username:         "google-com-raman",
		CloudProvider:    "azure",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"organization_name": "acme",
		"username":          "google-com-raman",
		"cloud_provider":    "azure",
	}, received)

	password, err := Password(resp)
	require.NoError(t, err)
	assert.Equal(t, "p@ss", password)
}

func TestGetSecretNonObjectResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"just a string"`))
	}))
	defer server.Close()

	_, err := NewClient(nil).GetSecret(context.Background(), server.URL, SecretRequest{})
	require.ErrorIs(t, err, ErrPasswordNotFound)
	assert.Contains(t, err.Error(), `Response: "just a string"`)
}

func TestGetSecretServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such user", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient(nil).GetSecret(context.Background(), server.URL, SecretRequest{})
	require.ErrorIs(t, err, request.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "secret server returned unexpected status code: 404")
}
