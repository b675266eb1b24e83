package browseruse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/humanitec/humctl-login/internal/request"
)

const (
	serviceName = "browser-use service"

	DefaultBaseURL = "http://localhost:5678"
)

type TaskRequest struct {
	SessionId string `json:"session_id"`
	Task      string `json:"task"`
}

type Client struct {
	HTTPClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{HTTPClient: httpClient}
}

func ExecuteURL(baseURL string) string {
	return baseURL + "/task/execute"
}

// LoginTask builds the natural-language instruction the automation service
// executes to log into loginURL.
func LoginTask(loginURL, username, password string) string {
	return fmt.Sprintf("navigate to the url %s and login with username as %s and password as %s", loginURL, username, password)
}

// ExecuteTask submits the task and returns the decoded response untouched.
// A body that is not JSON is returned as a string.
func (c *Client) ExecuteTask(ctx context.Context, baseURL string, req TaskRequest) (any, error) {
	body, err := request.PostJSON(ctx, c.HTTPClient, serviceName, ExecuteURL(baseURL), req)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var result any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil || dec.More() {
		return string(body), nil
	}
	return result, nil
}
