package secretserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/humanitec/humctl-login/internal/request"
)

const serviceName = "secret server"

type SecretRequest struct {
	OrganizationName string `json:"organization_name"`
	Username         string `json:"username"`
	CloudProvider    string `json:"cloud_provider"`
}

// Response is the loosely typed secret server payload. Its shape is not
// guaranteed, so it is kept as a plain map.
type Response map[string]any

type Client struct {
	HTTPClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{HTTPClient: httpClient}
}

func SecretURL(baseURL string) string {
	return baseURL + "/secrets/secret"
}

func (c *Client) GetSecret(ctx context.Context, baseURL string, req SecretRequest) (Response, error) {
	body, err := request.PostJSON(ctx, c.HTTPClient, serviceName, SecretURL(baseURL), req)
	if err != nil {
		return nil, err
	}

	var resp Response
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil || resp == nil {
		return nil, fmt.Errorf("%w. Response: %s", ErrPasswordNotFound, string(body))
	}
	return resp, nil
}
