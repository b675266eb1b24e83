package login

import (
	"fmt"

	"github.com/humanitec/humctl-login/internal/cloud"
)

// Item is one login request of a batch. SessionId is sensitive and must
// never be logged or persisted.
type Item struct {
	OrgName        string `yaml:"orgName"`
	Username       string `yaml:"username"`
	LoginURL       string `yaml:"loginUrl"`
	SecretBaseURL  string `yaml:"secretBaseUrl"`
	BrowserBaseURL string `yaml:"browserBaseUrl"`
	SessionId      string `yaml:"sessionId"`
	CloudProvider  string `yaml:"cloudProvider"`
}

// Validate only checks presence of the fields needed to reach both services
// and that the cloud provider is a known one.
func (i Item) Validate() error {
	if i.SecretBaseURL == "" {
		return fmt.Errorf("%w: secretBaseUrl", ErrMissingField)
	}
	if i.BrowserBaseURL == "" {
		return fmt.Errorf("%w: browserBaseUrl", ErrMissingField)
	}
	if _, err := cloud.GetProvider(i.CloudProvider); err != nil {
		return err
	}
	return nil
}
