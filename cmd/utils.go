package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v2"

	"github.com/humanitec/humctl-login/internal/browseruse"
	"github.com/humanitec/humctl-login/internal/cloud"
	"github.com/humanitec/humctl-login/internal/login"
	"github.com/humanitec/humctl-login/internal/message"
)

const configFileName = ".humctl-login.yaml"

var configPath string

type config struct {
	OrgName        string `yaml:"orgName"`
	SecretBaseURL  string `yaml:"secretBaseUrl"`
	BrowserBaseURL string `yaml:"browserBaseUrl"`
	CloudProvider  string `yaml:"cloudProvider"`
}

// loadConfig reads the optional YAML configuration. A missing file yields an
// empty configuration unless the path was given explicitly.
func loadConfig(configPath string) (*config, error) {
	explicit := configPath != ""
	if !explicit {
		dirname, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = path.Join(dirname, configFileName)
	}

	cfg := &config{}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(configFile, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	message.Debug("Using configuration from %s", configPath)
	return cfg, nil
}

func (c *config) applyDefaults(item login.Item) login.Item {
	if item.OrgName == "" {
		item.OrgName = c.OrgName
	}
	if item.SecretBaseURL == "" {
		item.SecretBaseURL = c.SecretBaseURL
	}
	if item.BrowserBaseURL == "" {
		item.BrowserBaseURL = c.BrowserBaseURL
	}
	if item.BrowserBaseURL == "" {
		item.BrowserBaseURL = browseruse.DefaultBaseURL
	}
	if item.CloudProvider == "" {
		item.CloudProvider = c.CloudProvider
	}
	if item.CloudProvider == "" {
		item.CloudProvider = cloud.DefaultProvider.String()
	}
	return item
}

func loadItems(itemsPath string, cfg *config) ([]login.Item, error) {
	itemsFile, err := os.ReadFile(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var items []login.Item
	if err := yaml.Unmarshal(itemsFile, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items file: %w", err)
	}
	for i := range items {
		items[i] = cfg.applyDefaults(items[i])
	}
	return items, nil
}
