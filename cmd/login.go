package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/humanitec/humctl-login/internal/browseruse"
	"github.com/humanitec/humctl-login/internal/cloud"
	"github.com/humanitec/humctl-login/internal/login"
	"github.com/humanitec/humctl-login/internal/message"
	"github.com/humanitec/humctl-login/internal/secretserver"
	"github.com/humanitec/humctl-login/internal/session"
)

const sessionIdEnv = "HUMCTL_LOGIN_SESSION_ID"

var (
	itemsFile      string
	nonInteractive bool
	failOnError    bool
	loginFlags     login.Item
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Resolve user passwords and trigger browser logins",
	Long: `It fetches the password of every user from the secret server and asks the Browser-Use service to log in with it.
Items are read from --file (YAML or JSON list) or built from flags and prompts. Results are printed as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var items []login.Item
		if itemsFile != "" {
			items, err = loadItems(itemsFile, cfg)
			if err != nil {
				return fmt.Errorf("failed to load items: %w", err)
			}
		} else {
			item, err := collectItem(cfg)
			if err != nil {
				return fmt.Errorf("failed to collect login item: %w", err)
			}
			items = []login.Item{item}
		}

		orchestrator := login.NewOrchestrator(secretserver.NewClient(nil), browseruse.NewClient(nil))
		results := orchestrator.Run(ctx, items)

		if err := writeResults(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}

		failed := login.CountFailed(results)
		if failed == 0 {
			message.Success("%d login(s) submitted", len(results))
			return nil
		}
		message.Warning("%d of %d login(s) failed", failed, len(results))
		if failOnError {
			return fmt.Errorf("%d of %d login(s) failed", failed, len(results))
		}
		return nil
	},
}

// collectItem builds a single item from flags, the previous session, the
// configuration and, when allowed, interactive prompts.
func collectItem(cfg *config) (login.Item, error) {
	if err := session.Load(nonInteractive); err != nil {
		return login.Item{}, fmt.Errorf("failed to load session: %w", err)
	}
	previous := session.State.Login

	item := loginFlags
	if item.SessionId == "" {
		item.SessionId = os.Getenv(sessionIdEnv)
	}

	var err error
	if item.OrgName, err = resolveValue("Organization Name", item.OrgName, previous.OrgName, cfg.OrgName); err != nil {
		return login.Item{}, err
	}
	if item.Username, err = resolveValue("Username", item.Username, previous.Username, ""); err != nil {
		return login.Item{}, err
	}
	if item.LoginURL, err = resolveValue("Login URL", item.LoginURL, previous.LoginURL, ""); err != nil {
		return login.Item{}, err
	}
	if item.SecretBaseURL, err = resolveValue("Secret Server Base URL", item.SecretBaseURL, previous.SecretBaseURL, cfg.SecretBaseURL); err != nil {
		return login.Item{}, err
	}
	if item.BrowserBaseURL == "" && previous.BrowserBaseURL != "" {
		item.BrowserBaseURL = previous.BrowserBaseURL
		message.Info("Using Browser-Use Base URL from previous session: %s", item.BrowserBaseURL)
	}
	if item.CloudProvider, err = selectCloudProvider(item.CloudProvider, previous.CloudProvider); err != nil {
		return login.Item{}, err
	}
	item = cfg.applyDefaults(item)

	if item.SessionId == "" && !nonInteractive {
		if item.SessionId, err = message.Password("Session ID"); err != nil {
			return login.Item{}, fmt.Errorf("failed to get session id: %w", err)
		}
	}

	session.State.Login = session.LoginSession{
		OrgName:        item.OrgName,
		Username:       item.Username,
		LoginURL:       item.LoginURL,
		SecretBaseURL:  item.SecretBaseURL,
		BrowserBaseURL: item.BrowserBaseURL,
		CloudProvider:  item.CloudProvider,
	}
	if err := session.Save(); err != nil {
		return login.Item{}, fmt.Errorf("failed to save session: %w", err)
	}
	return item, nil
}

func resolveValue(name, flagValue, previousValue, defaultValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if previousValue != "" {
		message.Info("Using %s from previous session: %s", name, previousValue)
		return previousValue, nil
	}
	if nonInteractive {
		return defaultValue, nil
	}
	value, err := message.Prompt(fmt.Sprintf("Enter the %s", name), defaultValue)
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", name, err)
	}
	return value, nil
}

func selectCloudProvider(flagValue, previousValue string) (string, error) {
	if flagValue != "" {
		providerId, err := cloud.GetProvider(flagValue)
		if err != nil {
			return "", err
		}
		return providerId.String(), nil
	}
	if previousValue != "" {
		message.Info("Using cloud provider from previous session: %s", previousValue)
		return previousValue, nil
	}

	providers := cloud.GetProviders()
	if len(providers) == 1 || nonInteractive {
		message.Debug("Only one cloud provider available. Using: %s", cloud.DisplayName(cloud.DefaultProvider))
		return cloud.DefaultProvider.String(), nil
	}

	ids := make([]string, len(providers))
	for i, provider := range providers {
		ids[i] = provider.String()
	}
	answer, err := message.Select("Select cloud provider", ids)
	if err != nil {
		return "", fmt.Errorf("failed to select cloud provider: %w", err)
	}
	return answer, nil
}

func writeResults(w io.Writer, results []login.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func init() {
	loginCmd.Flags().StringVarP(&itemsFile, "file", "f", "", "YAML or JSON file with the list of login items")
	loginCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt, missing values stay empty")
	loginCmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "exit with an error when any login fails")

	loginCmd.Flags().StringVar(&loginFlags.OrgName, "org", "", "organization name")
	loginCmd.Flags().StringVar(&loginFlags.Username, "username", "", "username, optionally prefixed by its domain (e.g. google-com-raman)")
	loginCmd.Flags().StringVar(&loginFlags.LoginURL, "login-url", "", "URL of the login page")
	loginCmd.Flags().StringVar(&loginFlags.SecretBaseURL, "secret-base-url", "", "secret server base URL")
	loginCmd.Flags().StringVar(&loginFlags.BrowserBaseURL, "browser-base-url", "", fmt.Sprintf("Browser-Use base URL (default %s)", browseruse.DefaultBaseURL))
	loginCmd.Flags().StringVar(&loginFlags.SessionId, "session-id", "", fmt.Sprintf("Browser-Use session id (or set %s)", sessionIdEnv))
	loginCmd.Flags().StringVar(&loginFlags.CloudProvider, "cloud-provider", "", "cloud provider holding the secret (azure)")

	rootCmd.AddCommand(loginCmd)
}
