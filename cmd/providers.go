package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humanitec/humctl-login/internal/cloud"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the supported cloud providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, provider := range cloud.GetProviders() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", provider, cloud.DisplayName(provider)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
