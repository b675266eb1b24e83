package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humanitec/humctl-login/internal/message"
	"github.com/humanitec/humctl-login/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the values saved by previous logins",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.Reset(); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
		message.Success("Session state removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
