package cmd

import (
	"fmt"
	"os"

	"github.com/routinely/routinely/internal/nudge"
	"github.com/routinely/routinely/internal/nudge/resend"
	"github.com/spf13/cobra"
)

var (
	notifyEmail  string
	notifyFrom   string
	resendApiKey string
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Email a reminder for habits still due today",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if resendApiKey = os.Getenv("ROUTINELY_RESEND_API_KEY"); resendApiKey == "" {
			return fmt.Errorf("ROUTINELY_RESEND_API_KEY environment variable is not set")
		}
		if notifyEmail = os.Getenv("ROUTINELY_NOTIFY_EMAIL"); notifyEmail == "" {
			return fmt.Errorf("ROUTINELY_NOTIFY_EMAIL environment variable is not set")
		}
		notifyFrom = os.Getenv("ROUTINELY_NOTIFY_FROM")
		if notifyFrom == "" {
			notifyFrom = "routinely@localhost"
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		n := resend.ResendNotifier{
			ApiKey: resendApiKey,
			From:   notifyFrom,
			Email:  notifyEmail,
		}
		return nudge.Nudge(cmd.Context(), client, &n)
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
}
