package cmd

import (
	"os"

	"github.com/routinely/routinely/internal/apiclient"
	"github.com/routinely/routinely/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "routinely",
	Short: "Track recurring habits, streaks and reward points",
	Long: `
	Routinely tracks personal habits against daily, weekly or interval
	recurrence rules, keeps streaks and a running point total, and
	penalizes missed check-ins. Most commands talk to a running
	"routinely serve" instance.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newClient() (*apiclient.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return apiclient.New(cfg.APIBaseURL), nil
}
