package cmd

import (
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the completion log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showLog(cmd)
	},
}

func showLog(cmd *cobra.Command) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	completions, err := client.ListCompletions(cmd.Context())
	if err != nil {
		return err
	}

	for _, c := range completions {
		if c.Value != nil {
			cmd.Printf("%s  %-24s  +%d pts  (%g)\n", c.CompletedOn, c.HabitTitle, c.PointsAwarded, *c.Value)
			continue
		}
		cmd.Printf("%s  %-24s  +%d pts\n", c.CompletedOn, c.HabitTitle, c.PointsAwarded)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(logCmd)
}
