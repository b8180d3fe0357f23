package cmd

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today's progress and the point total",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		summary, err := client.GetSummary(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Due today:       %d\n", summary.DueToday)
		cmd.Printf("Completed today: %d\n", summary.CompletedToday)
		cmd.Printf("Total points:    %d\n", summary.TotalPoints)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
