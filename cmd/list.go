package cmd

import (
	"github.com/routinely/routinely/pkg/daykey"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long:  `The "list" command lists your tracked habits with streaks and due status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return list(cmd)
	},
}

func list(cmd *cobra.Command) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	habits, err := client.ListHabits(cmd.Context())
	if err != nil {
		return err
	}

	today := daykey.Today()
	for _, h := range habits {
		status := " "
		switch {
		case daykey.SameDay(h.LastCompletedOn, today):
			status = "done"
		case h.DueOn(today):
			status = "due"
		}
		cmd.Printf("%-36s  %-24s  streak=%-4d %s\n", h.ID, h.Title, h.Streak, status)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
