package cmd

import (
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove HABIT_ID",
	Short: "Remove a habit and its completion records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.RemoveHabit(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Println("Removed", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
