package cmd

import (
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all habits, completions and points",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			cmd.Println("Refusing to reset without --yes")
			return nil
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.ResetState(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("State reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
