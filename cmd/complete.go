package cmd

import (
	"github.com/spf13/cobra"
)

var completeValue float64

var completeCmd = &cobra.Command{
	Use:   "complete HABIT_ID",
	Short: "Record a completion for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return complete(cmd, args[0])
	},
}

func init() {
	completeCmd.Flags().Float64Var(&completeValue, "value", 0, "recorded value for value habits")
	rootCmd.AddCommand(completeCmd)
}

func complete(cmd *cobra.Command, id string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var value *float64
	if cmd.Flags().Changed("value") {
		value = &completeValue
	}

	reward, err := client.CompleteHabit(cmd.Context(), id, value)
	if err != nil {
		return err
	}
	if reward == nil {
		cmd.Println("No reward: habit already completed today or not due.")
		return nil
	}

	cmd.Printf("%s: +%d points, streak %d\n", reward.HabitTitle, reward.PointsAwarded, reward.NewStreak)
	if reward.MissedOccurrences > 0 {
		cmd.Printf("Missed %d occurrence(s), penalty -%d points\n", reward.MissedOccurrences, reward.PenaltyApplied)
	}
	if reward.ValueRecorded != nil {
		cmd.Printf("Recorded %g %s\n", *reward.ValueRecorded, reward.ValueUnit)
	}
	return nil
}
