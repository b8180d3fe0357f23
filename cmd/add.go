package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/routinely/routinely/internal/tracker"
	"github.com/routinely/routinely/pkg/daykey"
	"github.com/routinely/routinely/pkg/habit"
	"github.com/spf13/cobra"
)

var (
	addType   string
	addUnit   string
	addTarget float64
	addFreq   string
	addDays   []int
	addEvery  int
	addAnchor string
)

var addCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a habit",
	Long: `The "add" command creates a habit with a recurrence rule, for example:

  routinely add "stretch" --freq daily
  routinely add "run" --freq weekly --days 1,3,5
  routinely add "water plants" --freq interval --every 3
  routinely add "hydrate" --type value --unit glasses --target 8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addHabit(cmd, args[0])
	},
}

func init() {
	addCmd.Flags().StringVar(&addType, "type", "checkbox", "habit type: checkbox or value")
	addCmd.Flags().StringVar(&addUnit, "unit", "", "unit label for value habits")
	addCmd.Flags().Float64Var(&addTarget, "target", 0, "default target for value habits")
	addCmd.Flags().StringVar(&addFreq, "freq", "daily", "recurrence: daily, weekly or interval")
	addCmd.Flags().IntSliceVar(&addDays, "days", nil, "weekdays for weekly habits (0=Sunday)")
	addCmd.Flags().IntVar(&addEvery, "every", 1, "day interval for interval habits")
	addCmd.Flags().StringVar(&addAnchor, "anchor", "", "anchor date (YYYY-MM-DD) for interval habits")
	rootCmd.AddCommand(addCmd)
}

func parseFrequency(freq string, days []int, every int, anchor string) (habit.Frequency, error) {
	switch strings.ToLower(freq) {
	case "daily":
		return habit.Frequency{Kind: habit.FrequencyDaily}, nil
	case "weekly":
		weekdays := make([]time.Weekday, 0, len(days))
		for _, d := range days {
			if d < 0 || d > 6 {
				return habit.Frequency{}, fmt.Errorf("weekday %d out of range 0-6", d)
			}
			weekdays = append(weekdays, time.Weekday(d))
		}
		return habit.Frequency{Kind: habit.FrequencyWeekly, DaysOfWeek: weekdays}, nil
	case "interval":
		if every < 1 {
			return habit.Frequency{}, fmt.Errorf("--every must be at least 1, got %d", every)
		}
		f := habit.Frequency{Kind: habit.FrequencyInterval, IntervalDays: every}
		if anchor != "" {
			day, err := daykey.Parse(anchor)
			if err != nil {
				return habit.Frequency{}, err
			}
			f.AnchorDate = day
		}
		return f, nil
	default:
		return habit.Frequency{}, fmt.Errorf("unknown frequency %q (want daily, weekly or interval)", freq)
	}
}

func addHabit(cmd *cobra.Command, title string) error {
	freq, err := parseFrequency(addFreq, addDays, addEvery, addAnchor)
	if err != nil {
		return err
	}

	in := tracker.HabitInput{
		Title:     title,
		Type:      habit.Type(addType),
		Frequency: freq,
		ValueUnit: addUnit,
	}
	if cmd.Flags().Changed("target") {
		in.DefaultTarget = &addTarget
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	created, err := client.CreateHabit(cmd.Context(), in)
	if err != nil {
		return err
	}
	cmd.Printf("Added %q (%s)\n", created.Title, created.ID)
	return nil
}
