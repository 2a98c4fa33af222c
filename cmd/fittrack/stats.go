// ABOUTME: CLI command for the summary counters.
// ABOUTME: Prints sessions, exercises, total volume, and this week's workouts.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary counters",
	Long: `Show the counters kept alongside your workouts.

  Sessions      every session ever started
  Exercises     exercises across all sessions
  Volume        sum of weight x reps over every set
  This week     sessions dated today or in the previous six days`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := store.AppStats()
		unit := store.UserSettings().WeightUnit
		out := cmd.OutOrStdout()
		label := color.New(color.Faint)

		fmt.Fprintf(out, "%s %d\n", label.Sprint(padRight("Sessions", 12)), stats.TotalSessions)
		fmt.Fprintf(out, "%s %d\n", label.Sprint(padRight("Exercises", 12)), stats.TotalExercises)
		fmt.Fprintf(out, "%s %d %s\n", label.Sprint(padRight("Volume", 12)), stats.TotalVolume, unit)
		fmt.Fprintf(out, "%s %d\n", label.Sprint(padRight("This week", 12)), stats.WeeklyWorkouts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
