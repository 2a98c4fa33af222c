// ABOUTME: CLI commands for exercises within a workout session.
// ABOUTME: Supports add and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var exerciseMuscle string

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage exercises in a session",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <session-id> <name>",
	Short: "Add an exercise to a session",
	Long: `Add an exercise to a session.

The muscle group is guessed for common lifts (Bench Press, Squat, Deadlift,
Pull-ups) and defaults to General otherwise.

Examples:
  fittrack exercise add session_1a2b3c4d "Bench Press"
  fittrack exercise add session_1a2b3c4d "Cable Fly" --muscle Chest`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := models.ExerciseInput{
			Name:        strings.TrimSpace(args[1]),
			MuscleGroup: strings.TrimSpace(exerciseMuscle),
		}
		if in.MuscleGroup == "" {
			in.MuscleGroup = models.MuscleGroupFor(in.Name)
		}
		if err := in.Validate(); err != nil {
			return err
		}

		id, ok := store.AddExercise(args[0], in.Name, in.MuscleGroup)
		if !ok {
			return notFound("workout", args[0])
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Added %s (%s)\n", in.Name, in.MuscleGroup)
		fmt.Fprintf(out, "  ID: %s\n", id)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <session-id> <exercise-id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise and its sets",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteExercise(args[0], args[1]) {
			return notFound("exercise", args[1])
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Deleted exercise %s\n", args[1])
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "muscle group (Chest, Back, Legs, Arms, Shoulders, Core)")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
