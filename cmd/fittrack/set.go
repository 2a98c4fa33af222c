// ABOUTME: CLI commands for sets within an exercise.
// ABOUTME: Supports add (optionally several identical sets), update, and delete.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	setCount  int
	setWeight float64
	setReps   int
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Manage sets in an exercise",
	Long: `Log, correct, and remove sets.

Set IDs look like set_1, set_2, ... and are never reused within an exercise,
so deleting set_2 and adding another set yields set_4, not set_2.`,
}

var setAddCmd = &cobra.Command{
	Use:   "add <session-id> <exercise-id> <weight> <reps>",
	Short: "Add one or more sets",
	Long: fmt.Sprintf(`Add a set of <weight> x <reps> to an exercise. The exercise's previous
set is shown first so you can match or beat it.

Use --count to log several identical sets at once (1 to %d).

Examples:
  fittrack set add session_1a2b3c4d exercise_5e6f7a8b 100 5
  fittrack set add session_1a2b3c4d exercise_5e6f7a8b 60 12 --count 3`, models.MaxBatchSets),
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[2])
		}
		reps, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[3])
		}

		in := models.SetInput{Weight: weight, Reps: reps, Count: setCount}
		if err := in.Validate(); err != nil {
			return err
		}

		unit := store.UserSettings().WeightUnit
		out := cmd.OutOrStdout()
		if last := previousSet(args[0], args[1]); last != nil {
			color.New(color.Faint).Fprintf(out, "Previous: %s %s x %d\n", formatWeight(last.Weight), unit, last.Reps)
		}
		green := color.New(color.FgGreen)
		for i := 0; i < in.Count; i++ {
			id, ok := store.AddSet(args[0], args[1], in.Weight, in.Reps)
			if !ok {
				return notFound("exercise", args[1])
			}
			green.Fprintf(out, "✓ %s: %s %s x %d\n", id, formatWeight(in.Weight), unit, in.Reps)
		}
		return nil
	},
}

var setUpdateCmd = &cobra.Command{
	Use:   "update <session-id> <exercise-id> <set-id>",
	Short: "Change a set's weight and/or reps",
	Long: `Change the weight and/or reps of an existing set. Flags left out keep
their current value, and the set's volume is recomputed.

Examples:
  fittrack set update session_1a2b3c4d exercise_5e6f7a8b set_2 --reps 6
  fittrack set update session_1a2b3c4d exercise_5e6f7a8b set_2 --weight 102.5`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var upd models.SetUpdate
		if cmd.Flags().Changed("weight") {
			w := setWeight
			upd.Weight = &w
		}
		if cmd.Flags().Changed("reps") {
			r := setReps
			upd.Reps = &r
		}
		if err := upd.Validate(); err != nil {
			return err
		}

		if !store.UpdateSet(args[0], args[1], args[2], upd.Weight, upd.Reps) {
			return notFound("set", args[2])
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Updated %s\n", args[2])
		return nil
	},
}

var setDeleteCmd = &cobra.Command{
	Use:     "delete <session-id> <exercise-id> <set-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a set",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteSet(args[0], args[1], args[2]) {
			return notFound("set", args[2])
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[2])
		return nil
	},
}

// previousSet returns the most recent set of an exercise, or nil.
func previousSet(sessionID, exerciseID string) *models.Set {
	session, ok := store.GetSession(sessionID)
	if !ok {
		return nil
	}
	exercise, ok := session.ExerciseMap().Get(exerciseID)
	if !ok || exercise == nil {
		return nil
	}
	return exercise.LastSet()
}

func init() {
	setAddCmd.Flags().IntVarP(&setCount, "count", "c", 1, fmt.Sprintf("number of identical sets to add (1-%d)", models.MaxBatchSets))
	setUpdateCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "new weight")
	setUpdateCmd.Flags().IntVarP(&setReps, "reps", "r", 0, "new reps")

	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setUpdateCmd)
	setCmd.AddCommand(setDeleteCmd)
	rootCmd.AddCommand(setCmd)
}
