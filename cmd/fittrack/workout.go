// ABOUTME: CLI commands for managing workout sessions.
// ABOUTME: Supports start, quick, list, show, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	startType    string
	listType     string
	workoutLimit int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout sessions",
	Long: `Track workout sessions.

A session is one trip to the gym. It holds exercises, and each exercise holds
numbered sets of weight x reps.

WORKFLOW:

  1. Start a session:     fittrack workout start "Leg Day" --type Legs
  2. Add an exercise:     fittrack exercise add <session-id> Squat
  3. Log sets:            fittrack set add <session-id> <exercise-id> 100 5
  4. Review it:           fittrack workout show <session-id>

COMMANDS:

  start    Start a new session
  quick    Start a session from a preset (push, pull, legs, cardio)
  list     List sessions, newest first
  show     View a session with its exercises and sets
  delete   Delete a session and everything in it`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start a new session",
	Long: `Start a new workout session dated now.

When no name is given the session is called "<Type> Workout".

Examples:
  fittrack workout start --type Push
  fittrack workout start "Leg Day" --type Legs`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wt := models.CanonicalWorkoutType(startType)
		name := models.DefaultSessionName(wt)
		if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
			name = strings.TrimSpace(args[0])
		}

		in := models.SessionInput{Name: name, WorkoutType: wt}
		if err := in.Validate(); err != nil {
			return err
		}

		id := store.CreateSession(in.Name, in.WorkoutType)
		printSessionStarted(cmd, id, in.Name, in.WorkoutType)
		return nil
	},
}

var workoutQuickCmd = &cobra.Command{
	Use:       "quick <push|pull|legs|cardio>",
	Short:     "Start a session from a preset",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"push", "pull", "legs", "cardio"},
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, ok := models.FindTemplate(args[0])
		if !ok {
			return fmt.Errorf("unknown preset: %s (use push, pull, legs, or cardio)", args[0])
		}

		id := store.CreateSession(tmpl.Name, tmpl.WorkoutType)
		printSessionStarted(cmd, id, tmpl.Name, tmpl.WorkoutType)
		return nil
	},
}

func printSessionStarted(cmd *cobra.Command, id, name, wt string) {
	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintf(out, "✓ Started %s (%s)\n", name, wt)
	fmt.Fprintf(out, "  ID: %s\n", id)
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var sessions []*models.Session
		all := store.ListSessions()
		for pair := all.Oldest(); pair != nil; pair = pair.Next() {
			s := pair.Value
			if listType != "" && !strings.EqualFold(s.WorkoutType, listType) {
				continue
			}
			sessions = append(sessions, s)
		}

		if len(sessions) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}

		models.SortByRecent(sessions)
		if workoutLimit > 0 && len(sessions) > workoutLimit {
			sessions = sessions[:workoutLimit]
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			fmt.Fprintf(out, "%s %s %s %s %s\n",
				faint.Sprint(s.ID),
				faint.Sprint(s.Date+" "+s.Time),
				padRight(s.WorkoutType, 8),
				padRight(truncate(s.Name, 24), 24),
				faint.Sprintf("%d exercises, %d sets", len(s.ExerciseList()), s.SetCount()))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show session details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := store.GetSession(args[0])
		if !ok {
			return notFound("workout", args[0])
		}
		unit := store.UserSettings().WeightUnit
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Workout: %s\n", s.Name)
		fmt.Fprintf(out, "ID: %s\n", s.ID)
		fmt.Fprintf(out, "Type: %s\n", s.WorkoutType)
		fmt.Fprintf(out, "Started: %s %s\n", s.Date, s.Time)
		fmt.Fprintf(out, "Status: %s\n", s.Status)

		exercises := s.ExerciseList()
		if len(exercises) == 0 {
			fmt.Fprintln(out, "\nNo exercises yet.")
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for _, e := range exercises {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s %s %s\n", bold.Sprint(e.Name), faint.Sprintf("(%s)", e.MuscleGroup), faint.Sprint(e.ID))
			for _, set := range e.SortedSets() {
				fmt.Fprintf(out, "  %s %s %s x %d  %s\n",
					faint.Sprint(padRight(models.SetID(set.SetNumber), 7)),
					padRight(formatWeight(set.Weight), 6),
					unit,
					set.Reps,
					faint.Sprintf("vol %s", formatWeight(set.Volume)))
			}
		}
		fmt.Fprintf(out, "\nSession volume: %s %s\n", formatWeight(s.TotalVolume()), unit)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <session-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteSession(args[0]) {
			return notFound("workout", args[0])
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Deleted workout %s\n", args[0])
		return nil
	},
}

func init() {
	workoutStartCmd.Flags().StringVarP(&startType, "type", "t", models.WorkoutCustom, "workout type (Push, Pull, Legs, Cardio, Custom)")
	workoutListCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by workout type")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutQuickCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
