// ABOUTME: CLI command rendering the workout dashboard.
// ABOUTME: With --watch it re-renders whenever the data file changes on disk.
package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/dashboard"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var dashboardWatch bool

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show the workout dashboard",
	Long: `Show stats, recent sessions, today's training, and per-exercise totals.

With --watch the dashboard stays open and redraws whenever the data file is
rewritten, for example while the MCP server logs sets. Watching needs the
JSON backend.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !dashboardWatch {
			renderDashboard(out, dashboard.Build(store.Document(), time.Now()))
			return nil
		}

		file, ok := store.Backend().(*storage.JSONFile)
		if !ok {
			return errors.New("--watch needs the json backend")
		}

		ctx, cancel := signalContext()
		defer cancel()

		redraw := func() {
			fmt.Fprint(out, "\033[H\033[2J")
			renderDashboard(out, dashboard.Build(store.Document(), time.Now()))
			color.New(color.Faint).Fprintln(out, "\nWatching for changes, Ctrl-C to quit.")
		}
		redraw()

		return dashboard.Watch(ctx, file.Path(), func() {
			if err := store.Reload(); err != nil {
				logger.Warn().Err(err).Msg("reload failed")
				return
			}
			redraw()
		}, dashboard.WithLogger(logger))
	},
}

func renderDashboard(out io.Writer, s dashboard.Summary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)

	if s.Empty() {
		bold.Fprintf(out, "Welcome, %s!\n", s.Athlete)
		fmt.Fprintln(out, "No workouts yet. Start one with:")
		fmt.Fprintln(out, "  fittrack workout quick push")
		return
	}

	bold.Fprintf(out, "%s's training\n\n", s.Athlete)
	fmt.Fprintf(out, "  %s sessions   %s exercises   %s %s lifted   %s this week\n",
		green.Sprint(s.Stats.TotalSessions),
		green.Sprint(s.Stats.TotalExercises),
		green.Sprint(s.Stats.TotalVolume), s.WeightUnit,
		green.Sprint(s.Stats.WeeklyWorkouts))

	if len(s.Today) > 0 {
		fmt.Fprintln(out)
		bold.Fprintln(out, "Today")
		for _, ss := range s.Today {
			renderSessionLine(out, ss, s.WeightUnit)
		}
	}

	fmt.Fprintln(out)
	bold.Fprintln(out, "Recent")
	for _, ss := range s.Recent {
		renderSessionLine(out, ss, s.WeightUnit)
	}

	if len(s.Exercises) > 0 {
		fmt.Fprintln(out)
		bold.Fprintln(out, "Exercises")
		for _, e := range s.Exercises {
			fmt.Fprintf(out, "  %s %s %s\n",
				padRight(truncate(e.Name, 20), 20),
				faint.Sprint(padRight(e.MuscleGroup, 10)),
				faint.Sprintf("%d sets, best %s %s, volume %s",
					e.Sets, formatWeight(e.BestWeight), s.WeightUnit, formatWeight(e.Volume)))
		}
	}
}

func renderSessionLine(out io.Writer, ss dashboard.SessionSummary, unit string) {
	faint := color.New(color.Faint)
	when := ss.Date + " " + ss.Time
	if t, err := time.Parse(models.DateLayout, ss.Date); err == nil {
		when = t.Format("Mon Jan 2") + " " + ss.Time
	}
	fmt.Fprintf(out, "  %s %s %s %s\n",
		faint.Sprint(padRight(when, 16)),
		padRight(truncate(ss.Name, 22), 22),
		padRight(ss.WorkoutType, 8),
		faint.Sprintf("%d ex, %d sets, %s %s", ss.Exercises, ss.Sets, formatWeight(ss.Volume), unit))
}

func init() {
	dashboardCmd.Flags().BoolVarP(&dashboardWatch, "watch", "w", false, "redraw when the data file changes")
	rootCmd.AddCommand(dashboardCmd)
}
