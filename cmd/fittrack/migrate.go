// ABOUTME: CLI command for copying workout data between storage backends.
// ABOUTME: Moves the whole document from one backend (json, sqlite, charm) to another.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:         "migrate",
	Short:       "Copy workout data between backends",
	Annotations: map[string]string{annotationNoStore: "true"},
	Long: `Copy the workout document from one storage backend to another.

BACKENDS:

  json     ~/.local/share/fittrack/fitness_data.json (or --data)
  sqlite   ~/.local/share/fittrack/fittrack.db
  charm    Charm KV, synced through your Charm account

IMPORTANT:

  - The destination must be empty; nothing is overwritten
  - The source is left untouched
  - Run with --dry-run first to see what would be copied
  - Set "backend" in ~/.config/fittrack/config.json afterwards to switch

USAGE:

  fittrack migrate --to sqlite --dry-run   # Preview
  fittrack migrate --to sqlite             # Copy json -> sqlite
  fittrack migrate --from sqlite --to charm`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination are both %s", migrateFrom)
		}
		if err := loadConfig(); err != nil {
			return err
		}

		src, err := openMigrateBackend(migrateFrom)
		if err != nil {
			return err
		}
		defer func() { err = multierr.Append(err, src.Close()) }()

		out := cmd.OutOrStdout()

		if migrateDryRun {
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			data, err := src.Load()
			if err != nil {
				return fmt.Errorf("read %s: %w", migrateFrom, err)
			}
			summary := &storage.MigrateSummary{}
			if len(data) > 0 {
				doc, err := storage.ParseDocument(data)
				if err != nil {
					return fmt.Errorf("decode %s: %w", migrateFrom, err)
				}
				for _, s := range doc.SessionList() {
					summary.Sessions++
					for _, e := range s.ExerciseList() {
						summary.Exercises++
						summary.Sets += len(e.SetList())
					}
				}
			}
			printMigrateSummary(cmd, "Would copy", summary)
			return nil
		}

		dst, err := openMigrateBackend(migrateTo)
		if err != nil {
			return err
		}
		defer func() { err = multierr.Append(err, dst.Close()) }()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Migrated %s → %s\n", src.Name(), dst.Name())
		printMigrateSummary(cmd, "Copied", summary)
		return nil
	},
}

// openMigrateBackend honours --data for the json backend.
func openMigrateBackend(name string) (storage.Backend, error) {
	if name == config.BackendJSON && dataPath != "" {
		return storage.NewJSONFile(config.ExpandPath(dataPath)), nil
	}
	backend, err := cfg.OpenNamedBackend(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", name, err)
	}
	return backend, nil
}

func printMigrateSummary(cmd *cobra.Command, verb string, s *storage.MigrateSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s:\n", verb)
	fmt.Fprintf(out, "  Sessions:  %d\n", s.Sessions)
	fmt.Fprintf(out, "  Exercises: %d\n", s.Exercises)
	fmt.Fprintf(out, "  Sets:      %d\n", s.Sets)
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", config.BackendJSON, "source backend (json, sqlite, charm)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", config.BackendSQLite, "destination backend (json, sqlite, charm)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
