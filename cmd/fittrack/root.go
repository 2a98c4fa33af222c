// ABOUTME: Root Cobra command for the fittrack CLI.
// ABOUTME: Opens config, logger, and workout store in PersistentPreRunE and closes them after.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/logging"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	dataPath string

	cfg       *config.Config
	logger    = zerolog.Nop()
	logCloser io.Closer
	store     *storage.Store
)

// annotationNoStore marks commands (and their children) that manage their
// own backends or none at all.
const annotationNoStore = "fittrack/no-store"

func needsStore(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "version", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoStore] == "true" {
			return false
		}
	}
	return true
}

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Strength training log",
	Long: `Fittrack is a CLI tool for logging strength training sessions.

HOW IT IS ORGANIZED:

  Session    one workout (Push, Pull, Legs, Cardio, Custom)
  Exercise   a movement within a session (Bench Press, Squat, ...)
  Set        one weight x reps entry within an exercise

QUICK START:

  $ fittrack workout quick push                        # Start "Quick Push"
  $ fittrack exercise add session_1a2b3c4d "Bench Press"
  $ fittrack set add session_1a2b3c4d exercise_5e6f7a8b 80 8 --count 3
  $ fittrack dashboard                                 # See where you stand

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Workouts are kept in one JSON document at
  ~/.local/share/fittrack/fitness_data.json. Set "backend" to "sqlite" or
  "charm" in ~/.config/fittrack/config.json to store it elsewhere, or pass
  --data to point at a specific JSON file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsStore(cmd) {
			return nil
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "workout data file (JSON backend)")
}

// loadConfig reads the config file and builds the logger.
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err = logging.New(logging.Options{
		Level: cfg.GetLogLevel(),
		File:  cfg.GetLogFile(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func openStore() error {
	if err := loadConfig(); err != nil {
		return err
	}

	var backend storage.Backend
	if dataPath != "" {
		backend = storage.NewJSONFile(config.ExpandPath(dataPath))
	} else {
		var err error
		backend, err = cfg.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", cfg.GetBackend(), err)
		}
	}

	store = storage.Open(backend, storage.WithLogger(logger))
	store.EnsureInitialized()
	logger.Debug().Str("backend", backend.Name()).Msg("store opened")
	return nil
}

func closeStore() error {
	var err error
	if store != nil {
		err = multierr.Append(err, store.Close())
		store = nil
	}
	if logCloser != nil {
		err = multierr.Append(err, logCloser.Close())
		logCloser = nil
	}
	return err
}
