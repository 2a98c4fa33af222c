// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server so AI assistants can log workouts.
package main

import (
	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants like Claude log and review workouts through a
standardized protocol. The server communicates via stdin/stdout, so logs go to
stderr or to the "log_file" set in ~/.config/fittrack/config.json.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  start_workout     Start a session
  list_workouts     List sessions, newest first
  get_workout       Get a session with exercises and sets
  delete_workout    Delete a session
  add_exercise      Add an exercise to a session
  delete_exercise   Delete an exercise
  add_set           Log one or more identical sets
  update_set        Change a set's weight and/or reps
  delete_set        Delete a set
  get_stats         Summary counters

AVAILABLE RESOURCES:

  fittrack://stats    Summary counters
  fittrack://recent   Recent sessions and exercise totals
  fittrack://today    Today's sessions`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, logger)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		logger.Info().Str("backend", store.Backend().Name()).Msg("starting MCP server")
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
