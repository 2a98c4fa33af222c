// ABOUTME: CLI commands for exporting and importing workout data.
// ABOUTME: Supports JSON, YAML, and Markdown export and JSON import.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export workout data",
	Long: `Export workout data in various formats.

FORMATS:

  json       The full document, exactly as stored (suitable for backup/restore)
  yaml       Flattened, human-readable listing
  markdown   One table per session (for notes or sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  fittrack export json                  # Print the document
  fittrack export json -o backup.json   # Save a backup
  fittrack export markdown -o log.md    # Training log as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := store.Document()
		now := time.Now()

		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = storage.ExportJSON(doc)
		case "yaml":
			data, err = storage.ExportYAML(doc, now)
		case "markdown", "md":
			data = []byte(storage.ExportMarkdown(doc, now))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workout data from JSON",
	Long: `Import sessions from a JSON file written by 'fittrack export json'.

Sessions whose ID already exists are skipped, so importing the same backup
twice is harmless. Stats are recomputed afterwards.

EXAMPLES:

  fittrack import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		doc, err := storage.ParseDocument(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		summary, err := store.Import(doc)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Imported from %s\n", filename)
		fmt.Fprintf(out, "  Sessions:  %d\n", summary.Sessions)
		fmt.Fprintf(out, "  Exercises: %d\n", summary.Exercises)
		fmt.Fprintf(out, "  Sets:      %d\n", summary.Sets)
		if summary.Skipped > 0 {
			color.New(color.FgYellow).Fprintf(out, "  Skipped %d existing sessions\n", summary.Skipped)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
