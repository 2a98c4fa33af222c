// ABOUTME: Entry point for the fittrack CLI.
// ABOUTME: Invokes the root Cobra command and releases the store on exit.
package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
)

func main() {
	// PersistentPostRunE is skipped when a command fails, so close here too.
	err := multierr.Append(rootCmd.Execute(), closeStore())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
