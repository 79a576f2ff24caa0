/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from flags.go to isolate cobra setup from flag definitions.
//
// Design: commands register themselves on the root command from their own
// files via init(). Editor construction happens per command run rather than
// in a PersistentPreRunE hook because bootstrap commands (guide, version,
// config) must work without a history store existing.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/scribe/internal/log"
	"github.com/spf13/cobra"
)

// errFailed signals a tool-level failure whose message has already been
// printed as part of the result output. Execute maps it to exit code 1
// without printing it again.
var errFailed = errors.New("command failed")

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Transactional plain-text file editor for autonomous agents",
	Long:  `A file editor with exact-match replace, line insertion, snippet feedback, and disk-backed undo history. Every result is a structured envelope an agent can parse.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits 1 on error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
