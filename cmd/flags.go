/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: flags are defined as package-level variables and bound to the
// root command. Accessors are provided so command files and tests can read
// flag values without coupling to cobra internals.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output      string
	historyDir  string
	maxFileSize int64
	lint        bool
	plain       bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Lint returns the lint flag value.
func Lint() bool { return lint }

// HistoryDir returns the explicit history directory if set.
// Priority: --history-dir flag > SCRIBE_HISTORY_DIR env var > empty (use config).
func HistoryDir() string {
	if historyDir != "" {
		return historyDir
	}
	return os.Getenv("SCRIBE_HISTORY_DIR")
}

// MaxFileSize returns the max file size flag value; 0 means use config.
func MaxFileSize() int64 { return maxFileSize }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVar(&historyDir, "history-dir", "", "Edit history directory (default from config)")
	rootCmd.PersistentFlags().Int64Var(&maxFileSize, "max-file-size", 0, "Maximum editable file size in bytes (default from config)")
	rootCmd.PersistentFlags().BoolVar(&lint, "lint", false, "Lint changed lines after edits")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Plain text output even when stdout is not a terminal")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
