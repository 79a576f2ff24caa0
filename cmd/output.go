// output.go renders tool results to the selected output mode.
//
// Separated from flags.go because mode selection has behaviour beyond flag
// reads: terminal detection decides between human text and the tagged
// envelope that agents locate in surrounding output.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jpl-au/scribe/internal/result"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTTY reports whether stdout is a terminal. Overridable for tests.
var isTTY = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printResult writes a tool result in the active output mode and returns
// errFailed when the result carries an error, so the process exits nonzero.
// Error text is part of the result output, so cobra's own printing is
// silenced here.
func printResult(c *cobra.Command, res result.ToolResult) error {
	c.SilenceUsage = true
	c.SilenceErrors = true

	switch {
	case JSON():
		if err := PrintJSON(res); err != nil {
			return err
		}
	case !plain && !isTTY():
		env, err := res.Envelope()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, env)
	default:
		fmt.Fprintln(out, res.Text())
	}

	if !res.Ok() {
		return errFailed
	}
	return nil
}

// resErr converts a failed result into an error for audit logging.
func resErr(res result.ToolResult) error {
	if res.Ok() {
		return nil
	}
	return errors.New(res.Error)
}
