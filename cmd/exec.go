// exec.go implements the "scribe exec" command for running shell commands.

package cmd

import (
	"fmt"
	"time"

	"github.com/jpl-au/scribe/internal/log"
	"github.com/jpl-au/scribe/internal/shell"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExecCmd())
}

func newExecCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "exec <command>",
		Short: "Run a shell command with a timeout and capped output",
		Long: `Run a command via /bin/sh -c. Output is capped so a runaway command
cannot flood the caller; the exit code is reported rather than treated
as a failure.

  scribe exec "ls -la /work"
  scribe exec --timeout 10s "sleep 60"`,
		Args: cobra.ExactArgs(1),
		RunE: runExec,
	}
	c.Flags().Duration("timeout", shell.DefaultTimeout, "Kill the command after this long")
	return c
}

func runExec(c *cobra.Command, args []string) error {
	timeout, _ := c.Flags().GetDuration("timeout")

	start := time.Now()
	res, err := shell.Run(c.Context(), args[0], timeout)

	log.Event("cli:exec", "exec").
		Detail("command", args[0]).
		Detail("elapsed", time.Since(start).String()).
		Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(res)
	}

	if res.Stdout != "" {
		fmt.Fprint(out, res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprint(out, res.Stderr)
	}
	if res.ExitCode != 0 {
		c.SilenceUsage = true
		c.SilenceErrors = true
		fmt.Fprintf(out, "exit code: %d\n", res.ExitCode)
		return errFailed
	}
	return nil
}
