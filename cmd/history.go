// history.go implements the "scribe history" command for snapshot inspection.

package cmd

import (
	"fmt"

	"github.com/jpl-au/scribe/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newHistoryCmd())
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <path>",
		Short: "List stored snapshots for a file",
		Long: `Show the undo snapshots recorded for a file, newest first. Each line
gives the sequence number (monotonic, never reused) and snapshot size.`,
		Args: cobra.ExactArgs(1),
		RunE: runHistory,
	}
}

func runHistory(c *cobra.Command, args []string) error {
	hist, closeHist, err := openHistory()
	if err != nil {
		return PrintJSONError(err)
	}
	defer closeHist()

	entries, err := hist.Entries(args[0])

	log.Event("cli:history", "history").Path(args[0]).Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("history %q: %w", args[0], err))
	}

	if JSON() {
		return PrintJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No edit history found for %s.\n", args[0])
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%6d\t%d bytes\n", e.Sequence, e.Size)
	}
	return nil
}
