// view.go implements the "scribe view" command.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newViewCmd())
}

func newViewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "view <path>",
		Short: "View a file with line numbers, or list a directory",
		Long: `Show file content numbered like cat -n, or list a directory two levels deep.

  scribe view /work/notes.txt
  scribe view /work/notes.txt -r 5:10
  scribe view /work/notes.txt -r 5:-1   # from line 5 to end
  scribe view /work`,
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}
	c.Flags().StringP("range", "r", "", "Line range to show (e.g., 5:10, -1 for end)")
	return c
}

func runView(c *cobra.Command, args []string) error {
	rangeSpec, _ := c.Flags().GetString("range")
	viewRange, err := parseViewRange(rangeSpec)
	if err != nil {
		return err
	}

	ed, closeEd, err := newEditor()
	if err != nil {
		return PrintJSONError(err)
	}
	defer closeEd()

	res := ed.Dispatch(editor.Arguments{
		Command:   editor.CmdView,
		Path:      args[0],
		ViewRange: viewRange,
	})

	log.Event("cli:view", "view").Path(args[0]).Write(resErr(res))

	return printResult(c, res)
}

// parseViewRange parses "start:end" into a two-element range.
// An empty spec returns nil (view the whole file).
func parseViewRange(spec string) ([]int, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q (expected start:end)", spec)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}
	return []int{start, end}, nil
}
