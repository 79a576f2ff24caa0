// undo.go implements the "scribe undo" command.

package cmd

import (
	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newUndoCmd())
}

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <path>",
		Short: "Restore the most recent snapshot of a file",
		Long: `Undo the last recorded edit to a file by restoring the snapshot taken
before it. Repeat to step further back. Each snapshot can be used once.`,
		Args: cobra.ExactArgs(1),
		RunE: runUndo,
	}
}

func runUndo(c *cobra.Command, args []string) error {
	ed, closeEd, err := newEditor()
	if err != nil {
		return PrintJSONError(err)
	}
	defer closeEd()

	res := ed.Dispatch(editor.Arguments{
		Command: editor.CmdUndoEdit,
		Path:    args[0],
	})

	log.Event("cli:undo", "edit").Path(args[0]).Write(resErr(res))

	return printResult(c, res)
}
