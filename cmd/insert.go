// insert.go implements the "scribe insert" command.

package cmd

import (
	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInsertCmd())
}

func newInsertCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "insert <path>",
		Short: "Insert text after a given line",
		Long: `Insert text into a file. --line counts the existing lines kept above
the insertion: 0 prepends, the file's line count appends.

  scribe insert /work/notes.txt --line 0 --new "header"
  scribe insert /work/notes.txt -l 3 -N "after line three"`,
		Args: cobra.ExactArgs(1),
		RunE: runInsert,
	}
	c.Flags().IntP("line", "l", 0, "Line to insert after (0 prepends)")
	c.Flags().StringP("new", "N", "", "Text to insert")
	_ = c.MarkFlagRequired("line")
	_ = c.MarkFlagRequired("new")
	return c
}

func runInsert(c *cobra.Command, args []string) error {
	line, _ := c.Flags().GetInt("line")
	newStr, _ := c.Flags().GetString("new")

	ed, closeEd, err := newEditor()
	if err != nil {
		return PrintJSONError(err)
	}
	defer closeEd()

	res := ed.Dispatch(editor.Arguments{
		Command:       editor.CmdInsert,
		Path:          args[0],
		InsertLine:    &line,
		NewStr:        &newStr,
		EnableLinting: lintRequested(),
	})

	log.Event("cli:insert", "edit").Path(args[0]).Detail("line", line).Write(resErr(res))

	return printResult(c, res)
}
