// create.go implements the "scribe create" command.

package cmd

import (
	"io"
	"os"

	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a new file with the given content",
		Long: `Create a file that does not exist yet. Content comes from --text or stdin.

  scribe create /work/notes.txt --text "first line"
  scribe create /work/notes.txt <<< "first line"

Existing files are never overwritten; edit them with replace or insert.`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
	c.Flags().StringP("text", "t", "", "File content (reads stdin when omitted)")
	return c
}

func runCreate(c *cobra.Command, args []string) error {
	text, _ := c.Flags().GetString("text")
	if !c.Flags().Changed("text") {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return PrintJSONError(err)
		}
		text = string(b)
	}

	ed, closeEd, err := newEditor()
	if err != nil {
		return PrintJSONError(err)
	}
	defer closeEd()

	res := ed.Dispatch(editor.Arguments{
		Command:  editor.CmdCreate,
		Path:     args[0],
		FileText: &text,
	})

	log.Event("cli:create", "create").Path(args[0]).Detail("bytes", len(text)).Write(resErr(res))

	return printResult(c, res)
}
