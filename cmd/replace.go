// replace.go implements the "scribe replace" command.

package cmd

import (
	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReplaceCmd())
}

func newReplaceCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "replace <path>",
		Short: "Replace a unique string in a file",
		Long: `Replace one exact occurrence of a string. The old string must appear
exactly once; include surrounding lines to disambiguate.

  scribe replace /work/notes.txt --old "draft" --new "final"
  scribe replace /work/notes.txt -O "line 2" -N ""   # delete the match`,
		Args: cobra.ExactArgs(1),
		RunE: runReplace,
	}
	c.Flags().StringP("old", "O", "", "Text to find (must be unique in the file)")
	c.Flags().StringP("new", "N", "", "Replacement text")
	_ = c.MarkFlagRequired("old")
	return c
}

func runReplace(c *cobra.Command, args []string) error {
	oldStr, _ := c.Flags().GetString("old")
	newStr, _ := c.Flags().GetString("new")

	ed, closeEd, err := newEditor()
	if err != nil {
		return PrintJSONError(err)
	}
	defer closeEd()

	arguments := editor.Arguments{
		Command:       editor.CmdStrReplace,
		Path:          args[0],
		OldStr:        &oldStr,
		EnableLinting: lintRequested(),
	}
	if c.Flags().Changed("new") {
		arguments.NewStr = &newStr
	}

	res := ed.Dispatch(arguments)

	log.Event("cli:replace", "edit").Path(args[0]).Write(resErr(res))

	return printResult(c, res)
}
