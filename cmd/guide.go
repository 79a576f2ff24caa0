// guide.go implements the "scribe guide" command for documentation access.
//
// Guides are embedded in the binary via the guide package, so documentation
// is always available without external files. Terminal output gets glamour
// rendering for readability; pipe/redirect gets raw markdown for machine
// consumption and LLM context loading.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/scribe/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(newGuideCmd())
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the scribe usage guide",
		Long: `Outputs the scribe guide for LLMs and humans.

  scribe guide           # main guide
  scribe guide editing   # replace and insert in detail
  scribe guide history   # snapshots and undo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(out, rendered)
					return nil
				}
			}

			fmt.Fprint(out, content)
			return nil
		},
	}
}
