// serve.go implements the "scribe serve" command for MCP server operation.
//
// Separated because serve has unique lifecycle requirements: unlike other
// commands that run and exit, serve blocks indefinitely handling MCP
// requests over stdio.

package cmd

import (
	"github.com/jpl-au/scribe/internal/config"
	"github.com/jpl-au/scribe/internal/mcp"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newServeCmd())
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Exposes the editor commands and shell execution as tools.

Use --history-dir to keep this server's undo snapshots separate:
  scribe serve --history-dir /tmp/agent-history`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	hist, closeHist, err := openHistory()
	if err != nil {
		return err
	}
	defer closeHist()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	size := MaxFileSize()
	if size == 0 {
		size = cfg.MaxFileSize()
	}

	return mcp.Serve(mcp.Options{
		History:     hist,
		MaxFileSize: size,
		Lint:        lintRequested(),
	})
}
