// Package mcp implements the Model Context Protocol server, exposing scribe
// operations to LLMs. This enables AI assistants to view, create, and edit
// files through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/history"
	"github.com/jpl-au/scribe/internal/linter"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Options configures the MCP server.
type Options struct {
	History     *history.Manager
	MaxFileSize int64
	Lint        bool
}

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients. Blocks until the client disconnects.
func Serve(opts Options) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	edOpts := editor.Options{
		MaxFileSize: opts.MaxFileSize,
		History:     opts.History,
	}
	if opts.Lint {
		edOpts.Linter = linter.New()
	}

	h := &handlers{ed: editor.New(edOpts), lint: opts.Lint}

	s := server.NewMCPServer(
		"scribe",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("scribe MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the editing engine.
type handlers struct {
	ed   *editor.Editor
	lint bool
}

// registerTools exposes scribe operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// View
	s.AddTool(
		mcp.NewTool("scribe_view",
			mcp.WithDescription("View a file numbered like cat -n, or list a directory two levels deep. Use view_range to window large files."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path to file or directory")),
			mcp.WithNumber("start_line", mcp.Description("First line to show (1-based)")),
			mcp.WithNumber("end_line", mcp.Description("Last line to show, -1 for end of file")),
		),
		h.view,
	)

	// Create
	s.AddTool(
		mcp.NewTool("scribe_create",
			mcp.WithDescription("Create a new file with the given content. Fails if the file already exists."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path for the new file")),
			mcp.WithString("file_text", mcp.Required(), mcp.Description("Content to write")),
		),
		h.create,
	)

	// Replace
	s.AddTool(
		mcp.NewTool("scribe_str_replace",
			mcp.WithDescription("Replace one exact occurrence of old_str with new_str. old_str must be unique in the file; include surrounding lines to disambiguate."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path to the file")),
			mcp.WithString("old_str", mcp.Required(), mcp.Description("Text to find (must appear exactly once)")),
			mcp.WithString("new_str", mcp.Description("Replacement text (omit to delete the match)")),
		),
		h.strReplace,
	)

	// Insert
	s.AddTool(
		mcp.NewTool("scribe_insert",
			mcp.WithDescription("Insert new_str after the given line. insert_line 0 prepends; the file's line count appends."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path to the file")),
			mcp.WithNumber("insert_line", mcp.Required(), mcp.Description("Line to insert after (0 prepends)")),
			mcp.WithString("new_str", mcp.Required(), mcp.Description("Text to insert")),
		),
		h.insert,
	)

	// Undo
	s.AddTool(
		mcp.NewTool("scribe_undo_edit",
			mcp.WithDescription("Undo the last edit to a file by restoring the snapshot taken before it. Repeat to step further back."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path to the file")),
		),
		h.undoEdit,
	)

	// Exec
	s.AddTool(
		mcp.NewTool("scribe_exec",
			mcp.WithDescription("Run a shell command via /bin/sh -c with a timeout and capped output."),
			mcp.WithString("command", mcp.Required(), mcp.Description("Command to run")),
			mcp.WithNumber("timeout", mcp.Description("Timeout in seconds (default 120)")),
		),
		h.exec,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("scribe_guide",
			mcp.WithDescription("Get help/guide content for scribe commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'editing', 'history') or empty for index")),
		),
		h.getGuide,
	)
}
