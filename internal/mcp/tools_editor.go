// tools_editor.go implements the MCP tools for file viewing and editing.
//
// Each handler maps tool parameters onto editing engine arguments and
// returns the engine's result text. Parameter presence checks beyond the
// path live in the engine so CLI and MCP callers get identical messages.

package mcp

import (
	"context"

	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// view handles scribe_view tool calls.
func (h *handlers) view(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	var viewRange []int
	if start := optInt(req, "start_line"); start != nil {
		viewRange = []int{*start, getInt(req, "end_line", -1)}
	}

	res := h.ed.Dispatch(editor.Arguments{
		Command:   editor.CmdView,
		Path:      path,
		ViewRange: viewRange,
	})

	log.Event("mcp:view", "view").Path(path).Write(resErr(res))

	return toolResult(res), nil
}

// create handles scribe_create tool calls.
func (h *handlers) create(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	res := h.ed.Dispatch(editor.Arguments{
		Command:  editor.CmdCreate,
		Path:     path,
		FileText: optString(req, "file_text"),
	})

	log.Event("mcp:create", "create").Path(path).Write(resErr(res))

	return toolResult(res), nil
}

// strReplace handles scribe_str_replace tool calls.
func (h *handlers) strReplace(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	res := h.ed.Dispatch(editor.Arguments{
		Command:       editor.CmdStrReplace,
		Path:          path,
		OldStr:        optString(req, "old_str"),
		NewStr:        optString(req, "new_str"),
		EnableLinting: h.lint,
	})

	log.Event("mcp:str_replace", "edit").Path(path).Write(resErr(res))

	return toolResult(res), nil
}

// insert handles scribe_insert tool calls.
func (h *handlers) insert(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	res := h.ed.Dispatch(editor.Arguments{
		Command:       editor.CmdInsert,
		Path:          path,
		InsertLine:    optInt(req, "insert_line"),
		NewStr:        optString(req, "new_str"),
		EnableLinting: h.lint,
	})

	log.Event("mcp:insert", "edit").Path(path).Write(resErr(res))

	return toolResult(res), nil
}

// undoEdit handles scribe_undo_edit tool calls.
func (h *handlers) undoEdit(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	res := h.ed.Dispatch(editor.Arguments{
		Command: editor.CmdUndoEdit,
		Path:    path,
	})

	log.Event("mcp:undo_edit", "edit").Path(path).Write(resErr(res))

	return toolResult(res), nil
}
