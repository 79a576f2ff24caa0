// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters
// from MCP's generic argument map. These helpers provide safe defaults when
// optional parameters are missing.
//
// Design: We use permissive extraction (return default on error) rather
// than strict validation because LLMs frequently omit optional parameters
// or provide them in unexpected formats; returning sensible defaults keeps
// the tool usable rather than failing with type errors the LLM may
// struggle to interpret. Required-parameter checks stay in the editing
// engine, which produces the instructive messages the LLM needs.

package mcp

import (
	"errors"

	"github.com/jpl-au/scribe/internal/result"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// optString extracts a string parameter, distinguishing absent from empty.
// Returns nil when the parameter is not present in the argument map.
func optString(req mcp.CallToolRequest, name string) *string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := args[name].(string); ok {
		return &v
	}
	return nil
}

// optInt extracts an integer parameter, distinguishing absent from zero.
// JSON numbers decode as float64, so the assertion goes through float64.
func optInt(req mcp.CallToolRequest, name string) *int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := args[name].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}

// getInt extracts an integer parameter from the MCP request arguments,
// returning the default when missing or not a number.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	if v := optInt(req, name); v != nil {
		return *v
	}
	return def
}

// toolResult converts an editing result into an MCP tool result. Failures
// use MCP's error result mechanism so the LLM gets actionable feedback it
// can retry on, rather than an opaque protocol error.
func toolResult(res result.ToolResult) *mcp.CallToolResult {
	if !res.Ok() {
		return mcp.NewToolResultError(res.Error)
	}
	return mcp.NewToolResultText(res.Output)
}

// resErr converts a failed result into an error for audit logging.
func resErr(res result.ToolResult) error {
	if res.Ok() {
		return nil
	}
	return errors.New(res.Error)
}
