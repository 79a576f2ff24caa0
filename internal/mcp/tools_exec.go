// tools_exec.go implements the MCP tools for shell execution and guides.

package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jpl-au/scribe/guide"
	"github.com/jpl-au/scribe/internal/log"
	"github.com/jpl-au/scribe/internal/shell"
	"github.com/mark3labs/mcp-go/mcp"
)

// exec handles scribe_exec tool calls.
func (h *handlers) exec(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command, err := req.RequireString("command")
	if err != nil {
		return mcp.NewToolResultError("command is required"), nil //nolint:nilerr
	}

	timeout := shell.DefaultTimeout
	if secs := getInt(req, "timeout", 0); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	res, err := shell.Run(ctx, command, timeout)

	log.Event("mcp:exec", "exec").Detail("command", command).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	if res.Stdout != "" {
		b.WriteString(res.Stdout)
	}
	if res.Stderr != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "stderr:\n%s", res.Stderr)
	}
	if res.ExitCode != 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "exit code: %d", res.ExitCode)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// getGuide handles scribe_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return mcp.NewToolResultError(listErr.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("guide %q not found. Available: %s", topic, strings.Join(available, ", "))), nil
	}

	return mcp.NewToolResultText(content), nil
}
