package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/history"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func newTestHandlers() *handlers {
	return &handlers{
		ed: editor.New(editor.Options{
			History: history.NewManager(history.NewMemoryKV(), 0),
		}),
	}
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestParamExtraction(t *testing.T) {
	t.Run("getString", func(t *testing.T) {
		req := newRequest(map[string]any{"path": "/work/f.txt"})
		assert.Equal(t, "/work/f.txt", getString(req, "path", ""))
		assert.Equal(t, "fallback", getString(req, "missing", "fallback"))
	})

	t.Run("optString distinguishes absent from empty", func(t *testing.T) {
		req := newRequest(map[string]any{"new_str": ""})
		v := optString(req, "new_str")
		require.NotNil(t, v)
		assert.Equal(t, "", *v)
		assert.Nil(t, optString(req, "old_str"))
	})

	t.Run("optInt converts JSON numbers", func(t *testing.T) {
		req := newRequest(map[string]any{"insert_line": float64(3)})
		v := optInt(req, "insert_line")
		require.NotNil(t, v)
		assert.Equal(t, 3, *v)
		assert.Nil(t, optInt(req, "missing"))
	})

	t.Run("getInt default", func(t *testing.T) {
		req := newRequest(map[string]any{})
		assert.Equal(t, 42, getInt(req, "missing", 42))
	})
}

func TestToolHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("create then view", func(t *testing.T) {
		h := newTestHandlers()
		p := filepath.Join(t.TempDir(), "f.txt")

		res, err := h.create(ctx, newRequest(map[string]any{"path": p, "file_text": "hello\n"}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, "File created successfully at: "+p, textOf(t, res))

		res, err = h.view(ctx, newRequest(map[string]any{"path": p}))
		require.NoError(t, err)
		assert.Contains(t, textOf(t, res), "     1\thello")
	})

	t.Run("view with range", func(t *testing.T) {
		h := newTestHandlers()
		p := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(p, []byte("a\nb\nc\n"), 0o644))

		res, err := h.view(ctx, newRequest(map[string]any{"path": p, "start_line": float64(2), "end_line": float64(3)}))
		require.NoError(t, err)
		got := textOf(t, res)
		assert.Contains(t, got, "     2\tb")
		assert.NotContains(t, got, "     1\ta")
	})

	t.Run("replace and undo", func(t *testing.T) {
		h := newTestHandlers()
		p := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(p, []byte("line 1\nline 2\n"), 0o644))

		res, err := h.strReplace(ctx, newRequest(map[string]any{"path": p, "old_str": "line 2", "new_str": "changed"}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, textOf(t, res), "has been edited")

		res, err = h.undoEdit(ctx, newRequest(map[string]any{"path": p}))
		require.NoError(t, err)
		assert.False(t, res.IsError)

		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "line 1\nline 2\n", string(b))
	})

	t.Run("insert", func(t *testing.T) {
		h := newTestHandlers()
		p := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(p, []byte("a\nc\n"), 0o644))

		res, err := h.insert(ctx, newRequest(map[string]any{"path": p, "insert_line": float64(1), "new_str": "b"}))
		require.NoError(t, err)
		assert.False(t, res.IsError)

		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\nc\n", string(b))
	})

	t.Run("editor errors become tool errors", func(t *testing.T) {
		h := newTestHandlers()
		p := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(p, []byte("x\n"), 0o644))

		res, err := h.strReplace(ctx, newRequest(map[string]any{"path": p, "old_str": "absent", "new_str": "y"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, textOf(t, res), "did not appear verbatim")
	})

	t.Run("missing path", func(t *testing.T) {
		h := newTestHandlers()
		res, err := h.view(ctx, newRequest(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("exec", func(t *testing.T) {
		h := newTestHandlers()
		res, err := h.exec(ctx, newRequest(map[string]any{"command": "echo hi"}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, textOf(t, res), "hi")
	})

	t.Run("guide index", func(t *testing.T) {
		h := newTestHandlers()
		res, err := h.getGuide(ctx, newRequest(map[string]any{}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, textOf(t, res), "scribe")
	})

	t.Run("unknown guide lists available", func(t *testing.T) {
		h := newTestHandlers()
		res, err := h.getGuide(ctx, newRequest(map[string]any{"topic": "nope"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, textOf(t, res), "Available:")
	})
}
