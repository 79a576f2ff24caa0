package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jpl-au/scribe/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommand(t *testing.T) {
	t.Run("with text flag", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.path("notes.txt")

		out := env.run("create", p, "--text", "hello\n", "--plain")
		env.contains(out, "File created successfully at: "+p)
		assert.Equal(t, "hello\n", env.read("notes.txt"))
	})

	t.Run("from stdin", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.path("notes.txt")

		env.runStdin("from stdin\n", "create", p, "--plain")
		assert.Equal(t, "from stdin\n", env.read("notes.txt"))
	})

	t.Run("existing file fails with nonzero exit", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("notes.txt", "already\n")

		out, err := env.runErr("create", p, "--text", "x", "--plain")
		require.Error(t, err)
		env.contains(out, "ERROR:")
		env.contains(out, "File already exists at: "+p)
	})

	t.Run("relative path rejected", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("create", "notes.txt", "--text", "x", "--plain")
		require.Error(t, err)
		env.contains(out, "The path should be an absolute path")
	})
}

func TestViewCommand(t *testing.T) {
	t.Run("whole file", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "line 1\nline 2\n")

		out := env.run("view", p, "--plain")
		env.contains(out, "Here's the result of running `cat -n` on "+p+":")
		env.contains(out, "     1\tline 1")
		env.contains(out, "     2\tline 2")
	})

	t.Run("range flag", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "a\nb\nc\n")

		out := env.run("view", p, "-r", "2:3", "--plain")
		env.contains(out, "     2\tb")
		assert.NotContains(t, out, "     1\ta")
	})

	t.Run("open-ended range", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "a\nb\nc\n")

		out := env.run("view", p, "-r", "2:-1", "--plain")
		env.contains(out, "     3\tc")
	})

	t.Run("bad range spec", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "a\n")

		out, err := env.runErr("view", p, "-r", "5", "--plain")
		require.Error(t, err)
		env.contains(out, "expected start:end")
	})

	t.Run("directory", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "a\n")

		out := env.run("view", env.dir, "--plain")
		env.contains(out, "up to 2 levels deep in "+env.dir)
		env.contains(out, "a.txt")
	})
}

func TestReplaceCommand(t *testing.T) {
	t.Run("edits the file", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "line 1\nline 2\nline 3\n")

		out := env.run("replace", p, "--old", "line 2", "--new", "replaced line", "--plain")
		env.contains(out, "The file "+p+" has been edited.")
		env.contains(out, "     2\treplaced line")
		assert.Equal(t, "line 1\nreplaced line\nline 3\n", env.read("f.txt"))
	})

	t.Run("ambiguous old string fails", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "line\nline\nother")

		out, err := env.runErr("replace", p, "--old", "line", "--new", "x", "--plain")
		require.Error(t, err)
		env.contains(out, "Multiple occurrences of old_str `line` in lines [1, 2].")
		assert.Equal(t, "line\nline\nother", env.read("f.txt"))
	})

	t.Run("lint flag reports on changes", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "line 1\nline 2\n")

		out := env.run("replace", p, "--old", "line 2", "--new", "messy  ", "--lint", "--plain")
		env.contains(out, "Linting issues found in the changes:")
		env.contains(out, "trailing whitespace")
	})
}

func TestInsertCommand(t *testing.T) {
	env := newTestEnv(t)
	p := env.write("f.txt", "a\nc\n")

	out := env.run("insert", p, "--line", "1", "--new", "b", "--plain")
	assert.Contains(t, out, "has been edited")
	assert.Equal(t, "a\nb\nc\n", env.read("f.txt"))
}

func TestUndoCommand(t *testing.T) {
	t.Run("undoes across process invocations", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "v1\n")

		env.run("replace", p, "--old", "v1", "--new", "v2", "--plain")
		assert.Equal(t, "v2\n", env.read("f.txt"))

		out := env.run("undo", p, "--plain")
		env.contains(out, "Last edit to "+p+" undone successfully.")
		assert.Equal(t, "v1\n", env.read("f.txt"))
	})

	t.Run("no history", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "never edited\n")

		out, err := env.runErr("undo", p, "--plain")
		require.Error(t, err)
		env.contains(out, "No edit history found for "+p+".")
	})
}

func TestHistoryCommand(t *testing.T) {
	t.Run("lists snapshots", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "v1\n")

		env.run("replace", p, "--old", "v1", "--new", "v2", "--plain")
		env.run("replace", p, "--old", "v2", "--new", "v3", "--plain")

		out := env.run("history", p, "--plain")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 2)
		env.contains(out, "bytes")
	})

	t.Run("empty history", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "x\n")

		out := env.run("history", p, "--plain")
		env.contains(out, "No edit history found for "+p+".")
	})
}

func TestExecCommand(t *testing.T) {
	t.Run("stdout passthrough", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("exec", "echo hello", "--plain")
		env.contains(out, "hello")
	})

	t.Run("nonzero exit propagates", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("exec", "exit 4", "--plain")
		require.Error(t, err)
		env.contains(out, "exit code: 4")
	})

	t.Run("timeout", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("exec", "--timeout", "200ms", "sleep 5", "--plain")
		require.Error(t, err)
		env.contains(out, "timed out after")
	})
}

func TestOutputModes(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.path("f.txt")

		out := env.run("create", p, "--text", "hello\n", "-o", "json")
		var res result.ToolResult
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &res))
		assert.Equal(t, p, res.Path)
		assert.Contains(t, res.Output, "File created successfully")
	})

	t.Run("envelope when stdout is not a terminal", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.path("f.txt")

		out := env.run("create", p, "--text", "hello\n")
		res, ok := result.Extract(out)
		require.True(t, ok, "expected enveloped output, got: %s", out)
		assert.Equal(t, p, res.Path)
	})

	t.Run("json error objects", func(t *testing.T) {
		env := newTestEnv(t)
		p := env.write("f.txt", "x\n")

		out, err := env.runErr("replace", p, "--old", "absent", "--new", "y", "-o", "json")
		require.Error(t, err)
		env.contains(out, `"error"`)
		env.contains(out, "did not appear verbatim")
	})
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")
}

func TestGuideCommand(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide")
		env.contains(out, "scribe")
	})

	t.Run("topic", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide", "history")
		env.contains(out, "undo")
	})

	t.Run("unknown topic lists available", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("guide", "nope")
		require.Error(t, err)
		env.contains(out, "Available:")
	})
}

func TestHistoryDirFlag(t *testing.T) {
	// Two separate history directories do not see each other's snapshots.
	env := newTestEnv(t)
	p := env.write("f.txt", "v1\n")

	env.run("replace", p, "--old", "v1", "--new", "v2", "--history-dir", env.path("h1"), "--plain")

	out, err := env.runErr("undo", p, "--history-dir", env.path("h2"), "--plain")
	require.Error(t, err)
	env.contains(out, "No edit history found for "+p+".")

	env.run("undo", p, "--history-dir", env.path("h1"), "--plain")
	assert.Equal(t, "v1\n", env.read("f.txt"))
}
