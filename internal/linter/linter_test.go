package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffLinter(t *testing.T) {
	t.Run("clean change has no issues", func(t *testing.T) {
		l := New()
		issues, err := l.LintDiff("a\nb\nc\n", "a\nB\nc\n", "/work/f.txt")
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("trailing whitespace on a changed line", func(t *testing.T) {
		l := New()
		issues, err := l.LintDiff("a\nb\nc\n", "a\nchanged \nc\n", "/work/f.txt")
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, 2, issues[0].Line)
		assert.Contains(t, issues[0].Message, "trailing whitespace")
	})

	t.Run("pre-existing issues outside the change are ignored", func(t *testing.T) {
		l := New()
		// Line 1 already had trailing whitespace; only line 3 changed
		issues, err := l.LintDiff("bad \nb\nc\n", "bad \nb\nnew line\n", "/work/f.txt")
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("conflict marker detected", func(t *testing.T) {
		l := New()
		issues, err := l.LintDiff("a\n", "a\n<<<<<<< HEAD\n", "/work/f.txt")
		require.NoError(t, err)
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0].Message, "conflict marker")
	})

	t.Run("custom checks", func(t *testing.T) {
		l := NewWithChecks(func(line string) (int, string, bool) {
			if line == "forbidden" {
				return 1, "forbidden line", true
			}
			return 0, "", false
		})
		issues, err := l.LintDiff("a\n", "a\nforbidden\n", "/work/f.txt")
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "forbidden line", issues[0].Message)
	})
}

func TestFormat(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		assert.Equal(t, "No linting issues found in the changes.", Format(nil))
	})

	t.Run("issues listed with position", func(t *testing.T) {
		got := Format([]Issue{{Line: 3, Column: 7, Message: "trailing whitespace"}})
		assert.Equal(t, "Linting issues found in the changes:\n- Line 3, Column 7: trailing whitespace", got)
	})
}
