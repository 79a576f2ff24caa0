package log

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "cli:view",
			Action:  "view",
			Path:    "/work/notes.txt",
			Success: true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, path string
		var success int
		err = db.QueryRow("SELECT source, action, path, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &path, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:view", source)
		assert.Equal(t, "view", action)
		assert.Equal(t, "/work/notes.txt", path)
		assert.Equal(t, 1, success)
	})

	t.Run("builder writes failure from error", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		Event("cli:replace", "edit").
			Path("/work/notes.txt").
			Detail("occurrences", 2).
			Write(errors.New("Multiple occurrences"))

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg, detail string
		err = db.QueryRow("SELECT success, error, detail FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &detail)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "Multiple occurrences", errMsg)
		assert.Contains(t, detail, `"occurrences":2`)
	})

	t.Run("project is hashed", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/secret/location")
		Event("cli:view", "view").Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var project string
		err = db.QueryRow("SELECT project FROM log ORDER BY id DESC LIMIT 1").Scan(&project)
		require.NoError(t, err)
		assert.Len(t, project, 16)
		assert.NotContains(t, project, "secret")
	})

	t.Run("log without open is a no-op", func(t *testing.T) {
		Close()
		// Must not panic
		Log(Entry{Source: "cli:view", Action: "view"})
		Event("cli:view", "view").Write(nil)
	})
}
