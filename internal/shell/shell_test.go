package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		res, err := Run(context.Background(), "echo hello", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, res.ExitCode)
		assert.Equal(t, "hello\n", res.Stdout)
		assert.Empty(t, res.Stderr)
	})

	t.Run("captures stderr", func(t *testing.T) {
		res, err := Run(context.Background(), "echo oops >&2", 0)
		require.NoError(t, err)
		assert.Equal(t, "oops\n", res.Stderr)
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		res, err := Run(context.Background(), "exit 3", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
	})

	t.Run("timeout kills the command", func(t *testing.T) {
		_, err := Run(context.Background(), "sleep 5", 100*time.Millisecond)
		require.Error(t, err)

		var timeoutErr *TimeoutError
		require.True(t, errors.As(err, &timeoutErr))
		assert.Contains(t, timeoutErr.Error(), "Command 'sleep 5' timed out after")
	})

	t.Run("shell pipelines work", func(t *testing.T) {
		res, err := Run(context.Background(), "printf 'a\\nb\\nc\\n' | wc -l", 0)
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, "3")
	})
}

func TestCheckToolInstalled(t *testing.T) {
	assert.True(t, CheckToolInstalled(context.Background(), "ls"))
	assert.False(t, CheckToolInstalled(context.Background(), "definitely-not-a-real-tool-name"))
}
