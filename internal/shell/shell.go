// Package shell runs external commands on behalf of the editor's callers:
// synchronous execution with a timeout that kills the process and reports
// elapsed time, and output capping so a runaway command cannot flood the
// caller or the process heap.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/jpl-au/scribe/internal/snippet"
)

// DefaultTimeout bounds command execution when the caller sets none.
const DefaultTimeout = 120 * time.Second

// MaxOutputBytes is the hard cap on bytes retained from stdout and stderr
// combined before truncation notices apply.
const MaxOutputBytes = 1024 * 1024 // 1 MiB

// Result carries the outcome of a completed command.
type Result struct {
	ExitCode int
	Stdout   string // possibly truncated, with notice
	Stderr   string // possibly truncated, with notice
	Elapsed  time.Duration
}

// TimeoutError reports a command killed after exceeding its timeout.
type TimeoutError struct {
	Cmd     string
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Command '%s' timed out after %.2f seconds", e.Cmd, e.Elapsed.Seconds())
}

// Run executes command through the shell, waiting at most timeout
// (DefaultTimeout when zero). On expiry the process is killed and a
// TimeoutError reports the elapsed time. A non-zero exit status is not an
// error; it is reported in Result.ExitCode.
func Run(ctx context.Context, command string, timeout time.Duration) (Result, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		return Result{Elapsed: elapsed}, &TimeoutError{Cmd: command, Elapsed: elapsed}
	}

	res := Result{
		Stdout:  truncate(stdout.Bytes()),
		Stderr:  truncate(stderr.Bytes()),
		Elapsed: elapsed,
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("running command: %w", err)
	}
	return res, nil
}

// CheckToolInstalled reports whether a tool responds to --version.
func CheckToolInstalled(ctx context.Context, name string) bool {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, name, "--version").Run() == nil
}

// truncate caps a stream at MaxOutputBytes then applies the response-size
// notice used for file content.
func truncate(b []byte) string {
	if len(b) > MaxOutputBytes {
		b = b[:MaxOutputBytes]
	}
	return snippet.Truncate(string(b), snippet.MaxResponseLen, snippet.TruncateNotice)
}
