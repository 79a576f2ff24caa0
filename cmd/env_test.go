// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> editing engine -> history store -> SQLite.
// The editing algorithms, validation, and history semantics have their own
// unit tests in internal/; these tests cover flag wiring, output modes,
// and process exit behaviour.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the scribe binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "scribe-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "scribe"
		if os.PathSeparator == '\\' {
			binaryName = "scribe.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state: an isolated home directory so
// config, audit log, and history never touch the real user profile.
type testEnv struct {
	t      *testing.T
	dir    string
	binary string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, dir: t.TempDir(), binary: buildBinary(t)}
}

// path returns an absolute path inside the test directory.
func (e *testEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

// write creates a file inside the test directory and returns its path.
func (e *testEnv) write(name, content string) string {
	e.t.Helper()
	p := e.path(name)
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// read returns the content of a file inside the test directory.
func (e *testEnv) read(name string) string {
	e.t.Helper()
	b, err := os.ReadFile(e.path(name))
	require.NoError(e.t, err)
	return string(b)
}

// run executes scribe with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("scribe %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes scribe and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.dir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runStdin executes scribe with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.dir)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("scribe %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}
