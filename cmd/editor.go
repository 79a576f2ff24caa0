// editor.go builds the shared editing engine for CLI commands.
//
// Separated so that every editing command constructs the engine the same
// way: config first, flags override, history store opened lazily per run
// and closed when the command finishes.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/scribe/internal/config"
	"github.com/jpl-au/scribe/internal/editor"
	"github.com/jpl-au/scribe/internal/history"
	"github.com/jpl-au/scribe/internal/linter"
	"github.com/jpl-au/scribe/internal/log"
)

// openHistory opens the snapshot store from config and flags.
// The returned closer releases the store and must be called when the
// command finishes.
func openHistory() (*history.Manager, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	dir := HistoryDir()
	if dir == "" {
		dir = cfg.History()
	}

	kv, err := history.OpenSQLite(dir, cfg.HistoryCeiling())
	if err != nil {
		return nil, nil, fmt.Errorf("open history store: %w", err)
	}

	return history.NewManager(kv, cfg.MaxHistory()), func() { _ = kv.Close() }, nil
}

// newEditor constructs the editing engine from config and flags.
// The returned closer releases the history store and must be called
// when the command finishes.
func newEditor() (*editor.Editor, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if cwd, err := os.Getwd(); err == nil {
		log.SetProject(cwd)
	}

	hist, closeHist, err := openHistory()
	if err != nil {
		return nil, nil, err
	}

	size := MaxFileSize()
	if size == 0 {
		size = cfg.MaxFileSize()
	}

	opts := editor.Options{
		MaxFileSize: size,
		History:     hist,
	}
	if Lint() || cfg.LintEnabled() {
		opts.Linter = linter.New()
	}

	return editor.New(opts), closeHist, nil
}

// lintRequested reports whether linting applies for this run, from the
// flag or config.
func lintRequested() bool {
	if Lint() {
		return true
	}
	cfg, err := config.Load()
	return err == nil && cfg.LintEnabled()
}
