// Package config provides reading and writing of scribe configuration.
// Supports both global (~/.scribe/config.yaml) and local (.scribe/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use the local scope for repository config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.scribe/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .scribe/config.yaml
	ScopeLocal
)

// Limits holds size and history limit configuration options.
type Limits struct {
	MaxFileSize    *int64 `yaml:"max_file_size,omitempty"`
	MaxHistory     *int   `yaml:"max_history,omitempty"`
	HistoryCeiling *int64 `yaml:"history_ceiling,omitempty"`
}

// Default limits applied when not configured.
const (
	DefaultMaxFileSize    = 10 * 1024 * 1024  // 10 MiB per edited file
	DefaultMaxHistory     = 5                 // snapshots kept per file
	DefaultHistoryCeiling = 512 * 1024 * 1024 // total history store bytes
)

// Validation bounds for configuration values.
const (
	MinMaxFileSize    = 1
	MaxMaxFileSize    = 1024 * 1024 * 1024 // 1 GiB - beyond this, editing in memory is unreasonable
	MinMaxHistory     = 1
	MaxMaxHistory     = 1000
	MinHistoryCeiling = 1
	MaxHistoryCeiling = 64 * 1024 * 1024 * 1024 // 64 GiB
)

// Config contains configuration for scribe.
type Config struct {
	HistoryDir string `yaml:"history_dir,omitempty"`
	Lint       *bool  `yaml:"lint,omitempty"`
	Limits     Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxFileSize != nil {
		v := *c.Limits.MaxFileSize
		if v < MinMaxFileSize || v > MaxMaxFileSize {
			return fmt.Errorf("%w: max_file_size must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxFileSize, MaxMaxFileSize, v)
		}
	}
	if c.Limits.MaxHistory != nil {
		v := *c.Limits.MaxHistory
		if v < MinMaxHistory || v > MaxMaxHistory {
			return fmt.Errorf("%w: max_history must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxHistory, MaxMaxHistory, v)
		}
	}
	if c.Limits.HistoryCeiling != nil {
		v := *c.Limits.HistoryCeiling
		if v < MinHistoryCeiling || v > MaxHistoryCeiling {
			return fmt.Errorf("%w: history_ceiling must be between %d and %d, got %d",
				ErrInvalidValue, MinHistoryCeiling, MaxHistoryCeiling, v)
		}
	}
	return nil
}

// MaxFileSize returns the per-file size ceiling in bytes (defaults to 10 MiB).
func (c *Config) MaxFileSize() int64 {
	if c.Limits.MaxFileSize == nil {
		return DefaultMaxFileSize
	}
	return *c.Limits.MaxFileSize
}

// MaxHistory returns the per-file snapshot cap (defaults to 5).
func (c *Config) MaxHistory() int {
	if c.Limits.MaxHistory == nil {
		return DefaultMaxHistory
	}
	return *c.Limits.MaxHistory
}

// HistoryCeiling returns the total history store size ceiling in bytes.
func (c *Config) HistoryCeiling() int64 {
	if c.Limits.HistoryCeiling == nil {
		return DefaultHistoryCeiling
	}
	return *c.Limits.HistoryCeiling
}

// LintEnabled returns whether post-edit linting defaults on (defaults to false).
func (c *Config) LintEnabled() bool {
	if c.Lint == nil {
		return false
	}
	return *c.Lint
}

// History returns the history storage directory, defaulting to
// ~/.scribe/history.
func (c *Config) History() string {
	if c.HistoryDir != "" {
		return c.HistoryDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".scribe", "history")
	}
	return filepath.Join(home, ".scribe", "history")
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".scribe", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.scribe/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scribe", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
