package hooks

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrNotConfigured indicates the project has no hook configuration file.
var ErrNotConfigured = errors.New("hooks not configured")

// Config is the parsed hook configuration.
type Config struct {
	// Path is where hook scripts are installed. Must be the repository's
	// .git/hooks directory.
	Path string `toml:"path"`

	// PreCommit is the command the pre-commit hook runs.
	PreCommit string `toml:"pre_commit,omitempty"`

	// SessionStart is the command run at session start.
	SessionStart string `toml:"session_start,omitempty"`
}

// Load reads a hooks.toml file. A missing file returns ErrNotConfigured.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotConfigured, path)
		}
		return nil, fmt.Errorf("parsing hooks config: %w", err)
	}
	return &cfg, nil
}

// ExpectedPath returns the hook path the config should carry for the given
// project root.
func ExpectedPath(projectRoot string) string {
	return filepath.Join(projectRoot, ".git", "hooks")
}

// Misconfigured reports whether the configured hook path diverges from the
// repository's hooks directory. Relative configured paths are resolved
// against the project root before comparing.
func (c *Config) Misconfigured(projectRoot string) bool {
	if c == nil || c.Path == "" {
		return false
	}
	configured := c.Path
	if !filepath.IsAbs(configured) {
		configured = filepath.Join(projectRoot, configured)
	}
	return filepath.Clean(configured) != filepath.Clean(ExpectedPath(projectRoot))
}

// Encode renders the config back to TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding hooks config: %w", err)
	}
	return buf.Bytes(), nil
}
