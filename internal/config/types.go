package config

import (
	"fmt"
	"time"

	"github.com/fyrsmithlabs/driftd/internal/logging"
)

// ConfigFileName is the project-local configuration file.
const ConfigFileName = ".drift.yaml"

// Config is the root configuration for a drift/sync run.
type Config struct {
	Windows    WindowsConfig    `koanf:"windows"`
	Scan       ScanConfig       `koanf:"scan"`
	Registry   RegistryConfig   `koanf:"registry"`
	Acceptance AcceptanceConfig `koanf:"acceptance"`
	Status     StatusConfig     `koanf:"status"`
	Journal    JournalConfig    `koanf:"journal"`
	Hooks      HooksConfig      `koanf:"hooks"`
	Fixes      FixesConfig      `koanf:"fixes"`
	Logging    logging.Config   `koanf:"logging"`
}

// WindowsConfig holds the staleness windows. The defaults match the
// constants the original scripts hardcoded.
type WindowsConfig struct {
	// StaleInProgress is how long an in_progress feature may go without a
	// referencing commit before it is flagged.
	StaleInProgress time.Duration `koanf:"stale_in_progress"`

	// Focus is the window in which status-document focus keywords must
	// appear in commit messages.
	Focus time.Duration `koanf:"focus"`

	// DocStaleness is the window used by the documentation-drift
	// correlation.
	DocStaleness time.Duration `koanf:"doc_staleness"`
}

// ScanConfig controls source and documentation scanning.
type ScanConfig struct {
	// SourceRoots are the directories checked for untracked files and
	// scanned for code annotations.
	SourceRoots []string `koanf:"source_roots"`

	// Extensions is the allow-list of source file extensions. Scans never
	// leave this list, which keeps generated and vendored trees out.
	Extensions []string `koanf:"extensions"`

	// DocsDir is the root for documentation scanning.
	DocsDir string `koanf:"docs_dir"`
}

// RegistryConfig locates the feature registry.
type RegistryConfig struct {
	Path string `koanf:"path"`
}

// AcceptanceConfig locates acceptance-criteria files.
type AcceptanceConfig struct {
	Dir string `koanf:"dir"`
}

// StatusConfig locates the status document.
type StatusConfig struct {
	Path string `koanf:"path"`
}

// JournalConfig locates the session journal.
type JournalConfig struct {
	Path string `koanf:"path"`
}

// HooksConfig locates the git-hook configuration file.
type HooksConfig struct {
	Config string `koanf:"config"`
}

// FixesConfig controls which repairs the full mode may apply.
type FixesConfig struct {
	// CodeAuthoritative, when true, affirms that shipped code is the source
	// of truth: full mode may then mark all criteria of a shipped feature
	// complete. Off by default because it is a judgment call.
	CodeAuthoritative bool `koanf:"code_authoritative"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Windows.StaleInProgress <= 0 {
		return fmt.Errorf("windows.stale_in_progress must be > 0, got %v", c.Windows.StaleInProgress)
	}
	if c.Windows.Focus <= 0 {
		return fmt.Errorf("windows.focus must be > 0, got %v", c.Windows.Focus)
	}
	if c.Windows.DocStaleness <= 0 {
		return fmt.Errorf("windows.doc_staleness must be > 0, got %v", c.Windows.DocStaleness)
	}
	if c.Registry.Path == "" {
		return fmt.Errorf("registry.path must not be empty")
	}
	if c.Acceptance.Dir == "" {
		return fmt.Errorf("acceptance.dir must not be empty")
	}
	if len(c.Scan.Extensions) == 0 {
		return fmt.Errorf("scan.extensions must not be empty")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
