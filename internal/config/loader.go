package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/driftd/internal/logging"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB

	// envPrefix is stripped from environment variables before mapping.
	envPrefix = "DRIFT_"
)

// Load loads configuration for the given project root.
//
// Precedence (highest to lowest):
//  1. DRIFT_-prefixed environment variables (DRIFT_WINDOWS_FOCUS, ...)
//  2. <projectRoot>/.drift.yaml
//  3. Hardcoded defaults
//
// A missing config file is not an error; the defaults stand.
func Load(projectRoot string) (*Config, error) {
	k := koanf.New(".")

	configPath := filepath.Join(projectRoot, ConfigFileName)
	if info, err := os.Stat(configPath); err == nil {
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
		}
		content, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Environment variables override the file. The transformer maps
	// DRIFT_WINDOWS_FOCUS to windows.focus: the first underscore after the
	// prefix separates the section from the field name.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Windows.StaleInProgress == 0 {
		cfg.Windows.StaleInProgress = 7 * 24 * time.Hour
	}
	if cfg.Windows.Focus == 0 {
		cfg.Windows.Focus = 3 * 24 * time.Hour
	}
	if cfg.Windows.DocStaleness == 0 {
		cfg.Windows.DocStaleness = 30 * 24 * time.Hour
	}

	if len(cfg.Scan.SourceRoots) == 0 {
		cfg.Scan.SourceRoots = []string{"src", "internal", "cmd", "lib"}
	}
	if len(cfg.Scan.Extensions) == 0 {
		cfg.Scan.Extensions = []string{".go", ".py", ".ts", ".js", ".rs", ".java", ".sh", ".rb"}
	}
	if cfg.Scan.DocsDir == "" {
		cfg.Scan.DocsDir = "."
	}

	if cfg.Registry.Path == "" {
		cfg.Registry.Path = filepath.Join("spec", "features.md")
	}
	if cfg.Acceptance.Dir == "" {
		cfg.Acceptance.Dir = filepath.Join("spec", "acceptance")
	}
	if cfg.Status.Path == "" {
		cfg.Status.Path = "STATUS.md"
	}
	if cfg.Journal.Path == "" {
		cfg.Journal.Path = "JOURNAL.md"
	}
	if cfg.Hooks.Config == "" {
		cfg.Hooks.Config = filepath.Join(".drift", "hooks.toml")
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = logging.NewDefaultConfig().Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.Fields == nil {
		cfg.Logging.Fields = logging.NewDefaultConfig().Fields
	}
}
