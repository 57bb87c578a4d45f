package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cfg.Windows.StaleInProgress)
	assert.Equal(t, 3*24*time.Hour, cfg.Windows.Focus)
	assert.Equal(t, 30*24*time.Hour, cfg.Windows.DocStaleness)
	assert.Equal(t, filepath.Join("spec", "features.md"), cfg.Registry.Path)
	assert.Equal(t, filepath.Join("spec", "acceptance"), cfg.Acceptance.Dir)
	assert.Equal(t, "STATUS.md", cfg.Status.Path)
	assert.Contains(t, cfg.Scan.Extensions, ".go")
	assert.False(t, cfg.Fixes.CodeAuthoritative)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yml := `windows:
  stale_in_progress: 48h
scan:
  source_roots: [pkg]
registry:
  path: docs/registry.md
fixes:
  code_authoritative: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, cfg.Windows.StaleInProgress)
	// Unset fields keep their defaults.
	assert.Equal(t, 3*24*time.Hour, cfg.Windows.Focus)
	assert.Equal(t, []string{"pkg"}, cfg.Scan.SourceRoots)
	assert.Equal(t, "docs/registry.md", cfg.Registry.Path)
	assert.True(t, cfg.Fixes.CodeAuthoritative)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := "windows:\n  focus: 24h\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o600))

	t.Setenv("DRIFT_WINDOWS_FOCUS", "12h")
	t.Setenv("DRIFT_STATUS_PATH", "CURRENT.md")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.Windows.Focus)
	assert.Equal(t, "CURRENT.md", cfg.Status.Path)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	yml := "windows:\n  focus: -1h\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "windows.focus")
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}
