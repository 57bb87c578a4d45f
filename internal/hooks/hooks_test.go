package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := "path = \".git/hooks\"\npre_commit = \"drift --check --quiet\"\n"
	path := filepath.Join(dir, "hooks.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".git/hooks", cfg.Path)
	assert.Equal(t, "drift --check --quiet", cfg.PreCommit)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "hooks.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMisconfigured(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"relative correct", filepath.Join(".git", "hooks"), false},
		{"absolute correct", filepath.Join(root, ".git", "hooks"), false},
		{"wrong relative", filepath.Join(".githooks"), true},
		{"stale absolute", "/old/checkout/.git/hooks", true},
		{"empty path not flagged", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Path: tt.path}
			assert.Equal(t, tt.want, cfg.Misconfigured(root))
		})
	}

	var nilCfg *Config
	assert.False(t, nilCfg.Misconfigured(root))
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := &Config{Path: ".git/hooks", PreCommit: "drift --check"}
	data, err := Encode(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hooks.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Path, got.Path)
	assert.Equal(t, cfg.PreCommit, got.PreCommit)
}
