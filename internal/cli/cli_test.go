package cli

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	reg := filepath.Join(root, "spec", "features.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(reg), 0o755))
	require.NoError(t, os.WriteFile(reg, []byte("| F-0001 | auth | shipped |\n"), 0o644))

	acc := filepath.Join(root, "spec", "acceptance", "F-0001.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(acc), 0o755))
	require.NoError(t, os.WriteFile(acc, []byte("- [x] works\n- [ ] documented\n"), 0o644))
	return root
}

func TestDriftCheckExitCode(t *testing.T) {
	cmd := NewDriftCommand()
	cmd.SetArgs([]string{"--check", "--quiet", "--root", fixtureRoot(t)})
	assert.Equal(t, 1, Execute(cmd))
}

func TestDriftDefaultExitsZeroWithIssues(t *testing.T) {
	cmd := NewDriftCommand()
	cmd.SetArgs([]string{"--quiet", "--root", fixtureRoot(t)})
	assert.Equal(t, 0, Execute(cmd))
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	cmd := NewDriftCommand()
	cmd.SetArgs([]string{"--frobnicate"})
	assert.Equal(t, 2, Execute(cmd))

	sync := NewSyncCommand()
	sync.SetArgs([]string{"--frobnicate"})
	assert.Equal(t, 2, Execute(sync))
}

func TestPositionalArgsAreUsageError(t *testing.T) {
	cmd := NewDriftCommand()
	cmd.SetArgs([]string{"extra"})
	code := Execute(cmd)
	assert.NotEqual(t, 0, code)
}

func TestSyncHasInteractiveFlag(t *testing.T) {
	cmd := NewSyncCommand()
	assert.NotNil(t, cmd.Flags().Lookup("interactive"))

	drift := NewDriftCommand()
	assert.Nil(t, drift.Flags().Lookup("interactive"))
}

func TestSharedFlagSurface(t *testing.T) {
	for _, cmd := range []string{"drift", "sync"} {
		c := NewDriftCommand()
		if cmd == "sync" {
			c = NewSyncCommand()
		}
		for _, name := range []string{"check", "json", "docs", "quiet", "gaps", "orphans", "tests", "manifest", "root"} {
			assert.NotNil(t, c.Flags().Lookup(name), "%s missing --%s", cmd, name)
		}
	}
}

func TestSyncFullFixesUncheckedWhenAuthoritative(t *testing.T) {
	root := fixtureRoot(t)
	cfg := "fixes:\n  code_authoritative: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".drift.yaml"), []byte(cfg), 0o644))

	cmd := NewSyncCommand()
	cmd.SetArgs([]string{"--quiet", "--root", root})
	assert.Equal(t, 0, Execute(cmd))

	data, err := os.ReadFile(filepath.Join(root, "spec", "acceptance", "F-0001.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "- [ ]")
}
