package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIgnoreLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"empty line", "", ""},
		{"comment", "# build artifacts", ""},
		{"negation skipped", "!keep.txt", ""},
		{"simple glob", "*.log", "*.log"},
		{"bare directory", "node_modules", "**/node_modules/**"},
		{"directory with slash", "dist/", "dist/**"},
		{"nested path", "vendor/cache", "vendor/cache/**"},
		{"absolute path", "/build", "**/build/**"},
		{"file with extension", "secrets.env", "**/secrets.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseIgnoreLine(tt.line))
		})
	}
}

func TestParseProjectFallback(t *testing.T) {
	parser := NewIgnoreParser()
	patterns, err := parser.ParseProject(t.TempDir())
	require.NoError(t, err)

	// No ignore files: fallbacks plus the built-in .git exclusion.
	assert.Contains(t, patterns, "**/.git/**")
	assert.Contains(t, patterns, "**/node_modules/**")
}

func TestMatcherExcluded(t *testing.T) {
	dir := t.TempDir()
	gitignore := "dist/\n*.log\nnode_modules\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644))

	m, err := LoadMatcher(dir)
	require.NoError(t, err)

	assert.True(t, m.Excluded("dist/bundle.js"))
	assert.True(t, m.Excluded("debug.log"))
	assert.True(t, m.Excluded("pkg/node_modules/left-pad/index.js"))
	assert.True(t, m.Excluded(".git/HEAD"))
	assert.False(t, m.Excluded("internal/engine/runner.go"))
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	assert.False(t, m.Excluded("anything"))
}
