package artifact

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnorePatterns keep generated and vendored trees out of scans when
// a project has no ignore files of its own.
var DefaultIgnorePatterns = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/vendor/**",
	"**/dist/**",
	"**/build/**",
	"**/target/**",
	"**/__pycache__/**",
}

// IgnoreParser reads gitignore-style files into doublestar glob patterns.
type IgnoreParser struct {
	// IgnoreFiles is the list of ignore file names to look for.
	IgnoreFiles []string

	// FallbackPatterns are returned when no ignore files are found.
	FallbackPatterns []string
}

// NewIgnoreParser creates a parser with the standard file list and fallback
// patterns.
func NewIgnoreParser() *IgnoreParser {
	return &IgnoreParser{
		IgnoreFiles:      []string{".gitignore"},
		FallbackPatterns: DefaultIgnorePatterns,
	}
}

// ParseProject reads all ignore files from the project root and returns
// combined exclude patterns. If no ignore files are found, returns fallback
// patterns. The built-in .git exclusion is always present.
func (p *IgnoreParser) ParseProject(projectRoot string) ([]string, error) {
	patterns := []string{"**/.git/**"}
	foundAny := false

	for _, ignoreFile := range p.IgnoreFiles {
		path := filepath.Join(projectRoot, ignoreFile)
		filePatterns, err := p.parseFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		patterns = append(patterns, filePatterns...)
		foundAny = true
	}

	if !foundAny {
		patterns = append(patterns, p.FallbackPatterns...)
	}

	return deduplicate(patterns), nil
}

// parseFile reads a single gitignore-style file and returns patterns.
func (p *IgnoreParser) parseFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if pattern := parseIgnoreLine(scanner.Text()); pattern != "" {
			patterns = append(patterns, pattern)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

// parseIgnoreLine parses a single gitignore line. Returns empty string for
// comments, blank lines, and negations (unsupported).
func parseIgnoreLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
		return ""
	}
	return toGlobPattern(line)
}

// toGlobPattern converts a gitignore pattern to a doublestar glob.
func toGlobPattern(pattern string) string {
	pattern = strings.TrimPrefix(pattern, "/")

	// Trailing slash means a directory: match everything under it.
	if strings.HasSuffix(pattern, "/") {
		pattern = pattern + "**"
	}

	// A bare name can match anywhere in the tree.
	if !strings.Contains(pattern, "/") && !strings.HasPrefix(pattern, "*") {
		pattern = "**/" + pattern
	}

	// A name without an extension looks like a directory; match its
	// contents recursively.
	if !strings.HasSuffix(pattern, "/**") && !strings.HasSuffix(pattern, "/*") && !strings.Contains(pattern, ".") {
		pattern = pattern + "/**"
	}

	return pattern
}

// deduplicate removes duplicate patterns while preserving order.
func deduplicate(patterns []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}

// Matcher tests paths against a pattern set.
type Matcher struct {
	patterns []string
}

// NewMatcher creates a matcher over the given doublestar patterns.
func NewMatcher(patterns []string) *Matcher {
	return &Matcher{patterns: patterns}
}

// LoadMatcher builds a matcher for a project root from its ignore files.
func LoadMatcher(projectRoot string) (*Matcher, error) {
	patterns, err := NewIgnoreParser().ParseProject(projectRoot)
	if err != nil {
		return nil, err
	}
	return NewMatcher(patterns), nil
}

// Excluded reports whether the slash-separated relative path matches any
// pattern.
func (m *Matcher) Excluded(relPath string) bool {
	if m == nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	for _, p := range m.patterns {
		if ok, err := doublestar.Match(p, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
