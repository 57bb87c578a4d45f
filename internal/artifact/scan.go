package artifact

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxScanFileSize keeps pathological files out of in-memory scans.
const maxScanFileSize = 2 * 1024 * 1024

// commentTokens mark the start of a line comment in the allow-listed source
// languages.
var commentTokens = []string{"//", "#", "*", "/*", "--", ";;"}

// ScanAnnotations walks the given source roots for feature references
// (F-####) in comments of allow-listed files. Roots that do not exist are
// skipped.
func ScanAnnotations(projectRoot string, sourceRoots, extensions []string, ignore *Matcher) []Annotation {
	var annotations []Annotation
	for _, src := range walkSources(projectRoot, sourceRoots, extensions, ignore) {
		for i, line := range strings.Split(src.Text, "\n") {
			id := FeatureIDPattern.FindString(line)
			if id == "" || !isCommentLine(line) {
				continue
			}
			annotations = append(annotations, Annotation{
				FeatureID: id,
				Path:      src.Path,
				Line:      i + 1,
			})
		}
	}
	return annotations
}

// ScanSources loads the allow-listed source files under the source roots.
func ScanSources(projectRoot string, sourceRoots, extensions []string, ignore *Matcher) []SourceFile {
	return walkSources(projectRoot, sourceRoots, extensions, ignore)
}

// ScanDocs walks docsDir under the project root for markdown files, used
// for keyword-overlap correlation against recently changed code.
func ScanDocs(projectRoot, docsDir string, ignore *Matcher) []DocFile {
	root := filepath.Join(projectRoot, docsDir)
	var docs []DocFile

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(projectRoot, path)
		if relErr != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" || ignore.Excluded(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") || ignore.Excluded(rel) {
			return nil
		}
		text, ok := readScanFile(path)
		if !ok {
			return nil
		}
		docs = append(docs, DocFile{Path: filepath.ToSlash(rel), Text: text})
		return nil
	})
	return docs
}

// walkSources collects allow-listed files under each existing source root.
func walkSources(projectRoot string, sourceRoots, extensions []string, ignore *Matcher) []SourceFile {
	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[ext] = true
	}

	var files []SourceFile
	for _, rootName := range sourceRoots {
		root := filepath.Join(projectRoot, rootName)
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			rel, relErr := filepath.Rel(projectRoot, path)
			if relErr != nil {
				return nil
			}
			if d.IsDir() {
				if d.Name() == ".git" || ignore.Excluded(rel+"/") {
					return filepath.SkipDir
				}
				return nil
			}
			if !extSet[filepath.Ext(d.Name())] || ignore.Excluded(rel) {
				return nil
			}
			text, ok := readScanFile(path)
			if !ok {
				return nil
			}
			files = append(files, SourceFile{Path: filepath.ToSlash(rel), Text: text})
			return nil
		})
	}
	return files
}

// readScanFile reads a file for scanning, refusing oversized ones.
func readScanFile(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxScanFileSize {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// isCommentLine reports whether the line looks like a source comment. The
// feature reference must sit in a comment, not in string data; this is a
// line-level heuristic, not a parse.
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, tok := range commentTokens {
		if strings.HasPrefix(trimmed, tok) {
			return true
		}
	}
	// Trailing comment on a code line.
	idx := FeatureIDPattern.FindStringIndex(line)
	if idx == nil {
		return false
	}
	before := line[:idx[0]]
	return strings.Contains(before, "//") || strings.Contains(before, "# ") || strings.Contains(before, "/*")
}
