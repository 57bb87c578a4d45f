package artifact

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// checkboxRe matches "- [x] criterion" and "- [ ] criterion" lines.
var checkboxRe = regexp.MustCompile(`^\s*[-*]\s*\[([ xX])\]\s*(.*)$`)

// ParseAcceptance parses acceptance-criteria text for one feature.
func ParseAcceptance(featureID, path, text string) AcceptanceDoc {
	doc := AcceptanceDoc{FeatureID: featureID, Path: path}
	for _, line := range strings.Split(text, "\n") {
		m := checkboxRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		doc.Criteria = append(doc.Criteria, Criterion{
			Text:    strings.TrimSpace(m[2]),
			Checked: m[1] != " ",
		})
	}
	return doc
}

// uncheckedBoxRe matches the opening of an unchecked checklist line.
var uncheckedBoxRe = regexp.MustCompile(`(?m)^(\s*[-*]\s*\[) \]`)

// CheckAllCriteria marks every unchecked criterion complete, returning the
// rewritten text and how many boxes were checked. Everything outside the
// checkbox brackets is preserved byte for byte.
func CheckAllCriteria(text string) (string, int) {
	n := 0
	out := uncheckedBoxRe.ReplaceAllStringFunc(text, func(m string) string {
		n++
		return strings.TrimSuffix(m, " ]") + "x]"
	})
	return out, n
}

// LoadAcceptanceFile reads one acceptance file. The feature id comes from
// the file name (F-0001.md).
func LoadAcceptanceFile(path string) (AcceptanceDoc, error) {
	id := FeatureIDPattern.FindString(filepath.Base(path))
	data, err := os.ReadFile(path)
	if err != nil {
		return AcceptanceDoc{}, err
	}
	return ParseAcceptance(id, path, string(data)), nil
}

// LoadAcceptanceDir loads every acceptance file under projectRoot/dir, one
// file per feature id, sorted by id. Doc paths are recorded relative to
// the project root, the same keying the scanners and worktree status use.
// A missing directory yields an empty result; files whose name carries no
// feature id are skipped.
func LoadAcceptanceDir(projectRoot, dir string) ([]AcceptanceDoc, error) {
	entries, err := os.ReadDir(filepath.Join(projectRoot, dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var docs []AcceptanceDoc
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		if FeatureIDPattern.FindString(e.Name()) == "" {
			continue
		}
		rel := filepath.Join(dir, e.Name())
		doc, err := LoadAcceptanceFile(filepath.Join(projectRoot, rel))
		if err != nil {
			continue
		}
		doc.Path = filepath.ToSlash(rel)
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].FeatureID < docs[j].FeatureID })
	return docs, nil
}
