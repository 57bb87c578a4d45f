package drift

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fyrsmithlabs/driftd/internal/artifact"
)

// docDriftMinOverlap is how many changed-source keywords a doc must share
// before it is considered to describe that code.
const docDriftMinOverlap = 2

// DocumentationDriftCheck flags documentation that talks about recently
// changed source files but has not itself been touched inside the
// staleness window. The correlation is keyword overlap on file base names
// and is advisory only; short identifiers produce false positives and the
// issue is never auto-fixed.
type DocumentationDriftCheck struct{}

func (DocumentationDriftCheck) Name() string      { return "documentation-drift" }
func (DocumentationDriftCheck) Needs() []Artifact { return []Artifact{ArtifactGit} }
func (DocumentationDriftCheck) Fixable() bool     { return false }

func (DocumentationDriftCheck) Run(s *Snapshot) []Issue {
	window := s.Cfg.Windows.DocStaleness
	keywords := changedSourceKeywords(s, window)
	if len(keywords) == 0 {
		return nil
	}

	cutoff := s.Now.Add(-window)
	var issues []Issue
	for _, doc := range s.Docs {
		text := strings.ToLower(doc.Text)
		var matched []string
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) < docDriftMinOverlap {
			continue
		}
		modified, known := s.DocModTimes[doc.Path]
		if known && modified.After(cutoff) {
			continue
		}
		days := int(window.Hours() / 24)
		issues = append(issues, Issue{
			Type: TypeDocDrift,
			File: doc.Path,
			Description: fmt.Sprintf("%s mentions recently changed code (%s) but was not updated in %d days",
				doc.Path, strings.Join(matched, ", "), days),
			Attrs: map[string]any{
				"keywords":    strings.Join(matched, ","),
				"window_days": days,
			},
		})
	}
	return issues
}

// changedSourceKeywords derives correlation keywords from the base names
// of files touched by commits inside the window.
func changedSourceKeywords(s *Snapshot, window time.Duration) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.CommitsWithin(window) {
		for _, f := range c.Files {
			base := filepath.Base(f.Path)
			base = strings.TrimSuffix(base, filepath.Ext(base))
			for _, kw := range artifact.KeywordsOf(base) {
				if seen[kw] {
					continue
				}
				seen[kw] = true
				out = append(out, kw)
			}
		}
	}
	return out
}
