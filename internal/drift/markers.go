package drift

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// placeholderRe matches unexpanded {{...}} substitutions left behind by a
// doc template.
var placeholderRe = regexp.MustCompile(`\{\{[^{}]+\}\}`)

// markerRe matches the textual "fill me in" markers templates use.
var markerRe = regexp.MustCompile(`\bTBD\b|\bTODO\(template\)|<!--\s*fill[- ]?in\s*-->`)

// TemplateMarkerCheck flags documentation still carrying template
// placeholders or fill-in markers. Doc files are scanned line by line so
// the report can point at the offending line.
type TemplateMarkerCheck struct{}

func (TemplateMarkerCheck) Name() string      { return "template-marker" }
func (TemplateMarkerCheck) Needs() []Artifact { return nil }
func (TemplateMarkerCheck) Fixable() bool     { return false }

func (TemplateMarkerCheck) Run(s *Snapshot) []Issue {
	var issues []Issue
	for _, doc := range s.Docs {
		scanner := bufio.NewScanner(strings.NewReader(doc.Text))
		for n := 1; scanner.Scan(); n++ {
			line := scanner.Text()
			if m := placeholderRe.FindString(line); m != "" {
				issues = append(issues, Issue{
					Type:        TypeTemplatePlaceholder,
					File:        doc.Path,
					Description: fmt.Sprintf("%s:%d contains unexpanded placeholder %s", doc.Path, n, m),
					Attrs: map[string]any{
						"line":   n,
						"marker": m,
					},
				})
				continue
			}
			if m := markerRe.FindString(line); m != "" {
				issues = append(issues, Issue{
					Type:        TypeTemplateMarker,
					File:        doc.Path,
					Description: fmt.Sprintf("%s:%d contains unfilled marker %q", doc.Path, n, m),
					Attrs: map[string]any{
						"line":   n,
						"marker": m,
					},
				})
			}
		}
	}
	return issues
}
