package drift

import (
	"fmt"
	"regexp"
	"strings"
)

// exportedFuncRe and exportedTypeRe match top-level exported declarations.
// The scan is textual, not a real parse, so generics and methods on
// exported receivers are deliberately out of scope.
var (
	exportedFuncRe = regexp.MustCompile(`(?m)^func ([A-Z][A-Za-z0-9_]*)\(`)
	exportedTypeRe = regexp.MustCompile(`(?m)^type ([A-Z][A-Za-z0-9_]*)\b`)
)

// UndocumentedExportCheck flags source files whose exported symbols appear
// in no documentation file. Issues aggregate per file rather than per
// symbol to keep the report readable.
type UndocumentedExportCheck struct{}

func (UndocumentedExportCheck) Name() string      { return "undocumented-export" }
func (UndocumentedExportCheck) Needs() []Artifact { return nil }
func (UndocumentedExportCheck) Fixable() bool     { return false }

func (UndocumentedExportCheck) Run(s *Snapshot) []Issue {
	corpus := docCorpus(s)

	var issues []Issue
	for _, src := range s.Sources {
		var missing []string
		for _, name := range exportedSymbols(src.Text) {
			if !strings.Contains(corpus, name) {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			continue
		}
		issues = append(issues, Issue{
			Type: TypeUndocumentedCode,
			File: src.Path,
			Description: fmt.Sprintf("%s exports %s with no documentation mention",
				src.Path, symbolSummary(missing)),
			Attrs: map[string]any{
				"symbols": strings.Join(missing, ","),
				"count":   len(missing),
			},
		})
	}
	return issues
}

// routeRes match the common route-registration shapes: method-named
// registration calls and mux-style HandleFunc.
var routeRes = []*regexp.Regexp{
	regexp.MustCompile(`\.(?:GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS)\(\s*"([^"]+)"`),
	regexp.MustCompile(`\.(?:Handle|HandleFunc)\(\s*"([^"]+)"`),
}

// UndocumentedEndpointCheck flags route declarations whose path string
// appears in no documentation file.
type UndocumentedEndpointCheck struct{}

func (UndocumentedEndpointCheck) Name() string      { return "undocumented-endpoint" }
func (UndocumentedEndpointCheck) Needs() []Artifact { return nil }
func (UndocumentedEndpointCheck) Fixable() bool     { return false }

func (UndocumentedEndpointCheck) Run(s *Snapshot) []Issue {
	corpus := docCorpus(s)

	var issues []Issue
	for _, src := range s.Sources {
		seen := make(map[string]bool)
		for _, re := range routeRes {
			for _, m := range re.FindAllStringSubmatch(src.Text, -1) {
				route := m[1]
				if seen[route] || strings.Contains(corpus, route) {
					continue
				}
				seen[route] = true
				issues = append(issues, Issue{
					Type:        TypeUndocumentedEndpoint,
					File:        src.Path,
					Description: fmt.Sprintf("%s declares route %q with no documentation mention", src.Path, route),
					Attrs: map[string]any{
						"route": route,
					},
				})
			}
		}
	}
	return issues
}

// docCorpus concatenates all documentation text for containment lookups.
func docCorpus(s *Snapshot) string {
	var b strings.Builder
	for _, doc := range s.Docs {
		b.WriteString(doc.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func exportedSymbols(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, re := range []*regexp.Regexp{exportedFuncRe, exportedTypeRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if seen[m[1]] {
				continue
			}
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

func symbolSummary(names []string) string {
	if len(names) <= 3 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:3], ", "), len(names)-3)
}
