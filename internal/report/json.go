package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fyrsmithlabs/driftd/internal/drift"
)

// jsonReport is the stable wire shape. Field order and names are a
// contract with downstream aggregation tooling; do not rename.
type jsonReport struct {
	Tool      string        `json:"tool"`
	Timestamp string        `json:"timestamp"`
	Issues    []drift.Issue `json:"issues"`
	Summary   jsonSummary   `json:"summary"`
}

type jsonSummary struct {
	TotalIssues int `json:"total_issues"`
	FixedIssues int `json:"fixed_issues"`
}

// RenderJSON writes the report as the stable JSON document. The issues
// array is always present, never null, and total_issues always equals its
// length. Diagnostics are deliberately omitted.
func RenderJSON(w io.Writer, r *Report) error {
	issues := r.Issues
	if issues == nil {
		issues = []drift.Issue{}
	}
	doc := jsonReport{
		Tool:      r.Tool,
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		Issues:    issues,
		Summary: jsonSummary{
			TotalIssues: len(issues),
			FixedIssues: r.FixedCount,
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
