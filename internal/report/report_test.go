package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/driftd/internal/drift"
)

func sampleReport() *Report {
	return &Report{
		Tool:      "drift",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Issues: []drift.Issue{
			{
				Type:        drift.TypeIncompleteShipped,
				Feature:     "F-0001",
				File:        "spec/acceptance/F-0001.md",
				Description: "F-0001 is shipped but 1 of 3 criteria unchecked",
				Attrs:       map[string]any{"unchecked": 1, "total": 3},
			},
			{
				Type:        drift.TypeStatusDrift,
				Feature:     "F-0002",
				Description: "F-0002 is planned but its criteria are 100% complete",
				Attrs:       map[string]any{"completion": 100},
			},
		},
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleReport()))

	var doc struct {
		Tool      string           `json:"tool"`
		Timestamp string           `json:"timestamp"`
		Issues    []map[string]any `json:"issues"`
		Summary   struct {
			TotalIssues int `json:"total_issues"`
			FixedIssues int `json:"fixed_issues"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "drift", doc.Tool)
	assert.Equal(t, "2025-06-01T12:00:00Z", doc.Timestamp)
	require.Len(t, doc.Issues, 2)
	assert.Equal(t, doc.Summary.TotalIssues, len(doc.Issues))
	assert.Equal(t, 0, doc.Summary.FixedIssues)

	assert.Equal(t, "incomplete_shipped", doc.Issues[0]["type"])
	assert.Equal(t, "F-0001", doc.Issues[0]["feature"])
	assert.Equal(t, float64(3), doc.Issues[0]["total"])
	_, hasFile := doc.Issues[1]["file"]
	assert.False(t, hasFile)
}

func TestRenderJSON_EmptyIssuesIsArray(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{Tool: "sync", Timestamp: time.Now(), FixedCount: 2}
	require.NoError(t, RenderJSON(&buf, r))

	assert.Contains(t, buf.String(), `"issues": []`)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	summary := doc["summary"].(map[string]any)
	assert.Equal(t, float64(0), summary["total_issues"])
	assert.Equal(t, float64(2), summary["fixed_issues"])
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "incomplete_shipped")
	assert.Contains(t, out, "status_drift")
	assert.Contains(t, out, "F-0001 is shipped")
	assert.Contains(t, out, "2")

	// Issue order matches the input order.
	assert.Less(t,
		strings.Index(out, "incomplete_shipped"),
		strings.Index(out, "status_drift"))
}

func TestRenderText_Clean(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{Tool: "drift", Timestamp: time.Now()}
	require.NoError(t, RenderText(&buf, r))
	assert.Contains(t, buf.String(), "no drift detected")
}

func TestRenderText_AllFixed(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{Tool: "sync", Timestamp: time.Now(), FixedCount: 3}
	require.NoError(t, RenderText(&buf, r))
	assert.Contains(t, buf.String(), "3 issue(s) fixed")
}

func TestRenderDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{Diagnostics: []string{"check documentation-drift failed: boom"}}
	RenderDiagnostics(&buf, r)
	assert.Contains(t, buf.String(), "documentation-drift failed")

	// JSON stays schema-stable regardless of diagnostics.
	var jsonBuf bytes.Buffer
	require.NoError(t, RenderJSON(&jsonBuf, r))
	assert.NotContains(t, jsonBuf.String(), "diagnostic")
}

func TestEveryIssueTypeHasHint(t *testing.T) {
	types := []drift.Type{
		drift.TypeIncompleteShipped, drift.TypeStatusDrift, drift.TypeStaleInProgress,
		drift.TypeOrphanedAcceptance, drift.TypeOrphanedAnnotation, drift.TypeMissingAnnotation,
		drift.TypeStaleFocus, drift.TypeUntrackedFile, drift.TypeHookMisconfigured,
		drift.TypeTemplateMarker, drift.TypeTemplatePlaceholder, drift.TypeDocDrift,
		drift.TypeUndocumentedCode, drift.TypeUndocumentedEndpoint,
	}
	for _, typ := range types {
		assert.NotEmpty(t, hints[typ], "missing hint for %s", typ)
	}
}
