package report

import (
	"time"

	"github.com/fyrsmithlabs/driftd/internal/drift"
)

// Report is the accumulated outcome of one drift or sync run. It replaces
// the ad-hoc global counters of earlier tooling: one value, threaded
// through the engine and returned to the caller.
type Report struct {
	// Tool is "drift" or "sync".
	Tool string

	// Timestamp is when the run started.
	Timestamp time.Time

	// Issues are the unresolved issues, in check order.
	Issues []drift.Issue

	// OKCount is the number of checks that ran and found nothing.
	OKCount int

	// FixedCount is the number of issues repaired during the run.
	FixedCount int

	// Diagnostics are internal check failures. Rendered to stderr in text
	// mode only; the JSON schema stays stable.
	Diagnostics []string
}

// Add appends an unresolved issue.
func (r *Report) Add(issue drift.Issue) {
	r.Issues = append(r.Issues, issue)
}

// IssueCount returns the number of unresolved issues.
func (r *Report) IssueCount() int { return len(r.Issues) }

// Clean reports whether the run found nothing and fixed nothing.
func (r *Report) Clean() bool { return len(r.Issues) == 0 && r.FixedCount == 0 }
