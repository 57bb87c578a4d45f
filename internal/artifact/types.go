package artifact

import (
	"regexp"
	"time"
)

// FeatureIDPattern matches feature identifiers such as F-0001.
var FeatureIDPattern = regexp.MustCompile(`\bF-\d{4}\b`)

// Status is the lifecycle state of a feature.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusShipped    Status = "shipped"
	StatusDeprecated Status = "deprecated"
	StatusPaused     Status = "paused"
)

// ParseStatus normalizes a raw status string. Unknown values default to
// planned; "pending" is a legacy spelling of planned.
func ParseStatus(raw string) Status {
	switch Status(normalizeToken(raw)) {
	case StatusPlanned, "pending":
		return StatusPlanned
	case StatusInProgress, "in-progress", "inprogress", "active", "wip":
		return StatusInProgress
	case StatusShipped, "done", "complete", "released":
		return StatusShipped
	case StatusDeprecated:
		return StatusDeprecated
	case StatusPaused, "on_hold", "on-hold", "blocked":
		return StatusPaused
	default:
		return StatusPlanned
	}
}

// Schema identifies which of the two registry text schemas a feature came
// from.
type Schema string

const (
	SchemaTable   Schema = "table"
	SchemaHeading Schema = "heading"
)

// Feature is one entry of the feature registry. Features are created by
// humans or agents editing the registry, mutated only through single-field
// edits, and never deleted (only marked deprecated).
type Feature struct {
	ID     string
	Name   string
	Status Status
	Schema Schema
}

// Criterion is one acceptance-criteria checklist line.
type Criterion struct {
	Text    string
	Checked bool
}

// AcceptanceDoc is the parsed acceptance-criteria file of one feature.
type AcceptanceDoc struct {
	FeatureID string
	Path      string
	Criteria  []Criterion
}

// Total returns the number of criteria.
func (d AcceptanceDoc) Total() int { return len(d.Criteria) }

// Complete returns the number of checked criteria.
func (d AcceptanceDoc) Complete() int {
	n := 0
	for _, c := range d.Criteria {
		if c.Checked {
			n++
		}
	}
	return n
}

// Unchecked returns the criteria that are not checked.
func (d AcceptanceDoc) Unchecked() []Criterion {
	var out []Criterion
	for _, c := range d.Criteria {
		if !c.Checked {
			out = append(out, c)
		}
	}
	return out
}

// CompletionPercent returns completion as 0-100. A doc with zero criteria
// reports 0, never a division fault.
func (d AcceptanceDoc) CompletionPercent() int {
	if len(d.Criteria) == 0 {
		return 0
	}
	return d.Complete() * 100 / len(d.Criteria)
}

// StatusDoc is the parsed status document.
type StatusDoc struct {
	Focus       string
	Progress    string
	NextStep    string
	Blocker     string
	LastUpdated time.Time
	// RawLastUpdated keeps the original text when the timestamp could not
	// be parsed.
	RawLastUpdated string
}

// JournalEntry is one session-journal entry.
type JournalEntry struct {
	Timestamp    time.Time
	Topic        string
	Accomplished []string
	NextSteps    []string
	Blockers     []string
	Meta         map[string]any
}

// Annotation is a feature reference found in a source comment.
type Annotation struct {
	FeatureID string
	Path      string
	Line      int
}

// DocFile is a scanned documentation file.
type DocFile struct {
	Path string
	Text string
}

// SourceFile is a scanned source file, used by the best-effort
// undocumented-export and endpoint checks.
type SourceFile struct {
	Path string
	Text string
}
