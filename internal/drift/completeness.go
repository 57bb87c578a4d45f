package drift

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/driftd/internal/artifact"
)

// statusDriftThreshold is the criteria completion percentage at which a
// planned feature looks like it is actually being worked on.
const statusDriftThreshold = 50

// ShippedCompletenessCheck flags shipped features whose acceptance
// criteria are not all checked. A feature with no criteria at all is never
// flagged.
type ShippedCompletenessCheck struct{}

func (ShippedCompletenessCheck) Name() string     { return "shipped-completeness" }
func (ShippedCompletenessCheck) Needs() []Artifact { return []Artifact{ArtifactRegistry, ArtifactAcceptance} }
func (ShippedCompletenessCheck) Fixable() bool    { return true }

func (ShippedCompletenessCheck) Run(s *Snapshot) []Issue {
	var issues []Issue
	for _, f := range s.Features {
		if f.Status != artifact.StatusShipped {
			continue
		}
		acc, ok := s.AcceptanceFor(f.ID)
		if !ok || acc.Total() == 0 {
			continue
		}
		unchecked := acc.Unchecked()
		if len(unchecked) == 0 {
			continue
		}
		issues = append(issues, Issue{
			Type:    TypeIncompleteShipped,
			Feature: f.ID,
			File:    acc.Path,
			Description: fmt.Sprintf("%s is shipped but %d of %d criteria unchecked: %s",
				f.ID, len(unchecked), acc.Total(), criteriaSummary(unchecked)),
			Attrs: map[string]any{
				"unchecked": len(unchecked),
				"total":     acc.Total(),
			},
		})
	}
	return issues
}

// criteriaSummary names up to three unchecked criteria.
func criteriaSummary(criteria []artifact.Criterion) string {
	names := make([]string, 0, 3)
	for i, c := range criteria {
		if i == 3 {
			names = append(names, "...")
			break
		}
		names = append(names, fmt.Sprintf("%q", c.Text))
	}
	return strings.Join(names, ", ")
}

// PendingButActiveCheck flags planned features whose acceptance criteria
// are at least half complete, a sign the registry status lags reality.
type PendingButActiveCheck struct{}

func (PendingButActiveCheck) Name() string      { return "pending-but-active" }
func (PendingButActiveCheck) Needs() []Artifact { return []Artifact{ArtifactRegistry, ArtifactAcceptance} }
func (PendingButActiveCheck) Fixable() bool     { return false }

func (PendingButActiveCheck) Run(s *Snapshot) []Issue {
	var issues []Issue
	for _, f := range s.Features {
		if f.Status != artifact.StatusPlanned {
			continue
		}
		acc, ok := s.AcceptanceFor(f.ID)
		if !ok || acc.Total() == 0 {
			continue
		}
		completion := acc.CompletionPercent()
		if completion < statusDriftThreshold {
			continue
		}
		issues = append(issues, Issue{
			Type:    TypeStatusDrift,
			Feature: f.ID,
			File:    acc.Path,
			Description: fmt.Sprintf("%s is planned but its criteria are %d%% complete",
				f.ID, completion),
			Attrs: map[string]any{
				"completion": completion,
			},
		})
	}
	return issues
}
