package drift

import (
	"fmt"

	"github.com/fyrsmithlabs/driftd/internal/artifact"
)

// OrphanedAcceptanceCheck flags acceptance files whose feature id has no
// registry entry.
type OrphanedAcceptanceCheck struct{}

func (OrphanedAcceptanceCheck) Name() string      { return "orphaned-acceptance" }
func (OrphanedAcceptanceCheck) Needs() []Artifact { return []Artifact{ArtifactRegistry, ArtifactAcceptance} }
func (OrphanedAcceptanceCheck) Fixable() bool     { return false }

func (OrphanedAcceptanceCheck) Run(s *Snapshot) []Issue {
	var issues []Issue
	for _, d := range s.Acceptance {
		if _, ok := s.Feature(d.FeatureID); ok {
			continue
		}
		issues = append(issues, Issue{
			Type:        TypeOrphanedAcceptance,
			Feature:     d.FeatureID,
			File:        d.Path,
			Description: fmt.Sprintf("acceptance file %s has no registry entry for %s", d.Path, d.FeatureID),
		})
	}
	return issues
}

// OrphanedAnnotationCheck flags code annotations referencing a feature id
// that does not exist in the registry.
type OrphanedAnnotationCheck struct{}

func (OrphanedAnnotationCheck) Name() string      { return "orphaned-annotation" }
func (OrphanedAnnotationCheck) Needs() []Artifact { return []Artifact{ArtifactRegistry} }
func (OrphanedAnnotationCheck) Fixable() bool     { return false }

func (OrphanedAnnotationCheck) Run(s *Snapshot) []Issue {
	var issues []Issue
	for _, a := range s.Annotations {
		if _, ok := s.Feature(a.FeatureID); ok {
			continue
		}
		issues = append(issues, Issue{
			Type:        TypeOrphanedAnnotation,
			Feature:     a.FeatureID,
			File:        a.Path,
			Description: fmt.Sprintf("%s:%d references %s, which is not in the registry", a.Path, a.Line, a.FeatureID),
			Attrs: map[string]any{
				"line": a.Line,
			},
		})
	}
	return issues
}

// MissingAnnotationCheck flags non-planned features with no code
// annotation at all: work that claims to be underway or done but is
// untraceable in the source tree.
type MissingAnnotationCheck struct{}

func (MissingAnnotationCheck) Name() string      { return "missing-annotation" }
func (MissingAnnotationCheck) Needs() []Artifact { return []Artifact{ArtifactRegistry} }
func (MissingAnnotationCheck) Fixable() bool     { return false }

func (MissingAnnotationCheck) Run(s *Snapshot) []Issue {
	annotated := make(map[string]bool, len(s.Annotations))
	for _, a := range s.Annotations {
		annotated[a.FeatureID] = true
	}

	var issues []Issue
	for _, f := range s.Features {
		if f.Status == artifact.StatusPlanned || annotated[f.ID] {
			continue
		}
		issues = append(issues, Issue{
			Type:        TypeMissingAnnotation,
			Feature:     f.ID,
			Description: fmt.Sprintf("%s is %s but no source file references it", f.ID, f.Status),
			Attrs: map[string]any{
				"status": string(f.Status),
			},
		})
	}
	return issues
}
