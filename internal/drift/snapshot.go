package drift

import (
	"strings"
	"time"

	"github.com/fyrsmithlabs/driftd/internal/artifact"
	"github.com/fyrsmithlabs/driftd/internal/config"
	"github.com/fyrsmithlabs/driftd/internal/hooks"
	"github.com/fyrsmithlabs/driftd/internal/vcs"
)

// Artifact names an input a check depends on. Scan-derived inputs
// (annotations, docs, sources) are always considered present; only the
// file-backed and environment-backed artifacts below can be missing.
type Artifact string

const (
	ArtifactRegistry   Artifact = "registry"
	ArtifactAcceptance Artifact = "acceptance"
	ArtifactStatus     Artifact = "status"
	ArtifactJournal    Artifact = "journal"
	ArtifactGit        Artifact = "git"
	ArtifactHooks      Artifact = "hooks"
)

// Snapshot is the immutable view of all artifacts one run operates on.
// Every check reads the same snapshot; identical snapshots produce
// identical issue lists.
type Snapshot struct {
	Root string
	Now  time.Time
	Cfg  *config.Config

	Features    []artifact.Feature
	Acceptance  []artifact.AcceptanceDoc
	Status      *artifact.StatusDoc
	Journal     []artifact.JournalEntry
	Annotations []artifact.Annotation
	Docs        []artifact.DocFile
	Sources     []artifact.SourceFile

	// GitAvailable is false outside a repository; all git-backed fields
	// below are empty in that case.
	GitAvailable bool
	Commits      []vcs.Commit
	Untracked    []string
	DocModTimes  map[string]time.Time

	Hooks *hooks.Config
}

// Has reports whether a file-backed or environment-backed artifact is
// present.
func (s *Snapshot) Has(a Artifact) bool {
	switch a {
	case ArtifactRegistry:
		return len(s.Features) > 0
	case ArtifactAcceptance:
		return len(s.Acceptance) > 0
	case ArtifactStatus:
		return s.Status != nil
	case ArtifactJournal:
		return len(s.Journal) > 0
	case ArtifactGit:
		return s.GitAvailable
	case ArtifactHooks:
		return s.Hooks != nil
	default:
		return true
	}
}

// Feature looks up a registry entry by id.
func (s *Snapshot) Feature(id string) (artifact.Feature, bool) {
	for _, f := range s.Features {
		if f.ID == id {
			return f, true
		}
	}
	return artifact.Feature{}, false
}

// AcceptanceFor returns the acceptance doc linked to a feature id.
func (s *Snapshot) AcceptanceFor(id string) (artifact.AcceptanceDoc, bool) {
	for _, d := range s.Acceptance {
		if d.FeatureID == id {
			return d, true
		}
	}
	return artifact.AcceptanceDoc{}, false
}

// CommitsWithin returns the commits newer than Now minus the window.
func (s *Snapshot) CommitsWithin(window time.Duration) []vcs.Commit {
	cutoff := s.Now.Add(-window)
	var out []vcs.Commit
	for _, c := range s.Commits {
		if c.When.After(cutoff) {
			out = append(out, c)
		}
	}
	return out
}

// StatusMentions reports whether the status document references the
// feature id anywhere.
func (s *Snapshot) StatusMentions(id string) bool {
	if s.Status == nil {
		return false
	}
	joined := strings.Join([]string{
		s.Status.Focus, s.Status.Progress, s.Status.NextStep, s.Status.Blocker,
	}, "\n")
	return strings.Contains(joined, id)
}

// ScopeToFeature narrows the snapshot to one feature's manifest: its
// registry entry, acceptance doc, annotations, the commits mentioning it,
// and the source files those commits touched. Documentation and the status
// document stay, since doc checks still apply within the scope.
func (s *Snapshot) ScopeToFeature(id string) *Snapshot {
	scoped := *s

	scoped.Features = nil
	if f, ok := s.Feature(id); ok {
		scoped.Features = []artifact.Feature{f}
	}

	scoped.Acceptance = nil
	for _, d := range s.Acceptance {
		if d.FeatureID == id {
			scoped.Acceptance = append(scoped.Acceptance, d)
		}
	}

	scoped.Annotations = nil
	for _, a := range s.Annotations {
		if a.FeatureID == id {
			scoped.Annotations = append(scoped.Annotations, a)
		}
	}

	scoped.Commits = nil
	touched := make(map[string]bool)
	for _, c := range s.Commits {
		if !c.Mentions(id) {
			continue
		}
		scoped.Commits = append(scoped.Commits, c)
		for _, f := range c.Files {
			touched[f.Path] = true
		}
	}
	for _, a := range scoped.Annotations {
		touched[a.Path] = true
	}

	scoped.Sources = nil
	for _, src := range s.Sources {
		if touched[src.Path] {
			scoped.Sources = append(scoped.Sources, src)
		}
	}

	// Untracked files carry no feature attribution.
	scoped.Untracked = nil

	return &scoped
}
