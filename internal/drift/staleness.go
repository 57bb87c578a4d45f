package drift

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/driftd/internal/artifact"
)

// StaleInProgressCheck flags in_progress features with no referencing
// commit inside the staleness window and no mention in the status
// document.
type StaleInProgressCheck struct{}

func (StaleInProgressCheck) Name() string      { return "stale-in-progress" }
func (StaleInProgressCheck) Needs() []Artifact { return []Artifact{ArtifactRegistry, ArtifactGit} }
func (StaleInProgressCheck) Fixable() bool     { return false }

func (StaleInProgressCheck) Run(s *Snapshot) []Issue {
	window := s.Cfg.Windows.StaleInProgress
	recent := s.CommitsWithin(window)

	var issues []Issue
	for _, f := range s.Features {
		if f.Status != artifact.StatusInProgress {
			continue
		}
		mentioned := false
		for _, c := range recent {
			if c.Mentions(f.ID) {
				mentioned = true
				break
			}
		}
		if mentioned || s.StatusMentions(f.ID) {
			continue
		}
		days := int(window.Hours() / 24)
		issues = append(issues, Issue{
			Type:    TypeStaleInProgress,
			Feature: f.ID,
			Description: fmt.Sprintf("%s is in_progress but has no commit or status mention in %d days",
				f.ID, days),
			Attrs: map[string]any{
				"window_days": days,
			},
		})
	}
	return issues
}

// StatusFocusStalenessCheck flags a status-document focus whose keywords
// appear in no commit message within the recent window. The correlation is
// keyword overlap only; false positives on short focus phrases are
// accepted.
type StatusFocusStalenessCheck struct{}

func (StatusFocusStalenessCheck) Name() string      { return "status-focus-staleness" }
func (StatusFocusStalenessCheck) Needs() []Artifact { return []Artifact{ArtifactStatus, ArtifactGit} }
func (StatusFocusStalenessCheck) Fixable() bool     { return false }

func (StatusFocusStalenessCheck) Run(s *Snapshot) []Issue {
	keywords := s.Status.Keywords()
	if len(keywords) == 0 {
		return nil
	}

	window := s.Cfg.Windows.Focus
	for _, c := range s.CommitsWithin(window) {
		msg := strings.ToLower(c.Message)
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return nil
			}
		}
	}

	days := int(window.Hours() / 24)
	return []Issue{{
		Type: TypeStaleFocus,
		File: s.Cfg.Status.Path,
		Description: fmt.Sprintf("status focus %q matches no commit in the last %d days",
			s.Status.Focus, days),
		Attrs: map[string]any{
			"keywords":    strings.Join(keywords, ","),
			"window_days": days,
		},
	}}
}
