package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/driftd/internal/artifact"
	"github.com/fyrsmithlabs/driftd/internal/drift"
	"github.com/fyrsmithlabs/driftd/internal/hooks"
	"github.com/fyrsmithlabs/driftd/internal/vcs"
)

// buildSnapshot loads every artifact once. Readers are tolerant: a missing
// file leaves its slot empty and the dependent checks skip, and a corrupt
// optional artifact degrades to a diagnostic. Only real I/O failures on
// present files abort the run. Quiet runs skip the source scan and the
// per-doc history lookups; the checks needing them are filtered out anyway.
func (e *Engine) buildSnapshot(now time.Time, quiet bool) (*drift.Snapshot, *vcs.Repo, []string, error) {
	cfg := e.Cfg
	snap := &drift.Snapshot{Root: e.Root, Now: now, Cfg: cfg}
	var diags []string

	features, err := artifact.LoadRegistry(filepath.Join(e.Root, cfg.Registry.Path))
	if err != nil {
		return nil, nil, nil, err
	}
	snap.Features = features

	acceptance, err := artifact.LoadAcceptanceDir(e.Root, cfg.Acceptance.Dir)
	if err != nil {
		return nil, nil, nil, err
	}
	snap.Acceptance = acceptance

	status, err := artifact.LoadStatusDoc(filepath.Join(e.Root, cfg.Status.Path))
	if err != nil {
		return nil, nil, nil, err
	}
	snap.Status = status

	journal, err := artifact.LoadJournal(filepath.Join(e.Root, cfg.Journal.Path))
	if err != nil {
		return nil, nil, nil, err
	}
	snap.Journal = journal

	matcher, err := artifact.LoadMatcher(e.Root)
	if err != nil {
		e.Log.Warn("ignore patterns unavailable", zap.Error(err))
		matcher = artifact.NewMatcher(artifact.DefaultIgnorePatterns)
	}

	snap.Annotations = artifact.ScanAnnotations(e.Root, cfg.Scan.SourceRoots, cfg.Scan.Extensions, matcher)
	snap.Docs = artifact.ScanDocs(e.Root, cfg.Scan.DocsDir, matcher)
	if !quiet {
		snap.Sources = artifact.ScanSources(e.Root, cfg.Scan.SourceRoots, cfg.Scan.Extensions, matcher)
	}

	repo, err := vcs.Open(e.Root)
	switch {
	case errors.Is(err, vcs.ErrNoRepository):
		e.Log.Debug("no repository; git-backed checks will skip")
	case err != nil:
		return nil, nil, nil, err
	default:
		snap.GitAvailable = true

		window := cfg.Windows.StaleInProgress
		if cfg.Windows.DocStaleness > window {
			window = cfg.Windows.DocStaleness
		}
		commits, err := repo.CommitsSince(now.Add(-window))
		if err != nil {
			return nil, nil, nil, err
		}
		snap.Commits = commits

		untracked, err := repo.Untracked()
		if err != nil {
			return nil, nil, nil, err
		}
		snap.Untracked = untracked

		if !quiet {
			snap.DocModTimes = make(map[string]time.Time, len(snap.Docs))
			for _, doc := range snap.Docs {
				if t := repo.LastModified(doc.Path); !t.IsZero() {
					snap.DocModTimes[doc.Path] = t
				}
			}
		}
	}

	hooksCfg, err := hooks.Load(filepath.Join(e.Root, cfg.Hooks.Config))
	switch {
	case err == nil:
		snap.Hooks = hooksCfg
	case errors.Is(err, hooks.ErrNotConfigured):
		// Nothing to validate.
	default:
		// A corrupt hook config must not take the rest of the run down;
		// the dependent check skips and the report carries a diagnostic.
		diags = append(diags, fmt.Sprintf("hooks config unreadable: %v", err))
	}

	return snap, repo, diags, nil
}
