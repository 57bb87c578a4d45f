package fix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/driftd/internal/artifact"
	"github.com/fyrsmithlabs/driftd/internal/config"
	"github.com/fyrsmithlabs/driftd/internal/drift"
	"github.com/fyrsmithlabs/driftd/internal/hooks"
	"github.com/fyrsmithlabs/driftd/internal/logging"
	"github.com/fyrsmithlabs/driftd/internal/vcs"
)

// ErrConflict indicates the fix target changed or vanished between
// detection and repair. The engine aborts that one fix and moves on.
var ErrConflict = errors.New("fix target changed since detection")

// Applier executes the repair for an issue the policy decided to apply.
// All file writes go through WriteFileAtomic; worktree mutations go
// through the vcs layer.
type Applier struct {
	Root string
	Repo *vcs.Repo
	Cfg  *config.Config
	Log  *logging.Logger
}

// Apply repairs one issue. Calling it for an issue type with no automated
// repair is an engine bug and returns an error.
func (a *Applier) Apply(issue drift.Issue) error {
	switch issue.Type {
	case drift.TypeUntrackedFile:
		return a.stageUntracked(issue)
	case drift.TypeHookMisconfigured:
		return a.repairHookPath()
	case drift.TypeIncompleteShipped:
		return a.completeAcceptance(issue)
	case drift.TypeStatusDrift:
		return a.promoteFeature(issue)
	default:
		return fmt.Errorf("no automated fix for issue type %s", issue.Type)
	}
}

// stageUntracked adds the untracked file to the index. Reversible with a
// git reset.
func (a *Applier) stageUntracked(issue drift.Issue) error {
	if a.Repo == nil {
		return fmt.Errorf("staging %s: %w", issue.File, vcs.ErrNoRepository)
	}
	if _, err := os.Stat(filepath.Join(a.Root, issue.File)); err != nil {
		return fmt.Errorf("%w: %s", ErrConflict, issue.File)
	}
	if err := a.Repo.Stage(issue.File); err != nil {
		return fmt.Errorf("staging %s: %w", issue.File, err)
	}
	a.Log.Info("staged untracked file", zap.String("file", issue.File))
	return nil
}

// repairHookPath points the hook configuration back at the repository's
// hooks directory, written as a project-relative path so the config
// survives the checkout moving again.
func (a *Applier) repairHookPath() error {
	path := filepath.Join(a.Root, a.Cfg.Hooks.Config)
	cfg, err := hooks.Load(path)
	if err != nil {
		if errors.Is(err, hooks.ErrNotConfigured) {
			return fmt.Errorf("%w: %s", ErrConflict, a.Cfg.Hooks.Config)
		}
		return err
	}

	cfg.Path = filepath.Join(".git", "hooks")
	data, err := hooks.Encode(cfg)
	if err != nil {
		return err
	}
	if err := WriteFileAtomic(path, data, 0o644); err != nil {
		return err
	}
	a.Log.Info("repaired hook path", zap.String("config", a.Cfg.Hooks.Config))
	return nil
}

// completeAcceptance checks every criterion of the feature's acceptance
// file. Only reachable when the user affirmed code is authoritative or
// confirmed interactively.
func (a *Applier) completeAcceptance(issue drift.Issue) error {
	path := issue.File
	if path == "" {
		path = filepath.Join(a.Cfg.Acceptance.Dir, issue.Feature+".md")
	}
	full := filepath.Join(a.Root, path)

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConflict, path)
		}
		return err
	}

	text, n := artifact.CheckAllCriteria(string(data))
	if n == 0 {
		// Already complete; someone fixed it between detection and now.
		return nil
	}
	if err := WriteFileAtomic(full, []byte(text), 0o644); err != nil {
		return err
	}
	a.Log.Info("checked acceptance criteria",
		zap.String("feature", issue.Feature),
		zap.Int("criteria", n))
	return nil
}

// promoteFeature moves a planned feature whose criteria are largely done
// to in_progress in the registry. A single-field edit in either schema.
func (a *Applier) promoteFeature(issue drift.Issue) error {
	full := filepath.Join(a.Root, a.Cfg.Registry.Path)
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConflict, a.Cfg.Registry.Path)
		}
		return err
	}

	text, found := artifact.SetFeatureStatus(string(data), issue.Feature, artifact.StatusInProgress)
	if !found {
		return fmt.Errorf("%w: %s not in registry", ErrConflict, issue.Feature)
	}
	if err := WriteFileAtomic(full, []byte(text), 0o644); err != nil {
		return err
	}
	a.Log.Info("promoted feature",
		zap.String("feature", issue.Feature),
		zap.String("status", string(artifact.StatusInProgress)))
	return nil
}
