package drift

import (
	"fmt"
	"path/filepath"
	"strings"
)

// UntrackedFileCheck flags untracked files under the configured source
// roots. Staging them is a SAFE fix: deterministic and reversible with a
// git reset.
type UntrackedFileCheck struct{}

func (UntrackedFileCheck) Name() string      { return "untracked-file" }
func (UntrackedFileCheck) Needs() []Artifact { return []Artifact{ArtifactGit} }
func (UntrackedFileCheck) Fixable() bool     { return true }

func (UntrackedFileCheck) Run(s *Snapshot) []Issue {
	var issues []Issue
	for _, path := range s.Untracked {
		if !underSourceRoot(path, s.Cfg.Scan.SourceRoots) {
			continue
		}
		issues = append(issues, Issue{
			Type:        TypeUntrackedFile,
			File:        path,
			Description: fmt.Sprintf("%s is untracked under a source root", path),
		})
	}
	return issues
}

// underSourceRoot reports whether the slash-separated path sits under one
// of the configured roots.
func underSourceRoot(path string, roots []string) bool {
	path = filepath.ToSlash(path)
	for _, root := range roots {
		root = filepath.ToSlash(root)
		if path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}

// HookConfigCheck flags a hook configuration whose path no longer points
// at the repository's .git/hooks directory, typically after a checkout
// moved. Correcting the path is a SAFE single-field fix.
type HookConfigCheck struct{}

func (HookConfigCheck) Name() string      { return "hook-config" }
func (HookConfigCheck) Needs() []Artifact { return []Artifact{ArtifactHooks, ArtifactGit} }
func (HookConfigCheck) Fixable() bool     { return true }

func (HookConfigCheck) Run(s *Snapshot) []Issue {
	if !s.Hooks.Misconfigured(s.Root) {
		return nil
	}
	return []Issue{{
		Type: TypeHookMisconfigured,
		File: s.Cfg.Hooks.Config,
		Description: fmt.Sprintf("hook path %q does not point at the repository hooks directory",
			s.Hooks.Path),
		Attrs: map[string]any{
			"expected": filepath.ToSlash(filepath.Join(".git", "hooks")),
		},
	}}
}
