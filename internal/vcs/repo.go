package vcs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNoRepository indicates the directory is not inside a git repository.
var ErrNoRepository = errors.New("not a git repository")

// FileStat is one file touched by a commit, with its add/remove line
// counts.
type FileStat struct {
	Path    string
	Added   int
	Removed int
}

// Commit is the subset of a git commit the drift checks consume.
type Commit struct {
	Hash    string
	When    time.Time
	Message string
	Files   []FileStat
}

// Mentions reports whether the commit message references the given feature
// id.
func (c Commit) Mentions(featureID string) bool {
	return strings.Contains(c.Message, featureID)
}

// Repo wraps an opened git repository.
type Repo struct {
	repo *git.Repository
	root string
}

// Open opens the repository at root. Returns ErrNoRepository when root is
// not version-controlled.
func Open(root string) (*Repo, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNoRepository, root)
		}
		return nil, fmt.Errorf("opening repository: %w", err)
	}
	return &Repo{repo: repo, root: root}, nil
}

// Branch returns the current branch name, or "detached" when HEAD does not
// point at a branch.
func (r *Repo) Branch() string {
	head, err := r.repo.Head()
	if err != nil {
		return "detached"
	}
	if head.Name().IsBranch() {
		return head.Name().Short()
	}
	return "detached"
}

// CommitsSince returns commits newer than the given time, newest first.
// Per-commit file stats are best effort; a commit whose stats cannot be
// computed is still returned without them.
func (r *Repo) CommitsSince(since time.Time) ([]Commit, error) {
	iter, err := r.repo.Log(&git.LogOptions{Since: &since})
	if err != nil {
		// An empty repository has no HEAD to log from.
		return nil, nil
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		commit := Commit{
			Hash:    c.Hash.String(),
			When:    c.Committer.When,
			Message: c.Message,
		}
		if stats, statErr := c.Stats(); statErr == nil {
			for _, s := range stats {
				commit.Files = append(commit.Files, FileStat{
					Path:    s.Name,
					Added:   s.Addition,
					Removed: s.Deletion,
				})
			}
		}
		commits = append(commits, commit)
		return nil
	})
	if err != nil {
		return commits, fmt.Errorf("walking log: %w", err)
	}

	sort.Slice(commits, func(i, j int) bool { return commits[i].When.After(commits[j].When) })
	return commits, nil
}

// LastModified returns the committer time of the newest commit touching
// path (relative, slash-separated). Zero time when the path has no history.
func (r *Repo) LastModified(path string) time.Time {
	iter, err := r.repo.Log(&git.LogOptions{FileName: &path})
	if err != nil {
		return time.Time{}
	}
	defer iter.Close()

	c, err := iter.Next()
	if err != nil {
		return time.Time{}
	}
	return c.Committer.When
}

// Untracked returns the worktree-relative paths of untracked files.
func (r *Repo) Untracked() ([]string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	var untracked []string
	for path, st := range status {
		if st.Worktree == git.Untracked {
			untracked = append(untracked, path)
		}
	}
	sort.Strings(untracked)
	return untracked, nil
}

// Stage adds the given worktree-relative path to the index. Staging an
// already-staged file is a no-op, which keeps the fix action idempotent.
func (r *Repo) Stage(path string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	if _, err := wt.Add(path); err != nil {
		return fmt.Errorf("staging %s: %w", path, err)
	}
	return nil
}
