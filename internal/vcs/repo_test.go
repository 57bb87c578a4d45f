package vcs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one committed file and returns its
// root and worktree.
func initRepo(t *testing.T) (string, *git.Worktree) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	return dir, wt
}

func commitFile(t *testing.T, dir string, wt *git.Worktree, rel, content, msg string, when time.Time) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	_, err := wt.Add(rel)
	require.NoError(t, err)
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: when},
	})
	require.NoError(t, err)
}

func TestOpenNotARepo(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestCommitsSince(t *testing.T) {
	dir, wt := initRepo(t)
	now := time.Now()

	commitFile(t, dir, wt, "old.go", "package old\n", "old work", now.Add(-30*24*time.Hour))
	commitFile(t, dir, wt, "new.go", "package new\n", "F-0001: parser work", now.Add(-time.Hour))

	repo, err := Open(dir)
	require.NoError(t, err)

	commits, err := repo.CommitsSince(now.Add(-7 * 24 * time.Hour))
	require.NoError(t, err)
	require.Len(t, commits, 1)

	c := commits[0]
	assert.Contains(t, c.Message, "F-0001")
	assert.True(t, c.Mentions("F-0001"))
	assert.False(t, c.Mentions("F-0002"))
	require.Len(t, c.Files, 1)
	assert.Equal(t, "new.go", c.Files[0].Path)
	assert.Equal(t, 1, c.Files[0].Added)
}

func TestCommitsSinceEmptyRepo(t *testing.T) {
	dir, _ := initRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)

	commits, err := repo.CommitsSince(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestUntrackedAndStage(t *testing.T) {
	dir, wt := initRepo(t)
	commitFile(t, dir, wt, "tracked.go", "package a\n", "initial", time.Now())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "loose.go"), []byte("package a\n"), 0o644))

	repo, err := Open(dir)
	require.NoError(t, err)

	untracked, err := repo.Untracked()
	require.NoError(t, err)
	assert.Equal(t, []string{"loose.go"}, untracked)

	require.NoError(t, repo.Stage("loose.go"))
	// Staging again is a no-op.
	require.NoError(t, repo.Stage("loose.go"))

	untracked, err = repo.Untracked()
	require.NoError(t, err)
	assert.Empty(t, untracked)
}

func TestLastModified(t *testing.T) {
	dir, wt := initRepo(t)
	old := time.Now().Add(-48 * time.Hour).Truncate(time.Second)

	commitFile(t, dir, wt, "docs/design.md", "# design\n", "docs", old)
	commitFile(t, dir, wt, "main.go", "package main\n", "code", time.Now())

	repo, err := Open(dir)
	require.NoError(t, err)

	got := repo.LastModified("docs/design.md")
	assert.WithinDuration(t, old, got, 2*time.Second)

	assert.True(t, repo.LastModified("missing.md").IsZero())
}

func TestBranch(t *testing.T) {
	dir, wt := initRepo(t)
	commitFile(t, dir, wt, "a.go", "package a\n", "initial", time.Now())

	repo, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "master", repo.Branch())
}
