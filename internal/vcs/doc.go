// Package vcs provides read access to the project's git history and the
// narrowly scoped write operations the fix engine is allowed: staging files.
//
// Outside a git repository every read degrades to an empty result so that
// git-dependent checks are skipped silently rather than failing the run.
package vcs
