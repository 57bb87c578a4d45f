// Package fix decides which detected issues may be repaired automatically
// and applies the repairs. Policy (what is safe in which mode) is separate
// from execution (the file and worktree mutations), and from prompting, so
// the engine can run headless or interactive with the same actions.
package fix
