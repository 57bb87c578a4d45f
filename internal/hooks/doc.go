// Package hooks reads the project's git-hook configuration.
//
// The .drift/hooks.toml file records where hook scripts are installed and
// which commands run on pre-commit and session start. Hook installation
// itself is an external collaborator; this package only parses the file and
// detects a hook path that no longer points at the repository's .git/hooks
// directory, which the fix engine can repair as a SAFE single-field edit.
package hooks
