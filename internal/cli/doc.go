// Package cli builds the drift and sync commands. Both binaries share one
// flag surface and one runner; they differ only in their default fix mode
// and the extra --interactive flag on sync.
package cli
