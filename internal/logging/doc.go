// Package logging provides the zap-based logger used by the drift and sync
// commands.
//
// Diagnostics always go to stderr; stdout is reserved for report output so
// that JSON consumers never see log lines mixed into the document.
package logging
