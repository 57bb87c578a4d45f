// Package artifact parses the loosely-structured project artifacts the drift
// engine keeps consistent: the feature registry, acceptance-criteria files,
// the status document, the session journal, code annotations, and scanned
// documentation.
//
// Every reader follows the same contract: a missing source file yields an
// empty result, never an error, so checks that depend on the artifact are
// skipped silently. Parsing is heuristic and tolerant; unknown fields default
// rather than fail.
package artifact
