// Package engine orchestrates a run: it assembles one immutable artifact
// snapshot, executes every check against it in a fixed order, routes each
// issue through the fix policy, and renders the resulting report. It is
// the only place that invokes mutating fix actions.
package engine
