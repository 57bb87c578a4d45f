// Package drift implements the rule engine: pure, idempotent checks that
// map one artifact snapshot to a list of typed drift issues.
//
// Checks run in a fixed order and never mutate anything. Each check
// declares the artifacts it needs; the orchestrator skips a check silently
// when a needed artifact is missing. Detection is heuristic and
// pattern-based throughout; there is no semantic program understanding.
package drift
