// Package report renders a run's outcome as colorized text or as the
// stable JSON document downstream tooling consumes. Both renderings
// enumerate the same issue set; only diagnostics are text-only.
package report
