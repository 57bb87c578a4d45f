package drift

// Check is one consistency rule. Implementations are pure: identical
// snapshots yield identical issue lists, and Run never mutates anything.
type Check interface {
	// Name is the stable check identifier used for grouping and
	// diagnostics.
	Name() string

	// Needs lists the artifacts the check requires. The orchestrator
	// skips the check silently when one is missing.
	Needs() []Artifact

	// Fixable reports whether some issues of this check support an
	// automated fix.
	Fixable() bool

	// Run evaluates the check against the snapshot.
	Run(s *Snapshot) []Issue
}

// Checks returns every check in its fixed run order. The order is part of
// the engine's contract: reports group issues in this order, and two runs
// over the same snapshot produce identical sequences.
func Checks() []Check {
	return []Check{
		ShippedCompletenessCheck{},
		PendingButActiveCheck{},
		StaleInProgressCheck{},
		OrphanedAcceptanceCheck{},
		OrphanedAnnotationCheck{},
		MissingAnnotationCheck{},
		StatusFocusStalenessCheck{},
		UntrackedFileCheck{},
		HookConfigCheck{},
		TemplateMarkerCheck{},
		DocumentationDriftCheck{},
		UndocumentedExportCheck{},
		UndocumentedEndpointCheck{},
	}
}

// docOriented is the subset --docs restricts a run to.
var docOriented = map[string]bool{
	"template-marker":       true,
	"documentation-drift":   true,
	"undocumented-export":   true,
	"undocumented-endpoint": true,
}

// expensive is the subset quiet mode skips to stay low-latency at session
// start.
var expensive = map[string]bool{
	"documentation-drift":   true,
	"undocumented-export":   true,
	"undocumented-endpoint": true,
}

// DocOriented reports whether the named check is documentation-oriented.
func DocOriented(name string) bool { return docOriented[name] }

// Expensive reports whether the named check is skipped in quiet mode.
func Expensive(name string) bool { return expensive[name] }
