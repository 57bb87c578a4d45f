package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/driftd/internal/drift"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	issueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	cleanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	fixedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	diagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// hints maps issue types to the one-line remediation shown under each
// issue in text mode.
var hints = map[drift.Type]string{
	drift.TypeIncompleteShipped:    "check the remaining criteria or revert the status to in_progress",
	drift.TypeStatusDrift:          "update the registry status to in_progress",
	drift.TypeStaleInProgress:      "commit against the feature, mention it in the status doc, or pause it",
	drift.TypeOrphanedAcceptance:   "add the feature to the registry or remove the acceptance file",
	drift.TypeOrphanedAnnotation:   "add the feature to the registry or drop the annotation",
	drift.TypeMissingAnnotation:    "annotate the implementing source files with the feature id",
	drift.TypeStaleFocus:           "update the status document focus",
	drift.TypeUntrackedFile:        "run sync to stage it, or add it to .gitignore",
	drift.TypeHookMisconfigured:    "run sync to repoint the hook path",
	drift.TypeTemplateMarker:       "fill in or remove the marker",
	drift.TypeTemplatePlaceholder:  "expand the placeholder",
	drift.TypeDocDrift:             "review the doc against the recent code changes",
	drift.TypeUndocumentedCode:     "mention the exported symbols in the docs",
	drift.TypeUndocumentedEndpoint: "document the route",
}

// RenderText writes the human-readable report: issues grouped by type in
// check order, a remediation hint per issue, and a closing summary line.
func RenderText(w io.Writer, r *Report) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s report", r.Tool)))

	var lastType drift.Type
	for _, issue := range r.Issues {
		if issue.Type != lastType {
			fmt.Fprintf(w, "\n%s\n", typeStyle.Render(string(issue.Type)))
			lastType = issue.Type
		}
		fmt.Fprintf(w, "  %s\n", issueStyle.Render(issue.Description))
		if hint, ok := hints[issue.Type]; ok {
			fmt.Fprintf(w, "    %s\n", hintStyle.Render(hint))
		}
	}

	fmt.Fprintln(w)
	switch {
	case r.Clean():
		fmt.Fprintln(w, cleanStyle.Render("no drift detected"))
	case len(r.Issues) == 0:
		fmt.Fprintln(w, fixedStyle.Render(fmt.Sprintf("%d issue(s) fixed, none remaining", r.FixedCount)))
	default:
		summary := fmt.Sprintf("%s issue(s) remaining", countStyle.Render(fmt.Sprintf("%d", len(r.Issues))))
		if r.FixedCount > 0 {
			summary += fixedStyle.Render(fmt.Sprintf(", %d fixed", r.FixedCount))
		}
		fmt.Fprintln(w, summary)
	}
	return nil
}

// RenderDiagnostics writes internal check failures. Kept separate from
// RenderText so the engine can direct them to stderr.
func RenderDiagnostics(w io.Writer, r *Report) {
	for _, d := range r.Diagnostics {
		fmt.Fprintln(w, diagStyle.Render("diagnostic: "+d))
	}
}
