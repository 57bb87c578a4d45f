package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/driftd/internal/config"
	"github.com/fyrsmithlabs/driftd/internal/drift"
	"github.com/fyrsmithlabs/driftd/internal/fix"
	"github.com/fyrsmithlabs/driftd/internal/logging"
	"github.com/fyrsmithlabs/driftd/internal/report"
)

// Engine runs checks and fixes for one project root.
type Engine struct {
	Root string
	Cfg  *config.Config
	Log  *logging.Logger
}

// New builds an engine.
func New(root string, cfg *config.Config, log *logging.Logger) *Engine {
	return &Engine{Root: root, Cfg: cfg, Log: log.Named("engine")}
}

// Options selects what one run does and where its output goes.
type Options struct {
	// Tool is "drift" or "sync"; it tags the report.
	Tool string

	// Mode governs fixing: check never mutates, interactive prompts, full
	// applies the safe set.
	Mode fix.Mode

	// ExitOnIssues makes remaining issues produce exit code 1.
	ExitOnIssues bool

	// JSON selects the machine-readable rendering.
	JSON bool

	// DocsOnly restricts the run to documentation-oriented checks.
	DocsOnly bool

	// Quiet skips the expensive scans and prints nothing when clean.
	Quiet bool

	// Manifest scopes the snapshot to one feature's recorded change set.
	Manifest string

	// Gaps, Orphans and Tests narrow the processed issue set. Unset means
	// everything; set flags are a union.
	Gaps    bool
	Orphans bool
	Tests   bool

	// Prompter answers interactive-mode questions.
	Prompter fix.Prompter

	// Now fixes the run's clock; zero means wall clock.
	Now time.Time

	Out    io.Writer
	ErrOut io.Writer
}

// Run executes one drift or sync pass and returns the report plus the
// process exit code.
func (e *Engine) Run(opts Options) (*report.Report, int, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	log := e.Log.With(zap.String("run_id", uuid.NewString()[:8]))
	log.Debug("run starting",
		zap.String("tool", opts.Tool),
		zap.String("mode", string(opts.Mode)))

	snap, repo, diags, err := e.buildSnapshot(now, opts.Quiet)
	if err != nil {
		return nil, 1, err
	}
	if opts.Manifest != "" {
		if _, ok := snap.Feature(opts.Manifest); !ok {
			return nil, 1, fmt.Errorf("feature %s not in registry", opts.Manifest)
		}
		snap = snap.ScopeToFeature(opts.Manifest)
	}

	rep := &report.Report{Tool: opts.Tool, Timestamp: now, Diagnostics: diags}
	policy := &fix.Policy{Mode: opts.Mode, Cfg: e.Cfg, Prompter: opts.Prompter}
	applier := &fix.Applier{Root: e.Root, Repo: repo, Cfg: e.Cfg, Log: log}

	for _, check := range drift.Checks() {
		if opts.DocsOnly && !drift.DocOriented(check.Name()) {
			continue
		}
		if opts.Quiet && drift.Expensive(check.Name()) {
			continue
		}
		if missing := missingArtifact(check, snap); missing != "" {
			log.Debug("skipping check",
				zap.String("check", check.Name()),
				zap.String("missing", missing))
			continue
		}

		issues := e.runCheck(check, snap, rep)
		kept := 0
		for _, issue := range issues {
			if !selected(opts, issue.Type) {
				continue
			}
			kept++
			e.process(policy, applier, rep, issue)
		}
		if kept == 0 {
			rep.OKCount++
		}
	}

	if err := e.render(opts, rep); err != nil {
		return rep, 1, err
	}

	code := 0
	if opts.ExitOnIssues && rep.IssueCount() > 0 {
		code = 1
	}
	return rep, code, nil
}

// runCheck isolates one check: a panic degrades to zero issues plus a
// diagnostic instead of killing the run.
func (e *Engine) runCheck(check drift.Check, snap *drift.Snapshot, rep *report.Report) (issues []drift.Issue) {
	defer func() {
		if r := recover(); r != nil {
			rep.Diagnostics = append(rep.Diagnostics,
				fmt.Sprintf("check %s failed: %v", check.Name(), r))
			issues = nil
		}
	}()
	return check.Run(snap)
}

// process routes one issue through the policy and applies or records it.
func (e *Engine) process(policy *fix.Policy, applier *fix.Applier, rep *report.Report, issue drift.Issue) {
	action, err := policy.Decide(issue)
	if err != nil {
		rep.Diagnostics = append(rep.Diagnostics,
			fmt.Sprintf("deciding %s: %v", issue.Type, err))
		rep.Add(issue)
		return
	}

	switch action {
	case fix.ActionApply:
		if err := applier.Apply(issue); err != nil {
			if errors.Is(err, fix.ErrConflict) {
				rep.Diagnostics = append(rep.Diagnostics,
					fmt.Sprintf("fix aborted: %v", err))
			} else {
				rep.Diagnostics = append(rep.Diagnostics,
					fmt.Sprintf("fix %s failed: %v", issue.Type, err))
			}
			rep.Add(issue)
			return
		}
		rep.FixedCount++
	case fix.ActionSkip:
		// Deliberately left alone; not pending, not fixed.
	default:
		rep.Add(issue)
	}
}

// missingArtifact returns the first needed artifact absent from the
// snapshot, or "" when the check can run.
func missingArtifact(check drift.Check, snap *drift.Snapshot) string {
	for _, need := range check.Needs() {
		if !snap.Has(need) {
			return string(need)
		}
	}
	return ""
}

// selected applies the --gaps / --orphans / --tests narrowing.
func selected(opts Options, t drift.Type) bool {
	if !opts.Gaps && !opts.Orphans && !opts.Tests {
		return true
	}
	if opts.Gaps {
		switch t {
		case drift.TypeMissingAnnotation, drift.TypeUndocumentedCode, drift.TypeUndocumentedEndpoint:
			return true
		}
	}
	if opts.Orphans {
		switch t {
		case drift.TypeOrphanedAcceptance, drift.TypeOrphanedAnnotation:
			return true
		}
	}
	if opts.Tests {
		switch t {
		case drift.TypeIncompleteShipped, drift.TypeStatusDrift:
			return true
		}
	}
	return false
}

// render writes the report. Quiet clean runs stay silent in text mode;
// JSON output is always emitted so downstream parsing never breaks.
func (e *Engine) render(opts Options, rep *report.Report) error {
	if opts.JSON {
		return report.RenderJSON(opts.Out, rep)
	}
	if opts.Quiet && rep.Clean() {
		report.RenderDiagnostics(opts.ErrOut, rep)
		return nil
	}
	if err := report.RenderText(opts.Out, rep); err != nil {
		return err
	}
	report.RenderDiagnostics(opts.ErrOut, rep)
	return nil
}
