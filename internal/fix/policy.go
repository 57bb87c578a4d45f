package fix

import (
	"fmt"

	"github.com/fyrsmithlabs/driftd/internal/config"
	"github.com/fyrsmithlabs/driftd/internal/drift"
)

// Mode is the run mode governing which fixes are applied.
type Mode string

const (
	// ModeCheck reports only; nothing is mutated.
	ModeCheck Mode = "check"

	// ModeInteractive prompts per repairable issue.
	ModeInteractive Mode = "interactive"

	// ModeFull applies every safe fix without prompting.
	ModeFull Mode = "full"
)

// Action is the three-valued fix decision.
type Action string

const (
	// ActionApply runs the repair.
	ActionApply Action = "apply"

	// ActionSkip leaves the issue alone without surfacing it as pending.
	ActionSkip Action = "skip"

	// ActionEscalate surfaces the issue to the report for a human.
	ActionEscalate Action = "escalate"
)

// Safe reports whether an issue type is a safe fix: automatable,
// reversible through version control, and a single-field mutation.
// Marking a shipped feature's criteria complete is only safe when the
// user has affirmed that code is authoritative.
func Safe(t drift.Type, cfg *config.Config) bool {
	switch t {
	case drift.TypeUntrackedFile, drift.TypeHookMisconfigured:
		return true
	case drift.TypeIncompleteShipped:
		return cfg.Fixes.CodeAuthoritative
	default:
		return false
	}
}

// Repairable reports whether an automated action exists for the issue
// type at all, safe or not. Unsafe repairs are only reachable through an
// interactive confirmation.
func Repairable(t drift.Type, cfg *config.Config) bool {
	if Safe(t, cfg) {
		return true
	}
	switch t {
	case drift.TypeIncompleteShipped, drift.TypeStatusDrift:
		return true
	default:
		return false
	}
}

// Policy turns an issue into a fix decision for the configured mode.
type Policy struct {
	Mode     Mode
	Cfg      *config.Config
	Prompter Prompter
}

// Decide returns the action for one issue. Check mode never applies; full
// mode applies exactly the safe set; interactive mode asks the prompter
// about every repairable issue and escalates the rest.
func (p *Policy) Decide(issue drift.Issue) (Action, error) {
	switch p.Mode {
	case ModeCheck:
		return ActionEscalate, nil
	case ModeFull:
		if Safe(issue.Type, p.Cfg) {
			return ActionApply, nil
		}
		return ActionEscalate, nil
	case ModeInteractive:
		if !Repairable(issue.Type, p.Cfg) {
			return ActionEscalate, nil
		}
		ok, err := p.Prompter.Confirm(fmt.Sprintf("fix %s: %s?", issue.Type, issue.Description))
		if err != nil {
			return ActionEscalate, err
		}
		if ok {
			return ActionApply, nil
		}
		return ActionSkip, nil
	default:
		return ActionEscalate, fmt.Errorf("unknown fix mode %q", p.Mode)
	}
}
