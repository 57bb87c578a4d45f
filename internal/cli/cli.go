package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/driftd/internal/config"
	"github.com/fyrsmithlabs/driftd/internal/engine"
	"github.com/fyrsmithlabs/driftd/internal/fix"
	"github.com/fyrsmithlabs/driftd/internal/logging"
)

// version is set at build time.
var version = "dev"

// exitError carries an exit code through cobra's error return.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// usageError marks a bad invocation: exit code 2.
func usageError(err error) error {
	return &exitError{code: 2, msg: err.Error()}
}

// issuesError signals remaining issues under --check: exit code 1. The
// report has already been rendered, so the message stays empty.
var issuesError = &exitError{code: 1}

// runFlags is the flag surface shared by drift and sync.
type runFlags struct {
	check       bool
	jsonOut     bool
	docs        bool
	quiet       bool
	gaps        bool
	orphans     bool
	tests       bool
	interactive bool
	manifest    string
	root        string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.check, "check", false, "report only; exit 1 when issues remain")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "emit the machine-readable JSON document")
	cmd.Flags().BoolVar(&f.docs, "docs", false, "run only the documentation-oriented checks")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "skip expensive scans; print nothing when clean")
	cmd.Flags().BoolVar(&f.gaps, "gaps", false, "report only missing annotations and undocumented code")
	cmd.Flags().BoolVar(&f.orphans, "orphans", false, "report only orphaned artifacts")
	cmd.Flags().BoolVar(&f.tests, "tests", false, "report only acceptance-completeness issues")
	cmd.Flags().StringVar(&f.manifest, "manifest", "", "scope the run to one feature's change set")
	cmd.Flags().StringVarP(&f.root, "root", "C", "", "project root (default: working directory)")
}

// NewDriftCommand builds the read-only drift command. It never mutates;
// --check only changes the exit code.
func NewDriftCommand() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Detect drift between workflow artifacts",
		Long: `drift inspects the feature registry, acceptance criteria, status
document, journal, code annotations and git history, and reports every
inconsistency it finds. It never modifies anything.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run("drift", fix.ModeCheck, flags)
		},
	}
	flags.register(cmd)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	return cmd
}

// NewSyncCommand builds the sync command: full mode by default, prompting
// with --interactive, dry run with --check.
func NewSyncCommand() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Detect drift and apply safe fixes",
		Long: `sync runs the same checks as drift and repairs what is safe to
repair: staging untracked source files, repointing a stale hook path, and,
when configured, completing acceptance criteria of shipped features.
Everything else is reported for a human.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := fix.ModeFull
			if flags.interactive {
				mode = fix.ModeInteractive
			}
			if flags.check {
				mode = fix.ModeCheck
			}
			return run("sync", mode, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "confirm each fix before applying")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	return cmd
}

func run(tool string, mode fix.Mode, flags *runFlags) error {
	root := flags.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = wd
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	eng := engine.New(root, cfg, log)
	_, code, err := eng.Run(engine.Options{
		Tool:         tool,
		Mode:         mode,
		ExitOnIssues: flags.check,
		JSON:         flags.jsonOut,
		DocsOnly:     flags.docs,
		Quiet:        flags.quiet,
		Manifest:     flags.manifest,
		Gaps:         flags.gaps,
		Orphans:      flags.orphans,
		Tests:        flags.tests,
		Prompter:     fix.NewStdPrompter(os.Stdin, os.Stderr),
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return issuesError
	}
	return nil
}

// Execute runs the command and returns the process exit code: 0 clean,
// 1 remaining issues or internal failure, 2 usage error.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		if exit.msg != "" {
			fmt.Fprintln(os.Stderr, "error:", exit.msg)
		}
		return exit.code
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return 1
}
