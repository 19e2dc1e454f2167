// Package main provides the lint-runner CLI application.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/config"
	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
	"github.com/ansible-lint-toolkit/lint-runner/pkg/observability"
	"github.com/ansible-lint-toolkit/lint-runner/pkg/options"
	"github.com/ansible-lint-toolkit/lint-runner/pkg/output"
	"github.com/ansible-lint-toolkit/lint-runner/pkg/platform"
	"github.com/ansible-lint-toolkit/lint-runner/pkg/runner"
	"github.com/ansible-lint-toolkit/lint-runner/pkg/targets"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Lint the configured targets",
	Long: `Lint the configured targets with ansible-lint.

Targets and linter options default from the action environment
(INPUT_TARGETS, INPUT_ARGS, INPUT_COMMENT) and can be overridden with
flags. On a lint failure inside a pull-request event with commenting
enabled, each target is re-linted individually and the per-target
failures are posted as a single pull request comment. The process exits
with the linter's own exit code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyFlagOverrides(cfg)
		return runPipeline(cmd.Context(), cfg)
	},
}

// runFlags holds the flags for the run command
type runFlags struct {
	args      string
	targets   string
	comment   string
	linterBin string
	noColor   bool
}

var runOpts runFlags

func init() {
	rootCmd.AddCommand(runCmd)

	// Local flags for the run command
	runCmd.Flags().StringVarP(&runOpts.args, "args", "a", "", "Generic linter option tokens (default: INPUT_ARGS)")
	runCmd.Flags().StringVarP(&runOpts.targets, "targets", "t", "", "Whitespace/newline-delimited lint targets (default: INPUT_TARGETS)")
	runCmd.Flags().StringVar(&runOpts.comment, "comment", "", "Post a PR comment on failure, \"true\" or \"1\" (default: INPUT_COMMENT)")
	runCmd.Flags().StringVar(&runOpts.linterBin, "linter-bin", "", "Linter binary to execute (default: ansible-lint)")
	runCmd.Flags().BoolVar(&runOpts.noColor, "no-color", false, "Disable colorized linter output for the aggregate run (attribution runs are always plain)")
}

// runPipeline drives the whole pipeline for a resolved configuration:
// option translation, the aggregate run, and on failure the attribution
// runs plus the comment publish.
func runPipeline(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	log := observability.NewLogger(cfg.LogLevel).With(observability.String("run_id", runID))

	flags, err := options.Translate(strings.Fields(cfg.Args))
	if err != nil {
		return err
	}

	list := targets.Resolve(cfg.Targets)
	if len(list) == 0 {
		return errors.ConfigError("target list contains no usable entries", nil)
	}

	lint := runner.New(cfg.WorkDir, flags).
		WithBinary(cfg.LinterBin).
		WithColor(cfg.Color)

	log.Info("running aggregate lint",
		observability.Int("targets", len(list)),
		observability.String("options", options.Join(flags)))

	agg := lint.Aggregate(ctx, list)
	fmt.Print(agg.Output)

	if !agg.Failed() {
		log.Info("lint passed")
		return nil
	}

	log.Info("aggregate lint failed", observability.Int("exit_code", agg.ExitCode))
	failure := errors.LintFailure(agg.ExitCode)

	if !cfg.PublishRequested() {
		return failure
	}

	if err := publishReport(ctx, cfg, log, lint, list, options.Join(flags), runID); err != nil {
		// The publish error surfaces, but the linter's exit code is
		// what the process reports.
		log.Error("failed to publish report", observability.String("error", err.Error()))
		failure.Cause = err
	}
	return failure
}

// applyFlagOverrides lets command-line flags win over file and
// environment configuration.
func applyFlagOverrides(cfg *config.Config) {
	if runOpts.args != "" {
		cfg.Args = runOpts.args
	}
	if runOpts.targets != "" {
		cfg.Targets = runOpts.targets
	}
	if runOpts.comment != "" {
		cfg.Comment = runOpts.comment
	}
	if runOpts.linterBin != "" {
		cfg.LinterBin = runOpts.linterBin
	}
	if runOpts.noColor {
		cfg.Color = false
	}
}

// publishReport re-lints each target individually for attribution,
// assembles the Markdown report and posts it to the pull request's
// comment endpoint. Exactly one POST is performed per run.
func publishReport(ctx context.Context, cfg *config.Config, log observability.Logger, lint *runner.Runner, list targets.List, optionString, runID string) error {
	results := make([]runner.Result, 0, len(list))
	for _, target := range list {
		res := lint.Lint(ctx, target)
		log.Debug("attribution run",
			observability.String("target", target),
			observability.Int("exit_code", res.ExitCode))
		results = append(results, res)
	}

	builder := &output.Builder{
		Options:  optionString,
		Targets:  list.Printable(),
		Workflow: cfg.Workflow,
		Action:   cfg.Action,
		RunID:    runID,
	}
	report := builder.Build(results)

	event, err := platform.ReadEvent(cfg.EventPath)
	if err != nil {
		return errors.PublishError("failed to load event payload", err)
	}

	client := platform.NewGitHubClient(cfg.Token)
	if err := client.PostComment(ctx, event.CommentsEndpoint(), report); err != nil {
		return err
	}

	log.Info("posted failure report", observability.Int("failing_targets", countFailed(results)))
	return nil
}

func countFailed(results []runner.Result) int {
	n := 0
	for _, res := range results {
		if res.Failed() {
			n++
		}
	}
	return n
}
