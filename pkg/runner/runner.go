// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package runner executes the ansible-lint subprocess and captures its
// outcome. A non-zero exit is an expected result, not an error: every
// invocation yields a Result and the caller decides how to proceed.
package runner

import (
	"context"
	"os/exec"
)

// AggregateMarker identifies the all-targets invocation in a Result.
const AggregateMarker = "(all targets)"

// DefaultBinary is the linter binary resolved from PATH.
const DefaultBinary = "ansible-lint"

// Result is the captured outcome of one linter invocation.
type Result struct {
	Target   string
	ExitCode int
	Output   string
}

// Failed reports whether the invocation exited non-zero.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Runner invokes ansible-lint. Invocations are strictly sequential and
// blocking; there is no retry, timeout or concurrency layer here.
type Runner struct {
	bin     string
	workDir string
	flags   []string

	// color requests colorized linter output. Applied to the aggregate
	// run only; attribution runs always ask for plain output so the
	// published report stays free of escape sequences.
	color bool

	// globstar enables recursive ** expansion of target patterns. It is
	// scoped to the aggregate run via enableGlobstar.
	globstar bool
}

// New creates a runner with translated linter flags, executing in workDir.
func New(workDir string, flags []string) *Runner {
	return &Runner{
		bin:     DefaultBinary,
		workDir: workDir,
		flags:   flags,
	}
}

// WithBinary sets a custom linter binary path.
func (r *Runner) WithBinary(bin string) *Runner {
	r.bin = bin
	return r
}

// WithColor requests colorized output for the aggregate run.
func (r *Runner) WithColor(color bool) *Runner {
	r.color = color
	return r
}

// Aggregate runs the linter once over the whole target list. Recursive
// glob expansion is enabled for the duration of the call and restored on
// every exit path.
func (r *Runner) Aggregate(ctx context.Context, targets []string) Result {
	restore := r.enableGlobstar()
	defer restore()

	args := make([]string, 0, len(r.flags)+len(targets)+1)
	args = append(args, r.flags...)
	if r.color {
		args = append(args, "--force-color")
	}
	args = append(args, r.expand(targets)...)

	return r.run(ctx, AggregateMarker, args)
}

// Lint runs the linter against a single target for failure attribution.
// Each call is independent: a crash on one target never prevents the
// remaining targets from being evaluated.
func (r *Runner) Lint(ctx context.Context, target string) Result {
	args := make([]string, 0, len(r.flags)+2)
	args = append(args, r.flags...)
	args = append(args, "--nocolor", target)

	return r.run(ctx, target, args)
}

// run spawns one linter subprocess, reaps it synchronously and captures
// combined stdout+stderr with the exit code. Spawn failures (binary not
// found, permission) are folded into a synthetic non-zero Result so the
// pipeline stays result-shaped.
func (r *Runner) run(ctx context.Context, target string, args []string) Result {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = r.workDir

	out, err := cmd.CombinedOutput()
	res := Result{Target: target, Output: string(out)}

	if err == nil {
		return res
	}
	if cmd.ProcessState != nil && cmd.ProcessState.ExitCode() > 0 {
		res.ExitCode = cmd.ProcessState.ExitCode()
		return res
	}
	res.ExitCode = 1
	res.Output += err.Error() + "\n"
	return res
}
