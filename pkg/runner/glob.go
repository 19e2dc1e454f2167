// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package runner

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// enableGlobstar turns on recursive ** pattern expansion and returns the
// restore function. Callers must defer the restore so the toggle is reset
// exactly once per invocation, on normal and error exits alike.
func (r *Runner) enableGlobstar() func() {
	r.globstar = true
	return func() { r.globstar = false }
}

// expand resolves glob patterns in the target list against the working
// directory. Outside a globstar scope, or for targets without glob
// metacharacters, entries pass through untouched. A pattern that matches
// nothing (or fails to compile) is also passed through verbatim so the
// linter reports it itself.
func (r *Runner) expand(targets []string) []string {
	if !r.globstar {
		return targets
	}

	root := r.workDir
	if root == "" {
		root = "."
	}
	fsys := os.DirFS(root)

	out := make([]string, 0, len(targets))
	for _, t := range targets {
		if !strings.ContainsAny(t, "*?[{") {
			out = append(out, t)
			continue
		}
		matches, err := doublestar.Glob(fsys, t)
		if err != nil || len(matches) == 0 {
			out = append(out, t)
			continue
		}
		out = append(out, matches...)
	}
	return out
}
