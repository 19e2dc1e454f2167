// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output assembles the Markdown failure report posted to the
// pull request.
package output

import (
	"fmt"
	"strings"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/runner"
)

// Builder carries the run metadata rendered around the per-target
// failure sections.
type Builder struct {
	// Options is the translated, space-joined linter flag string.
	Options string

	// Targets is the printable target list, one per line.
	Targets string

	// Workflow and Action identify the surrounding CI context.
	Workflow string
	Action   string

	// RunID marks the comment so a rerun's comment is attributable to
	// its run.
	RunID string
}

// Build renders the report. One collapsible section is emitted per result
// with a non-zero exit code, containing its captured output verbatim.
// Targets that passed individually are omitted. When no individual target
// failed despite the aggregate failure, the report still carries its
// header and footer with an empty body.
func (b *Builder) Build(results []runner.Result) string {
	var sb strings.Builder

	sb.WriteString("## ansible-lint failure\n\n")
	sb.WriteString("Command:\n\n")
	fmt.Fprintf(&sb, "```\nansible-lint %s\n%s\n```\n\n", b.Options, b.Targets)

	for _, res := range results {
		if !res.Failed() {
			continue
		}
		fmt.Fprintf(&sb, "<details><summary><code>%s</code></summary>\n\n", res.Target)
		fmt.Fprintf(&sb, "```\n%s\n```\n\n", strings.TrimRight(res.Output, "\n"))
		sb.WriteString("</details>\n\n")
	}

	fmt.Fprintf(&sb, "---\n*Workflow: `%s` / Action: `%s`*\n", b.Workflow, b.Action)
	if b.RunID != "" {
		fmt.Fprintf(&sb, "<!-- lint-runner run %s -->\n", b.RunID)
	}

	return sb.String()
}
