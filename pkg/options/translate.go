// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package options translates the generic action option vocabulary into
// ansible-lint flags.
package options

import (
	"fmt"
	"strings"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
)

// spec describes one recognized generic token.
type spec struct {
	// flag is the ansible-lint flag the token translates to. Empty means
	// the token is accepted but emits nothing (linter default behavior).
	flag string

	// takesValue marks tokens that consume the next raw token verbatim
	// as their value, even if that token looks like another flag.
	takesValue bool
}

// translations is the allow-list. Anything else starting with "-" is a
// hard error.
var translations = map[string]spec{
	"--quiet":                   {flag: "-q"},
	"--parseable":               {flag: "-p"},
	"--parseable-severity":      {flag: "--parseable-severity"},
	"--no-color":                {flag: "--nocolor"},
	"--config":                  {flag: "-c", takesValue: true},
	"--rule-dir":                {flag: "-r", takesValue: true},
	"--add-rule-dir":            {flag: "-R"},
	"--rule-dir-exclusive":      {},
	"--tags":                    {flag: "-t", takesValue: true},
	"--exclude-rule-by-id":      {flag: "-x", takesValue: true},
	"--exclude-rule-by-pattern": {flag: "--exclude", takesValue: true},
}

// Translate converts raw generic tokens into ansible-lint flags.
//
// Tokens are scanned left to right. A value-taking token consumes exactly
// the next token as its value, regardless of its content. Positional
// (non-flag) tokens are dropped. An explicit "--" stops flag parsing.
// The first unrecognized "-"-prefixed token aborts translation; no partial
// flag list is returned. Output order follows input order and nothing is
// deduplicated.
func Translate(tokens []string) ([]string, error) {
	var out []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "--" {
			break
		}
		if !strings.HasPrefix(tok, "-") {
			continue
		}
		sp, ok := translations[tok]
		if !ok {
			return nil, errors.FlagError(tok)
		}
		if sp.takesValue {
			if i+1 >= len(tokens) {
				return nil, errors.New(errors.ErrFlag, fmt.Sprintf("option %s requires a value", tok), nil)
			}
			i++
			out = append(out, sp.flag, tokens[i])
			continue
		}
		if sp.flag != "" {
			out = append(out, sp.flag)
		}
	}
	return out, nil
}

// Join renders translated flags as the single space-joined string used in
// report headers and logs.
func Join(flags []string) string {
	return strings.Join(flags, " ")
}
