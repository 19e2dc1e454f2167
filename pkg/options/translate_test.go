// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package options

import (
	"reflect"
	"testing"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
)

func TestTranslateRecognizedFlags(t *testing.T) {
	testCases := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "boolean flags in order",
			tokens: []string{"--quiet", "--parseable", "--no-color"},
			want:   []string{"-q", "-p", "--nocolor"},
		},
		{
			name:   "value flags consume next token",
			tokens: []string{"--config", "lint.cfg", "--tags", "idempotency"},
			want:   []string{"-c", "lint.cfg", "-t", "idempotency"},
		},
		{
			name:   "value may look like another flag",
			tokens: []string{"--config", "--quiet"},
			want:   []string{"-c", "--quiet"},
		},
		{
			name:   "input order is preserved",
			tokens: []string{"--tags", "x", "--quiet", "--rule-dir", "rules/"},
			want:   []string{"-t", "x", "-q", "-r", "rules/"},
		},
		{
			name:   "no deduplication",
			tokens: []string{"--quiet", "--quiet"},
			want:   []string{"-q", "-q"},
		},
		{
			name:   "positional tokens are dropped",
			tokens: []string{"site.yml", "--quiet", "roles/"},
			want:   []string{"-q"},
		},
		{
			name:   "double dash stops parsing",
			tokens: []string{"--quiet", "--", "--definitely-not-a-flag"},
			want:   []string{"-q"},
		},
		{
			name:   "rule-dir-exclusive is accepted without output",
			tokens: []string{"--rule-dir-exclusive", "--quiet"},
			want:   []string{"-q"},
		},
		{
			name:   "exclusions and severity",
			tokens: []string{"--exclude-rule-by-id", "204", "--exclude-rule-by-pattern", "test/*", "--parseable-severity", "--add-rule-dir"},
			want:   []string{"-x", "204", "--exclude", "test/*", "--parseable-severity", "-R"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Translate(tc.tokens)
			if err != nil {
				t.Fatalf("Translate(%v) failed: %v", tc.tokens, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Translate(%v) = %v, want %v", tc.tokens, got, tc.want)
			}
		})
	}
}

func TestTranslateUnsupportedFlag(t *testing.T) {
	testCases := []struct {
		name   string
		tokens []string
	}{
		{"unknown long flag", []string{"--quiet", "--bogus", "--tags", "x"}},
		{"unknown short flag", []string{"-z"}},
		{"unknown flag first", []string{"--nope", "--quiet"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Translate(tc.tokens)
			if err == nil {
				t.Fatalf("Translate(%v) = %v, want error", tc.tokens, got)
			}
			if !errors.IsType(err, errors.ErrFlag) {
				t.Errorf("Translate(%v) error type = %v, want ErrFlag", tc.tokens, err)
			}
			if got != nil {
				t.Errorf("Translate(%v) returned partial output %v on error", tc.tokens, got)
			}
		})
	}
}

func TestTranslateMissingValue(t *testing.T) {
	got, err := Translate([]string{"--quiet", "--config"})
	if err == nil {
		t.Fatalf("Translate with dangling value flag = %v, want error", got)
	}
	if !errors.IsType(err, errors.ErrFlag) {
		t.Errorf("error type = %v, want ErrFlag", err)
	}
}

func TestTranslateIsPure(t *testing.T) {
	tokens := []string{"--quiet", "--config", "a.cfg", "--tags", "skip"}
	first, err := Translate(tokens)
	if err != nil {
		t.Fatalf("first Translate failed: %v", err)
	}
	second, err := Translate(tokens)
	if err != nil {
		t.Fatalf("second Translate failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Translate is not idempotent: %v vs %v", first, second)
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"-q", "-c", "a.cfg"}); got != "-q -c a.cfg" {
		t.Errorf("Join = %q, want %q", got, "-q -c a.cfg")
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}
