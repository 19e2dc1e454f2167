// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration for lint-runner.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Repo Config: <workspace>/.lint-runner.yaml
// 3. Environment Variables: INPUT_* (action inputs) and GITHUB_* (CI context)
// 4. Command-line flags
package config

import (
	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
)

// Config is the explicit configuration passed into each component; no
// component reads ambient process state.
type Config struct {
	// Args is the raw generic option token string for the linter.
	Args string `yaml:"args"`

	// Targets is the whitespace/newline-delimited target blob.
	Targets string `yaml:"targets"`

	// Comment is the publish toggle; "true" and "1" enable publishing.
	Comment string `yaml:"comment"`

	// LinterBin overrides the linter binary resolved from PATH.
	LinterBin string `yaml:"linter_bin"`

	// Color requests colorized output for the aggregate run.
	Color bool `yaml:"color"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CI context, environment-sourced only.
	WorkDir   string `yaml:"-"`
	EventName string `yaml:"-"`
	EventPath string `yaml:"-"`
	Token     string `yaml:"-"`
	Workflow  string `yaml:"-"`
	Action    string `yaml:"-"`
}

// Default returns the hardcoded baseline configuration.
func Default() *Config {
	return &Config{
		LinterBin: "ansible-lint",
		Color:     true,
		LogLevel:  "info",
	}
}

// Validate checks that the required external inputs are present. It runs
// before any linter subprocess is invoked.
func (c *Config) Validate() error {
	if c.Targets == "" {
		return errors.ConfigError("no lint targets configured (set the targets input)", nil)
	}
	if c.WorkDir == "" {
		return errors.ConfigError("no workspace root configured (GITHUB_WORKSPACE is empty)", nil)
	}
	return nil
}

// PublishRequested reports whether the failure report should be posted:
// the triggering event must be a pull-request event and the comment
// toggle must be truthy.
func (c *Config) PublishRequested() bool {
	if c.EventName != "pull_request" && c.EventName != "pull_request_target" {
		return false
	}
	switch c.Comment {
	case "true", "True", "TRUE", "1":
		return true
	}
	return false
}
