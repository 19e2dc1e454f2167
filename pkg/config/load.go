// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default config file names to search for
var defaultConfigFiles = []string{
	".lint-runner.yaml",
	".lint-runner.yml",
}

// Load builds the effective configuration: defaults, then an optional
// repo-level YAML file, then the action environment. Validation is left
// to the caller so flag overrides can apply first.
func Load() (*Config, error) {
	cfg := Default()

	workDir := os.Getenv("GITHUB_WORKSPACE")
	if path := findConfigFile(workDir); path != "" {
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadFile reads a specific YAML config file over the defaults, then
// applies the environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := mergeFile(cfg, path); err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// mergeFile unmarshals path into cfg in place.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}
	return nil
}

// findConfigFile searches the workspace root, then the current directory.
func findConfigFile(workDir string) string {
	dirs := []string{workDir, "."}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range defaultConfigFiles {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// applyEnv overlays action inputs and CI context variables.
func applyEnv(cfg *Config) {
	setIfPresent := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setIfPresent(&cfg.Args, "INPUT_ARGS")
	setIfPresent(&cfg.Targets, "INPUT_TARGETS")
	setIfPresent(&cfg.Comment, "INPUT_COMMENT")
	setIfPresent(&cfg.LinterBin, "INPUT_LINTER_BIN")
	setIfPresent(&cfg.LogLevel, "LINT_RUNNER_LOG_LEVEL")

	setIfPresent(&cfg.WorkDir, "GITHUB_WORKSPACE")
	setIfPresent(&cfg.EventName, "GITHUB_EVENT_NAME")
	setIfPresent(&cfg.EventPath, "GITHUB_EVENT_PATH")
	setIfPresent(&cfg.Token, "GITHUB_TOKEN")
	setIfPresent(&cfg.Workflow, "GITHUB_WORKFLOW")
	setIfPresent(&cfg.Action, "GITHUB_ACTION")
}
