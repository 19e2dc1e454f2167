// Package main provides the lint-runner CLI application.
package main

import (
	"github.com/ansible-lint-toolkit/lint-runner/pkg/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lint-runner",
	Short: "CI wrapper for ansible-lint",
	Long: `lint-runner - a CI wrapper around ansible-lint.

The runner lints the configured targets and, when a pull request build
fails, posts a per-target failure report as a comment on that pull
request.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
