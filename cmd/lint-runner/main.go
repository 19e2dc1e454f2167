// Package main is the entry point for the lint-runner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ansible-lint-toolkit/lint-runner/pkg/errors"
)

func main() {
	if err := Execute(); err != nil {
		// Lint findings already went to stdout; everything else is
		// surfaced here. The exit code distinguishes runner errors
		// (1) from the linter's own propagated code.
		if !errors.IsType(err, errors.ErrLint) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(errors.ExitCode(err))
	}
}
