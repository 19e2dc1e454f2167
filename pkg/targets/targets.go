// Copyright 2026 Ansible Lint Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package targets normalizes the raw lint target list.
package targets

import "strings"

// List is an ordered set of lint targets with blanks removed.
type List []string

// Resolve splits a whitespace/newline-delimited target blob into a clean
// list. Only non-empty entries after trimming participate; relative order
// is preserved for both execution and display.
func Resolve(blob string) List {
	var out List
	for _, field := range strings.Fields(blob) {
		if field == "" {
			continue
		}
		out = append(out, field)
	}
	return out
}

// Printable returns the display form of the list, one target per line.
func (l List) Printable() string {
	return strings.Join(l, "\n")
}
