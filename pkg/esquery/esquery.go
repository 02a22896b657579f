// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package esquery builds es.exe argument vectors from validated query
// options. It is pure: nothing in this package executes a process, and
// every user-supplied string ends up as a discrete argv element, never as
// part of a shell string.
package esquery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxResultsCap is the hard upper bound applied to any result cap,
// regardless of what the caller requested.
const MaxResultsCap = 1000

// sortValues maps friendly sort names to es.exe -sort values.
// Ascending is the es.exe default, so the plain and "-asc" spellings
// share a value.
var sortValues = map[string]string{
	"name":               "name",
	"name-desc":          "name-descending",
	"path":               "path",
	"path-desc":          "path-descending",
	"size":               "size",
	"size-asc":           "size",
	"size-desc":          "size-descending",
	"date-modified":      "date-modified",
	"date-modified-asc":  "date-modified",
	"date-modified-desc": "date-modified-descending",
	"date-created":       "date-created",
	"date-created-asc":   "date-created",
	"date-created-desc":  "date-created-descending",
	"extension":          "extension",
}

// SortNames returns the accepted sort option names, sorted.
func SortNames() []string {
	names := make([]string, 0, len(sortValues))
	for k := range sortValues {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SortValue resolves a friendly sort name to the es.exe -sort value.
func SortValue(name string) (string, error) {
	v, ok := sortValues[name]
	if !ok {
		return "", fmt.Errorf("invalid sort option %q (valid: %s)", name, strings.Join(SortNames(), ", "))
	}
	return v, nil
}

// Options describes a single search invocation.
type Options struct {
	Query          string
	MaxResults     int
	Offset         int
	Sort           string // friendly name; empty means es.exe default order
	MatchCase      bool
	MatchWholeWord bool
	MatchRegex     bool
	MatchPath      bool
}

// Build renders o into an es.exe argument vector. The vector always
// contains exactly one "-n" pair; match modifier flags are emitted only
// when set, so es.exe defaults apply otherwise. The query text is the
// final element, passed as-is.
func Build(o Options) ([]string, error) {
	n := o.MaxResults
	if n < 1 {
		n = 1
	}
	if n > MaxResultsCap {
		n = MaxResultsCap
	}
	args := []string{"-n", strconv.Itoa(n)}
	if o.Offset > 0 {
		args = append(args, "-o", strconv.Itoa(o.Offset))
	}
	if o.Sort != "" {
		v, err := SortValue(o.Sort)
		if err != nil {
			return nil, err
		}
		args = append(args, "-sort", v)
	}
	if o.MatchCase {
		args = append(args, "-case")
	}
	if o.MatchWholeWord {
		args = append(args, "-w")
	}
	if o.MatchRegex {
		args = append(args, "-r")
	}
	if o.MatchPath {
		args = append(args, "-p")
	}
	// -size/-dm/-dc are intentionally not requested: plain one-path-per-line
	// output parses identically across es.exe versions and locales, and
	// metadata comes from the filesystem instead (pkg/fileinfo).
	args = append(args, o.Query)
	return args, nil
}

// BuildCount renders the argument vector for a result-count-only query.
//
// It must stay a single-purpose invocation: combining -get-result-count
// with "-n 0" makes es.exe report a count of zero, so the count and the
// listing can never share one command line.
func BuildCount(query string) []string {
	return []string{"-get-result-count", query}
}

// BuildTotalSize renders the argument vector for a total-size-only query.
// The same "-n 0" incompatibility as BuildCount applies.
func BuildTotalSize(query string) []string {
	return []string{"-get-total-size", query}
}
