// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package esquery

import (
	"sort"
	"strings"
)

// periods maps friendly period names to Everything dm: values.
var periods = map[string]string{
	"1min":      "last1min",
	"5min":      "last5mins",
	"10min":     "last10mins",
	"15min":     "last15mins",
	"30min":     "last30mins",
	"1hour":     "last1hour",
	"2hours":    "last2hours",
	"6hours":    "last6hours",
	"12hours":   "last12hours",
	"today":     "today",
	"yesterday": "yesterday",
	"1day":      "last1day",
	"3days":     "last3days",
	"1week":     "last1week",
	"2weeks":    "last2weeks",
	"1month":    "last1month",
	"3months":   "last3months",
	"6months":   "last6months",
	"1year":     "last1year",
}

// PeriodNames returns the known period shortcuts, sorted.
func PeriodNames() []string {
	names := make([]string, 0, len(periods))
	for k := range periods {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RecentQuery builds an Everything query string matching files modified
// within period. Unknown period values pass through verbatim, so raw
// Everything syntax such as "last2hours" keeps working. Optional path and
// extension narrowing compose with AND semantics.
func RecentQuery(period, pathFilter, extensions string) string {
	value, ok := periods[period]
	if !ok {
		value = period
	}
	parts := []string{"dm:" + value}
	if pathFilter != "" {
		parts = append(parts, quotePath(pathFilter))
	}
	if exts := NormalizeExtensions(extensions); exts != "" {
		parts = append(parts, "ext:"+exts)
	}
	return strings.Join(parts, " ")
}

// NormalizeExtensions converts "py,js", ".py .js", or "py;js" into
// Everything's semicolon-separated ext: list form, dropping empty items.
func NormalizeExtensions(extensions string) string {
	s := strings.NewReplacer(".", "", ",", ";", " ", ";").Replace(extensions)
	var kept []string
	for _, e := range strings.Split(s, ";") {
		if e != "" {
			kept = append(kept, e)
		}
	}
	return strings.Join(kept, ";")
}

// quotePath renders a path:"..." restriction. The quotes are Everything
// query syntax, so backslashes must stay unescaped; %q would mangle them.
func quotePath(pathFilter string) string {
	return `path:"` + pathFilter + `"`
}
