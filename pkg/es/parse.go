// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ParsePaths splits es.exe search output into one path per line. Blank
// lines are discarded and lines that do not look like filesystem paths
// (stray banners, progress noise) are skipped. Paths may contain any
// character except line breaks, so only line endings are trimmed.
func ParsePaths(stdout string) []string {
	var paths []string
	for _, line := range strings.Split(stdout, "\n") {
		p := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(p) == "" {
			continue
		}
		if !looksLikePath(p) {
			logrus.Debugf("skipping non-path line %q", truncate(p, 120))
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// looksLikePath reports whether s starts like a Windows drive path, a UNC
// path, or a rooted Unix path (seen under WSL and in tests).
func looksLikePath(s string) bool {
	if len(s) >= 3 && isASCIILetter(s[0]) && s[1] == ':' && (s[2] == '\\' || s[2] == '/') {
		return true
	}
	if strings.HasPrefix(s, `\\`) {
		return true
	}
	return strings.HasPrefix(s, "/")
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
