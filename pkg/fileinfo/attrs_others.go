// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package fileinfo

import (
	"os"
	"strings"
	"time"
)

type attrs struct {
	created  time.Time
	accessed time.Time
	hidden   bool
	system   bool
	readonly bool
}

// platformAttrs approximates Windows attribute semantics on other
// platforms: dotfiles count as hidden, a missing owner write bit as
// read-only. Creation and access times stay unknown.
func platformAttrs(fi os.FileInfo, path string) attrs {
	return attrs{
		hidden:   strings.HasPrefix(baseName(path), "."),
		readonly: fi.Mode().Perm()&0o200 == 0,
	}
}
