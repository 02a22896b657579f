// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package fileinfo

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

type attrs struct {
	created  time.Time
	accessed time.Time
	hidden   bool
	system   bool
	readonly bool
}

// platformAttrs decodes the Win32 attribute bits and the creation/access
// timestamps that os.FileInfo does not expose portably.
func platformAttrs(fi os.FileInfo, _ string) attrs {
	var a attrs
	sys, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return a
	}
	a.created = time.Unix(0, sys.CreationTime.Nanoseconds())
	a.accessed = time.Unix(0, sys.LastAccessTime.Nanoseconds())
	a.hidden = sys.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
	a.system = sys.FileAttributes&windows.FILE_ATTRIBUTE_SYSTEM != 0
	a.readonly = sys.FileAttributes&windows.FILE_ATTRIBUTE_READONLY != 0
	return a
}
