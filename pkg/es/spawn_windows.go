// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// es.exe is a console application; without CREATE_NO_WINDOW every search
// would flash a console window on the user's desktop.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NO_WINDOW,
		HideWindow:    true,
	}
}
