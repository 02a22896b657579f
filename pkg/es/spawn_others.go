// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package es

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
