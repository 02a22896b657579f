// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package es

// The registry hint only exists on es.exe's native platform.
func registryInstallPaths() []string {
	return nil
}
