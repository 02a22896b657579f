// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// Registry locations where the Everything installer records its
// installation path.
var registryKeys = []string{
	`SOFTWARE\voidtools\Everything`,
	`SOFTWARE\WOW6432Node\voidtools\Everything`,
}

// registryInstallPaths returns es.exe candidates advertised by the
// Everything installer in the Windows registry, HKLM before HKCU.
func registryInstallPaths() []string {
	var out []string
	for _, hive := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
		for _, keyPath := range registryKeys {
			k, err := registry.OpenKey(hive, keyPath, registry.READ)
			if err != nil {
				continue
			}
			installPath, _, err := k.GetStringValue("InstallPath")
			k.Close()
			if err != nil || installPath == "" {
				continue
			}
			out = append(out, filepath.Join(installPath, "es.exe"))
		}
	}
	return out
}
