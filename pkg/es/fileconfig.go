// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

// fileConfig is the optional on-disk configuration. Everything here can
// also be expressed through environment variables, which take precedence;
// the file mainly exists for a persistent timeout or instance choice.
type fileConfig struct {
	ESPath     string `yaml:"es_path"`
	Instance   string `yaml:"instance"`
	TimeoutSec int    `yaml:"timeout"`
}

// loadFileConfig reads the optional config file. A missing file is the
// normal zero-config case; a malformed one is logged and ignored rather
// than blocking detection.
func loadFileConfig() *fileConfig {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(dir, "everything-mcp", "config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		logrus.WithError(err).Warnf("ignoring malformed config file %s", path)
		return nil
	}
	logrus.Debugf("loaded config file %s", path)
	return &fc
}
