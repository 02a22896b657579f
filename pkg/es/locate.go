// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// EnvESPath overrides es.exe detection with an explicit path
	// (the es.exe file itself or its directory).
	EnvESPath = "EVERYTHING_ES_PATH"
	// EnvInstance targets a specific Everything instance, e.g. "1.5a".
	EnvInstance = "EVERYTHING_INSTANCE"

	probeTimeout   = 5 * time.Second
	connectTimeout = 10 * time.Second
)

// instanceProbeOrder lists the instance names probed when no explicit
// override is given: the legacy default first, then the 1.5 alpha
// generation. All probes failing degrades to "no -instance flag" rather
// than blocking resolution.
var instanceProbeOrder = []string{"", "1.5a"}

// knownInstallDirs returns the fixed list of directories where the
// Everything installer, scoop, and chocolatey place es.exe.
func knownInstallDirs() []string {
	var dirs []string
	add := func(base string, elem ...string) {
		if base != "" {
			dirs = append(dirs, filepath.Join(append([]string{base}, elem...)...))
		}
	}
	localAppData := os.Getenv("LOCALAPPDATA")
	userProfile := os.Getenv("USERPROFILE")
	programData := os.Getenv("PROGRAMDATA")

	add(localAppData, "Microsoft", "WindowsApps")
	dirs = append(dirs,
		`C:\Program Files\Everything`,
		`C:\Program Files (x86)\Everything`,
		`C:\Program Files\Everything 1.5a`,
		`C:\Program Files (x86)\Everything 1.5a`,
	)
	add(localAppData, "Everything")
	add(userProfile, "Everything")
	add(programData, "Everything")
	add(userProfile, "scoop", "shims")
	add(userProfile, "scoop", "apps", "everything", "current")
	add(programData, "chocolatey", "bin")
	return dirs
}

// Detect resolves the backend configuration with zero required
// configuration. Detection order:
//  1. EVERYTHING_ES_PATH / EVERYTHING_INSTANCE environment overrides
//  2. optional config file (~/.config/everything-mcp/config.yaml)
//  3. es / es.exe on PATH, verified via -get-everything-version
//  4. known installation directories
//  5. Windows registry install hint
//  6. instance probing (default, then 1.5a)
//  7. connectivity test
//
// Detection never returns nil: failures are recorded in Config.Errors so
// the status resource can report them.
func Detect(ctx context.Context) *Config {
	cfg := &Config{Timeout: DefaultTimeout}

	fc := loadFileConfig()
	if fc != nil && fc.TimeoutSec > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSec) * time.Second
	}

	pathOverride := strings.TrimSpace(os.Getenv(EnvESPath))
	instOverride := strings.TrimSpace(os.Getenv(EnvInstance))
	if fc != nil {
		if pathOverride == "" {
			pathOverride = fc.ESPath
		}
		if instOverride == "" {
			instOverride = fc.Instance
		}
	}
	if instOverride != "" {
		cfg.Instance = instOverride
		logrus.Infof("using Everything instance %q from configuration", instOverride)
	}

	cfg.ESPath = findES(ctx, pathOverride)
	if cfg.ESPath == "" {
		cfg.Errors = append(cfg.Errors,
			"es.exe not found. Install it from https://github.com/voidtools/es/releases "+
				"or set the "+EnvESPath+" environment variable. "+
				"Everything (https://www.voidtools.com/) must be installed and running.")
		return cfg
	}
	logrus.Infof("found es.exe: %s", cfg.ESPath)

	if cfg.Instance == "" {
		cfg.Instance = detectInstance(ctx, cfg.ESPath)
		if cfg.Instance != "" {
			logrus.Infof("auto-detected Everything instance %q", cfg.Instance)
		}
	}

	if version, err := testConnection(ctx, cfg); err == nil {
		cfg.Version = version
		logrus.Infof("Everything connection OK: %s", version)
	} else {
		cfg.Errors = append(cfg.Errors,
			"cannot connect to Everything: "+err.Error()+
				". Ensure Everything is running (check your system tray). "+
				"If you use Everything 1.5 alpha, try "+EnvInstance+"=1.5a")
	}
	return cfg
}

// findES locates the es.exe executable, first match wins.
func findES(ctx context.Context, override string) string {
	if override != "" {
		if p := resolveOverride(ctx, override); p != "" {
			return p
		}
		logrus.Warnf("%s=%q is not a working es.exe, continuing search", EnvESPath, override)
	}
	for _, name := range []string{"es", "es.exe"} {
		if found, err := exec.LookPath(name); err == nil && isEverythingES(ctx, found) {
			return found
		}
	}
	for _, dir := range knownInstallDirs() {
		candidate := filepath.Join(dir, "es.exe")
		if fileExists(candidate) && isEverythingES(ctx, candidate) {
			return candidate
		}
	}
	for _, candidate := range registryInstallPaths() {
		if fileExists(candidate) && isEverythingES(ctx, candidate) {
			return candidate
		}
	}
	return ""
}

// resolveOverride accepts either the es.exe file itself or a directory
// containing it, and validates that the result actually runs.
func resolveOverride(ctx context.Context, override string) string {
	fi, err := os.Stat(override)
	if err != nil {
		return ""
	}
	candidate := override
	if fi.IsDir() {
		candidate = filepath.Join(override, "es.exe")
		if !fileExists(candidate) {
			return ""
		}
	}
	if !isEverythingES(ctx, candidate) {
		return ""
	}
	return candidate
}

// isEverythingES verifies that path is voidtools Everything's es.exe and
// not some other "es" binary that happens to be on PATH.
func isEverythingES(ctx context.Context, path string) bool {
	stdout, _, err := run(ctx, "probe", path, []string{"-get-everything-version"}, probeTimeout)
	if err == nil && containsDigit(stdout) {
		return true
	}
	stdout, _, err = run(ctx, "probe", path, []string{"-version"}, probeTimeout)
	return err == nil && strings.Contains(strings.ToLower(stdout), "everything")
}

// detectInstance probes the known instance names in order and returns the
// first one the service answers on. Empty means the es.exe default.
func detectInstance(ctx context.Context, esPath string) string {
	for _, instance := range instanceProbeOrder {
		args := []string{"-get-everything-version"}
		if instance != "" {
			args = append([]string{"-instance", instance}, args...)
		}
		stdout, _, err := run(ctx, "probe", esPath, args, probeTimeout)
		if err == nil && strings.TrimSpace(stdout) != "" {
			return instance
		}
	}
	return ""
}

// testConnection verifies that Everything is running and responsive,
// returning a short version banner.
func testConnection(ctx context.Context, cfg *Config) (string, error) {
	args := append(cfg.baseArgs(), "-get-everything-version")
	stdout, _, err := run(ctx, "connect", cfg.ESPath, args, connectTimeout)
	if err == nil && strings.TrimSpace(stdout) != "" {
		return "Everything v" + strings.TrimSpace(stdout), nil
	}
	// Older es.exe may lack -get-everything-version; a trivial search
	// still proves the service is reachable.
	args = append(cfg.baseArgs(), "-n", "1", "*.txt")
	if _, _, err := run(ctx, "connect", cfg.ESPath, args, connectTimeout); err != nil {
		return "", err
	}
	return "Everything connected (version unknown)", nil
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// shared holds the process-wide configuration. Resolution is idempotent
// and has no side effects beyond process spawns and a registry read, so
// guarding it with a plain mutex is enough: concurrent first callers
// converge on one result.
var shared struct {
	mu  sync.Mutex
	cfg *Config
}

// SharedConfig returns the cached process-wide configuration, resolving
// it on first use.
func SharedConfig(ctx context.Context) *Config {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.cfg == nil {
		shared.cfg = Detect(ctx)
	}
	return shared.cfg
}

// ResetSharedConfig discards the cached configuration so the next
// SharedConfig call re-runs detection. Intended for tests and for callers
// that changed the environment overrides at runtime.
func ResetSharedConfig() {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.cfg = nil
}
