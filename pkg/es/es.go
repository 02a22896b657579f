// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package es locates and drives es.exe, the command-line client for the
// voidtools Everything file-index service.
//
// The package owns three concerns:
//   - resolving a working es.exe path and service instance with zero
//     required configuration (locate.go)
//   - spawning es.exe with a bounded lifetime and classifying failures
//     (run.go, errors.go)
//   - decoding and splitting its line-oriented output (decode.go, parse.go)
//
// Query construction lives in pkg/esquery; metadata enrichment of the
// returned paths lives in pkg/fileinfo.
package es

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/everything-search/everything-mcp/pkg/esquery"
)

// Config is the resolved backend configuration: where es.exe lives and
// which Everything instance to target. It is resolved once per process
// (see Shared) and not mutated afterwards.
type Config struct {
	// ESPath is the absolute path to es.exe. Empty when detection failed.
	ESPath string
	// Instance is the Everything instance name to target. Empty selects
	// the es.exe default.
	Instance string
	// Version is the probed Everything version banner, informational only.
	Version string
	// Timeout bounds each es.exe invocation.
	Timeout time.Duration
	// Errors holds human-readable detection failures.
	Errors []string
}

// OK reports whether es.exe was found and Everything responded.
func (c *Config) OK() bool {
	return c != nil && c.ESPath != "" && len(c.Errors) == 0
}

// baseArgs returns the instance selection flags shared by every call.
func (c *Config) baseArgs() []string {
	if c.Instance == "" {
		return nil
	}
	return []string{"-instance", c.Instance}
}

// run executes es.exe with the instance flags prepended to args.
func (c *Config) run(ctx context.Context, op string, args []string) (string, error) {
	if c.ESPath == "" {
		return "", &Error{Kind: KindNotFound, Op: op, Msg: strings.Join(c.Errors, "; ")}
	}
	stdout, _, err := run(ctx, op, c.ESPath, append(c.baseArgs(), args...), c.Timeout)
	return stdout, err
}

// Search runs a search built from opts and returns the matching paths.
// An empty slice with a nil error means the query matched nothing.
func (c *Config) Search(ctx context.Context, opts esquery.Options) ([]string, error) {
	args, err := esquery.Build(opts)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Op: "search", Err: err}
	}
	stdout, err := c.run(ctx, "search", args)
	if err != nil {
		return nil, err
	}
	return ParsePaths(stdout), nil
}

// Count returns the number of entries matching query without listing them.
func (c *Config) Count(ctx context.Context, query string) (int64, error) {
	return c.aggregate(ctx, "count", esquery.BuildCount(query))
}

// TotalSize returns the total size in bytes of all files matching query.
func (c *Config) TotalSize(ctx context.Context, query string) (int64, error) {
	return c.aggregate(ctx, "total size", esquery.BuildTotalSize(query))
}

func (c *Config) aggregate(ctx context.Context, op string, args []string) (int64, error) {
	stdout, err := c.run(ctx, op, args)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(stdout), 10, 64)
	if err != nil {
		return 0, &Error{Kind: KindBackendFailure, Op: op, Msg: "unexpected es.exe output " + strconv.Quote(strings.TrimSpace(stdout))}
	}
	return n, nil
}

// Status describes the health of the Everything connection, as reported
// by the everything://status resource.
type Status struct {
	Status            string   `json:"status"`
	EverythingVersion string   `json:"everything_version,omitempty"`
	ESPath            string   `json:"es_path,omitempty"`
	Instance          string   `json:"instance,omitempty"`
	Message           string   `json:"message,omitempty"`
	Errors            []string `json:"errors,omitempty"`
}

// Health probes the Everything service and reports the connection state.
func (c *Config) Health(ctx context.Context) *Status {
	if !c.OK() {
		st := &Status{Status: "error", Errors: c.Errors, ESPath: c.ESPath}
		if st.ESPath == "" {
			st.ESPath = "not found"
		}
		return st
	}
	stdout, err := c.run(ctx, "health", []string{"-get-everything-version"})
	if err != nil {
		return &Status{Status: "error", Message: err.Error(), ESPath: c.ESPath}
	}
	v := strings.TrimSpace(stdout)
	if v == "" {
		return &Status{Status: "error", Message: "unexpected response from Everything", ESPath: c.ESPath}
	}
	instance := c.Instance
	if instance == "" {
		instance = "default"
	}
	return &Status{
		Status:            "ok",
		EverythingVersion: v,
		ESPath:            c.ESPath,
		Instance:          instance,
	}
}
