// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single es.exe invocation.
const DefaultTimeout = 30 * time.Second

// run spawns exe with args (never through a shell), captures stdout and
// stderr separately, and enforces timeout via the context. On expiry the
// child is killed by exec.CommandContext, so no orphan survives the call.
// Exactly one child process is spawned per call; there are no retries.
func run(ctx context.Context, op, exe string, args []string, timeout time.Duration) (stdout, stderr string, err error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.SysProcAttr = sysProcAttr()
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	logrus.WithField("args", args).Debugf("running %s", exe)
	runErr := cmd.Run()
	stdout = decodeOutput(outBuf.Bytes())
	stderr = decodeOutput(errBuf.Bytes())
	if runErr != nil {
		return stdout, stderr, classifyRunError(op, runErr, ctx.Err(), stderr)
	}
	// Empty stdout with a zero exit code is a valid "no matches" result.
	return stdout, stderr, nil
}
