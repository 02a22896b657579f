// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Kind classifies why an es.exe invocation failed.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound: es.exe is missing or not runnable.
	KindNotFound
	// KindServiceUnavailable: es.exe ran but could not reach the Everything
	// service (IPC window not found; Everything is not running).
	KindServiceUnavailable
	// KindTimeout: the child process exceeded the configured timeout.
	KindTimeout
	// KindBackendFailure: es.exe ran and reported an error.
	KindBackendFailure
	// KindValidation: caller-supplied parameter out of the allowed
	// range or enum; raised before any process is spawned.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindServiceUnavailable:
		return "service unavailable"
	case KindTimeout:
		return "timeout"
	case KindBackendFailure:
		return "backend failure"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every backend operation.
type Error struct {
	Kind Kind
	Op   string // operation being performed, e.g. "search"
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	switch {
	case e.Msg != "":
		b.WriteString(e.Msg)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString(e.Kind.String())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Validationf builds a validation error. Tool handlers raise these before
// anything is spawned.
func Validationf(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Known stderr fragments emitted by es.exe when the Everything service
// is not reachable. The exact wording varies between 1.4 and 1.5a.
var serviceUnavailableMarkers = []string{
	"ipc window not found",
	"window not found",
	"unable to send ipc",
	"everything is not running",
}

// classifyRunError turns a failed child process into a typed Error.
// runErr is the error from exec.Cmd.Run; ctxErr the state of the timeout
// context after the run; stderr the decoded standard error output.
func classifyRunError(op string, runErr, ctxErr error, stderr string) *Error {
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		return &Error{
			Kind: KindTimeout,
			Op:   op,
			Msg:  "es.exe timed out; try a more specific query or raise the timeout",
			Err:  runErr,
		}
	}
	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
		return &Error{
			Kind: KindNotFound,
			Op:   op,
			Msg:  "es.exe not found; verify Everything is installed",
			Err:  runErr,
		}
	}
	low := strings.ToLower(stderr)
	for _, marker := range serviceUnavailableMarkers {
		if strings.Contains(low, marker) {
			return &Error{
				Kind: KindServiceUnavailable,
				Op:   op,
				Msg:  "cannot reach the Everything service; make sure Everything is running (check the system tray)",
				Err:  runErr,
			}
		}
	}
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = runErr.Error()
	}
	return &Error{Kind: KindBackendFailure, Op: op, Msg: msg, Err: runErr}
}
