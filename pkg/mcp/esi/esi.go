// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package esi defines the "Everything Search Interface": the MCP
// (Model Context Protocol) tools through which AI agents query the
// voidtools Everything file index.
//
// Only declarations live here: tool metadata and the typed
// parameter/result structures. The handlers binding them to es.exe live
// in pkg/mcp/toolset. All five tools are read-only and idempotent with
// respect to the underlying index, and are annotated as such.
package esi
