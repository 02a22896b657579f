// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// errorResult converts an internal error into an isError call result.
// Tool handlers return this instead of a protocol-level error so the
// agent sees the failure as tool output it can react to.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

// jsonCallResult pairs a structured result with its JSON rendering as
// the text content.
func jsonCallResult(v any) *mcp.CallToolResult {
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(j)}},
		StructuredContent: v,
	}
}
