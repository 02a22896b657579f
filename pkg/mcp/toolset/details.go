// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/everything-search/everything-mcp/pkg/fileinfo"
	"github.com/everything-search/everything-mcp/pkg/mcp/esi"
)

// FileDetails inspects specific paths directly on the filesystem. It
// never talks to es.exe, so it works even when Everything is down.
func (ts *ToolSet) FileDetails(ctx context.Context,
	_ *mcp.CallToolRequest, args esi.FileDetailsParams,
) (*mcp.CallToolResult, *esi.FileDetailsResult, error) {
	if err := validateFileDetailsParams(&args); err != nil {
		return errorResult(err), nil, nil
	}
	res := &esi.FileDetailsResult{Files: make([]fileinfo.Record, 0, len(args.Paths))}
	for _, path := range args.Paths {
		if err := ctx.Err(); err != nil {
			return errorResult(err), nil, nil
		}
		res.Files = append(res.Files, fileinfo.Details(path, args.PreviewLines))
	}
	return jsonCallResult(res), res, nil
}
