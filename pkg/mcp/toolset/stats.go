// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/everything-search/everything-mcp/pkg/esquery"
	"github.com/everything-search/everything-mcp/pkg/fileinfo"
	"github.com/everything-search/everything-mcp/pkg/mcp/esi"
	"github.com/everything-search/everything-mcp/pkg/ptr"
)

const (
	// breakdownSampleLimit bounds how many matches are fetched and
	// stat'ed for the per-extension breakdown.
	breakdownSampleLimit = 500
	// breakdownTopExtensions caps how many extensions are reported.
	breakdownTopExtensions = 30
)

// CountStats reports aggregate statistics without listing matches. The
// count, the total size, and the extension breakdown are independent
// backend calls; a failure in one degrades to a note on that figure
// instead of failing the whole call.
func (ts *ToolSet) CountStats(ctx context.Context,
	_ *mcp.CallToolRequest, args esi.CountStatsParams,
) (*mcp.CallToolResult, *esi.CountStatsResult, error) {
	res, err := ts.countStats(ctx, args)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonCallResult(res), res, nil
}

func (ts *ToolSet) countStats(ctx context.Context, args esi.CountStatsParams) (*esi.CountStatsResult, error) {
	if err := validateCountStatsParams(&args); err != nil {
		return nil, err
	}
	backend, err := ts.backend()
	if err != nil {
		return nil, err
	}
	res := &esi.CountStatsResult{Query: args.Query}

	count, err := backend.Count(ctx, args.Query)
	if err != nil {
		res.CountNote = "count unavailable: " + err.Error()
	} else {
		res.TotalCount = ptr.Of(count)
	}

	includeSize := args.IncludeSize == nil || *args.IncludeSize
	if includeSize {
		size, err := backend.TotalSize(ctx, args.Query)
		if err != nil {
			res.SizeNote = "total size unavailable: " + err.Error()
		} else {
			res.TotalSize = ptr.Of(size)
			res.TotalSizeHuman = fileinfo.HumanSize(size)
		}
	}

	if args.BreakdownByExtension {
		ts.extensionBreakdown(ctx, backend, args.Query, res)
	}
	return res, nil
}

// extensionBreakdown fills in the per-extension figures from a bounded
// sample of matches. Sorting by name keeps the sample stable across
// repeated calls while files are being modified.
func (ts *ToolSet) extensionBreakdown(ctx context.Context, backend backendSearcher, query string, res *esi.CountStatsResult) {
	paths, err := backend.Search(ctx, esquery.Options{
		Query:      query,
		MaxResults: breakdownSampleLimit,
		Sort:       "name",
	})
	if err != nil {
		res.BreakdownNote = "breakdown unavailable: " + err.Error()
		return
	}
	records := fileinfo.EnrichAll(ctx, paths)
	stats, sampled := fileinfo.Breakdown(records, breakdownTopExtensions)
	res.ExtensionBreakdown = stats
	note := fmt.Sprintf("Breakdown based on a sample of %d files", sampled)
	if res.TotalCount != nil && *res.TotalCount > int64(len(paths)) {
		note += fmt.Sprintf(" out of %d matches; figures are estimates", *res.TotalCount)
	}
	res.BreakdownNote = note + "."
}

// backendSearcher is the slice of es.Config that the breakdown needs.
type backendSearcher interface {
	Search(ctx context.Context, o esquery.Options) ([]string, error)
}
