// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/everything-search/everything-mcp/pkg/esquery"
	"github.com/everything-search/everything-mcp/pkg/fileinfo"
	"github.com/everything-search/everything-mcp/pkg/mcp/esi"
)

func (ts *ToolSet) Search(ctx context.Context,
	_ *mcp.CallToolRequest, args esi.SearchParams,
) (*mcp.CallToolResult, *esi.SearchResult, error) {
	res, err := ts.search(ctx, args)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return searchCallResult(res), res, nil
}

func (ts *ToolSet) search(ctx context.Context, args esi.SearchParams) (*esi.SearchResult, error) {
	if err := validateSearchParams(&args); err != nil {
		return nil, err
	}
	backend, err := ts.backend()
	if err != nil {
		return nil, err
	}
	paths, err := backend.Search(ctx, esquery.Options{
		Query:          args.Query,
		MaxResults:     args.MaxResults,
		Offset:         args.Offset,
		Sort:           args.Sort,
		MatchCase:      args.MatchCase,
		MatchWholeWord: args.MatchWholeWord,
		MatchRegex:     args.MatchRegex,
		MatchPath:      args.MatchPath,
	})
	if err != nil {
		return nil, err
	}
	return newSearchResult(ctx, args.Query, paths, args.MaxResults, args.Offset), nil
}

func (ts *ToolSet) SearchByType(ctx context.Context,
	_ *mcp.CallToolRequest, args esi.SearchByTypeParams,
) (*mcp.CallToolResult, *esi.SearchResult, error) {
	res, err := ts.searchByType(ctx, args)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return searchCallResult(res), res, nil
}

func (ts *ToolSet) searchByType(ctx context.Context, args esi.SearchByTypeParams) (*esi.SearchResult, error) {
	if err := validateSearchByTypeParams(&args); err != nil {
		return nil, err
	}
	backend, err := ts.backend()
	if err != nil {
		return nil, err
	}
	query, err := esquery.TypeQuery(args.FileType, args.Query, args.Path)
	if err != nil {
		return nil, err // unreachable after validation, kept for safety
	}
	paths, err := backend.Search(ctx, esquery.Options{
		Query:      query,
		MaxResults: args.MaxResults,
		Sort:       args.Sort,
	})
	if err != nil {
		return nil, err
	}
	label := "type:" + args.FileType
	if args.Query != "" {
		label += " " + args.Query
	}
	return newSearchResult(ctx, label, paths, args.MaxResults, 0), nil
}

func (ts *ToolSet) FindRecent(ctx context.Context,
	_ *mcp.CallToolRequest, args esi.FindRecentParams,
) (*mcp.CallToolResult, *esi.SearchResult, error) {
	res, err := ts.findRecent(ctx, args)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return searchCallResult(res), res, nil
}

func (ts *ToolSet) findRecent(ctx context.Context, args esi.FindRecentParams) (*esi.SearchResult, error) {
	if err := validateFindRecentParams(&args); err != nil {
		return nil, err
	}
	backend, err := ts.backend()
	if err != nil {
		return nil, err
	}
	query := esquery.RecentQuery(args.Period, args.Path, args.Extensions)
	if args.Query != "" {
		query += " " + args.Query
	}
	paths, err := backend.Search(ctx, esquery.Options{
		Query:      query,
		MaxResults: args.MaxResults,
		Sort:       "date-modified-desc", // newest first, by contract
	})
	if err != nil {
		return nil, err
	}
	return newSearchResult(ctx, fmt.Sprintf("recent (%s)", args.Period), paths, args.MaxResults, 0), nil
}

// newSearchResult enriches the matched paths and attaches the
// pagination hint when the result cap was reached.
func newSearchResult(ctx context.Context, label string, paths []string, maxResults, offset int) *esi.SearchResult {
	records := fileinfo.EnrichAll(ctx, paths)
	res := &esi.SearchResult{
		Query:   label,
		Count:   len(records),
		Offset:  offset,
		Results: records,
	}
	if len(records) >= maxResults {
		res.Note = fmt.Sprintf("Showing first %d results. Use 'offset' to paginate or refine the query.", maxResults)
	}
	return res
}

// searchCallResult pairs the structured result with a text rendering for
// agents that do not consume structured content.
func searchCallResult(res *esi.SearchResult) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: formatSearchResult(res)}},
		StructuredContent: res,
	}
}

// formatSearchResult renders results as a compact listing for LLM
// consumption.
func formatSearchResult(res *esi.SearchResult) string {
	if len(res.Results) == 0 {
		return "No results found for: " + res.Query
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results for: %s", res.Count, res.Query)
	if res.Offset > 0 {
		fmt.Fprintf(&b, " (offset: %d)", res.Offset)
	}
	b.WriteString("\n")
	for i := range res.Results {
		r := &res.Results[i]
		prefix := "[FILE]"
		if r.IsDir() {
			prefix = "[DIR]"
		}
		var meta []string
		if r.SizeHuman != "" {
			meta = append(meta, r.SizeHuman)
		}
		if r.DateModified != "" {
			meta = append(meta, r.DateModified)
		}
		fmt.Fprintf(&b, "\n  %s %s", prefix, r.Path)
		if len(meta) > 0 {
			fmt.Fprintf(&b, "  (%s)", strings.Join(meta, ", "))
		}
	}
	if res.Note != "" {
		b.WriteString("\n\n" + res.Note)
	}
	return b.String()
}
