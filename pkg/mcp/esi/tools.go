// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package esi

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/everything-search/everything-mcp/pkg/fileinfo"
	"github.com/everything-search/everything-mcp/pkg/ptr"
)

// readOnly marks a tool as read-only and idempotent against the index.
func readOnly(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:           title,
		ReadOnlyHint:    true,
		DestructiveHint: ptr.Of(false),
		IdempotentHint:  true,
		OpenWorldHint:   ptr.Of(false),
	}
}

var Search = &mcp.Tool{
	Name: "everything_search",
	Description: `Search for files and folders instantly using voidtools Everything's real-time NTFS index.
Supports wildcards, regex, size/date filters, extension filters, path restrictions, and content search.`,
	Annotations: readOnly("Search Files & Folders"),
}

type SearchParams struct {
	Query          string `json:"query" jsonschema:"Search query using Everything syntax. Examples: '*.py' (all Python files), 'ext:py;js path:C:\\Projects' (Python/JS in Projects), 'size:>10mb ext:log' (large logs), 'dm:today ext:py' (Python files modified today), '\"exact phrase\"' (exact filename match), 'regex:test_\\d+\\.py$' (regex). Combine with space (AND) or | (OR). Prefix ! to exclude."`
	MaxResults     int    `json:"max_results,omitempty" jsonschema:"Maximum results to return (1-500, default 50)."`
	Sort           string `json:"sort,omitempty" jsonschema:"Sort order (default date-modified-desc). Options: name, name-desc, path, path-desc, size, size-asc, size-desc, date-modified, date-modified-asc, date-modified-desc, date-created, date-created-asc, date-created-desc, extension."`
	MatchCase      bool   `json:"match_case,omitempty" jsonschema:"Case-sensitive search."`
	MatchWholeWord bool   `json:"match_whole_word,omitempty" jsonschema:"Match whole words only."`
	MatchRegex     bool   `json:"match_regex,omitempty" jsonschema:"Treat the query as a regular expression."`
	MatchPath      bool   `json:"match_path,omitempty" jsonschema:"Match against the full path, not just the filename."`
	Offset         int    `json:"offset,omitempty" jsonschema:"Skip this many results (pagination)."`
}

type SearchResult struct {
	Query   string            `json:"query" jsonschema:"The query or query label that produced these results."`
	Count   int               `json:"count" jsonschema:"Number of results returned."`
	Offset  int               `json:"offset,omitempty" jsonschema:"Pagination offset that was applied."`
	Results []fileinfo.Record `json:"results" jsonschema:"Matching entries, enriched with filesystem metadata."`
	Note    string            `json:"note,omitempty" jsonschema:"Pagination hint when the result cap was reached."`
}

var SearchByType = &mcp.Tool{
	Name: "everything_search_by_type",
	Description: `Search for files by type category. Categories: 3d, archive, audio, code, data, document, executable, font, image, video.
Each category maps to a curated list of file extensions.`,
	Annotations: readOnly("Search by File Type Category"),
}

type SearchByTypeParams struct {
	FileType   string `json:"file_type" jsonschema:"File type category: 3d, archive, audio, code, data, document, executable, font, image, video."`
	Query      string `json:"query,omitempty" jsonschema:"Additional search filter (e.g. 'config' to narrow results)."`
	Path       string `json:"path,omitempty" jsonschema:"Restrict the search to this directory (e.g. 'C:\\Projects')."`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum results to return (1-500, default 50)."`
	Sort       string `json:"sort,omitempty" jsonschema:"Sort order (default date-modified-desc)."`
}

var FindRecent = &mcp.Tool{
	Name: "everything_find_recent",
	Description: `Find files modified within a recent time period, newest first.
Ideal for discovering what changed in a project, tracking recent downloads, or finding today's log files.`,
	Annotations: readOnly("Find Recently Modified Files"),
}

type FindRecentParams struct {
	Period     string `json:"period,omitempty" jsonschema:"How recent (default 1hour). Options: 1min, 5min, 10min, 15min, 30min, 1hour, 2hours, 6hours, 12hours, today, yesterday, 1day, 3days, 1week, 2weeks, 1month, 3months, 6months, 1year. Raw Everything syntax such as 'last2hours' also works."`
	Path       string `json:"path,omitempty" jsonschema:"Restrict to this directory path."`
	Extensions string `json:"extensions,omitempty" jsonschema:"Filter by extensions, e.g. 'py,js,ts' or 'py;js;ts'."`
	Query      string `json:"query,omitempty" jsonschema:"Additional search filter."`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum results to return (1-500, default 50)."`
}

var FileDetails = &mcp.Tool{
	Name: "everything_file_details",
	Description: `Get detailed metadata and an optional content preview for specific files.
Returns full path, size, dates, type, permissions, and hidden status. Directories get an item count and a bounded listing; text files can include the first N lines of content.`,
	Annotations: readOnly("Get File Details & Content Preview"),
}

type FileDetailsParams struct {
	Paths        []string `json:"paths" jsonschema:"File or folder paths to inspect (1-20)."`
	PreviewLines int      `json:"preview_lines,omitempty" jsonschema:"Lines of text content to preview (0 = none, max 200)."`
}

type FileDetailsResult struct {
	Files []fileinfo.Record `json:"files" jsonschema:"One record per requested path, in request order."`
}

var CountStats = &mcp.Tool{
	Name: "everything_count_stats",
	Description: `Get count and size statistics for files matching a query, without listing every file.
Optionally breaks the totals down by file extension; the breakdown is computed from a bounded sample of matches and is an estimate for large result sets.`,
	Annotations: readOnly("Count & Size Statistics"),
}

type CountStatsParams struct {
	Query                string `json:"query" jsonschema:"Search query to count/measure. Same syntax as everything_search. Examples: 'ext:py path:C:\\Projects', 'ext:log size:>1mb', '*.tmp'."`
	IncludeSize          *bool  `json:"include_size,omitempty" jsonschema:"Also calculate the total size of all matching files (default true)."`
	BreakdownByExtension bool   `json:"breakdown_by_extension,omitempty" jsonschema:"Break down count and size by file extension, based on a bounded sample of results."`
}

type CountStatsResult struct {
	Query              string             `json:"query"`
	TotalCount         *int64             `json:"total_count,omitempty" jsonschema:"Exact number of matching entries."`
	CountNote          string             `json:"count_note,omitempty"`
	TotalSize          *int64             `json:"total_size,omitempty" jsonschema:"Total size in bytes of all matching files."`
	TotalSizeHuman     string             `json:"total_size_human,omitempty"`
	SizeNote           string             `json:"size_note,omitempty"`
	ExtensionBreakdown []fileinfo.ExtStat `json:"extension_breakdown,omitempty" jsonschema:"Per-extension counts and sizes from the sample, most frequent first."`
	BreakdownNote      string             `json:"breakdown_note,omitempty" jsonschema:"States the sample size; breakdown figures are sampled estimates, not exact totals."`
}
