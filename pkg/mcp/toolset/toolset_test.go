// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gotest.tools/v3/assert"

	"github.com/everything-search/everything-mcp/pkg/es"
	"github.com/everything-search/everything-mcp/pkg/esquery"
	"github.com/everything-search/everything-mcp/pkg/fileinfo"
	"github.com/everything-search/everything-mcp/pkg/mcp/esi"
)

// unresolved returns a ToolSet whose backend detection failed.
func unresolved() *ToolSet {
	return New(&es.Config{
		Errors: []string{"es.exe not found in PATH or known install locations"},
	})
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	assert.Assert(t, len(res.Content) == 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	assert.Assert(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestSearchValidation(t *testing.T) {
	ts := unresolved()
	testCases := []struct {
		name    string
		params  esi.SearchParams
		wantErr string
	}{
		{
			name:    "empty query",
			params:  esi.SearchParams{},
			wantErr: "query must not be empty",
		},
		{
			name:    "blank query",
			params:  esi.SearchParams{Query: "   "},
			wantErr: "query must not be empty",
		},
		{
			name:    "max_results too large",
			params:  esi.SearchParams{Query: "*.py", MaxResults: 501},
			wantErr: "max_results must be between 1 and 500",
		},
		{
			name:    "max_results negative",
			params:  esi.SearchParams{Query: "*.py", MaxResults: -1},
			wantErr: "max_results must be between 1 and 500",
		},
		{
			name:    "unknown sort",
			params:  esi.SearchParams{Query: "*.py", Sort: "relevance"},
			wantErr: "invalid sort option",
		},
		{
			name:    "negative offset",
			params:  esi.SearchParams{Query: "*.py", Offset: -5},
			wantErr: "offset must not be negative",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, structured, err := ts.Search(context.Background(), nil, tc.params)
			assert.NilError(t, err)
			assert.Assert(t, structured == nil)
			assert.Assert(t, res.IsError)
			assert.Assert(t, strings.Contains(textOf(t, res), tc.wantErr),
				"got %q", textOf(t, res))
		})
	}
}

func TestSearchUnavailableBackend(t *testing.T) {
	ts := unresolved()
	res, _, err := ts.Search(context.Background(), nil, esi.SearchParams{Query: "*.py"})
	assert.NilError(t, err)
	assert.Assert(t, res.IsError)
	text := textOf(t, res)
	assert.Assert(t, strings.Contains(text, "Everything is not available"), "got %q", text)
	// Detection diagnostics must reach the agent.
	assert.Assert(t, strings.Contains(text, "not found in PATH"), "got %q", text)
}

func TestSearchByTypeUnknownCategory(t *testing.T) {
	ts := unresolved()
	res, _, err := ts.SearchByType(context.Background(), nil,
		esi.SearchByTypeParams{FileType: "spreadsheet"})
	assert.NilError(t, err)
	assert.Assert(t, res.IsError)
	text := textOf(t, res)
	assert.Assert(t, strings.Contains(text, "unknown file type"), "got %q", text)
	// The message should steer the agent to a valid category.
	assert.Assert(t, strings.Contains(text, "document"), "got %q", text)
}

func TestFindRecentValidationBeforeBackend(t *testing.T) {
	ts := unresolved()
	res, _, err := ts.FindRecent(context.Background(), nil,
		esi.FindRecentParams{MaxResults: 9999})
	assert.NilError(t, err)
	assert.Assert(t, res.IsError)
	assert.Assert(t, strings.Contains(textOf(t, res), "max_results"), "got %q", textOf(t, res))
}

func TestFileDetailsValidation(t *testing.T) {
	ts := unresolved()
	manyPaths := make([]string, maxDetailPaths+1)
	for i := range manyPaths {
		manyPaths[i] = "C:\\x.txt"
	}
	testCases := []struct {
		name    string
		params  esi.FileDetailsParams
		wantErr string
	}{
		{
			name:    "no paths",
			params:  esi.FileDetailsParams{},
			wantErr: "between 1 and 20",
		},
		{
			name:    "too many paths",
			params:  esi.FileDetailsParams{Paths: manyPaths},
			wantErr: "between 1 and 20",
		},
		{
			name:    "empty path entry",
			params:  esi.FileDetailsParams{Paths: []string{"C:\\a.txt", "  "}},
			wantErr: "empty entries",
		},
		{
			name:    "preview too large",
			params:  esi.FileDetailsParams{Paths: []string{"C:\\a.txt"}, PreviewLines: 201},
			wantErr: "preview_lines",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, _, err := ts.FileDetails(context.Background(), nil, tc.params)
			assert.NilError(t, err)
			assert.Assert(t, res.IsError)
			assert.Assert(t, strings.Contains(textOf(t, res), tc.wantErr),
				"got %q", textOf(t, res))
		})
	}
}

// FileDetails works without a resolved backend; it inspects the
// filesystem directly and keeps per-path failures local.
func TestFileDetailsMixedPaths(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "notes.txt")
	assert.NilError(t, os.WriteFile(existing, []byte("hello\nworld\n"), 0o644))
	missing := filepath.Join(dir, "gone.txt")

	ts := unresolved()
	res, structured, err := ts.FileDetails(context.Background(), nil, esi.FileDetailsParams{
		Paths:        []string{existing, missing},
		PreviewLines: 5,
	})
	assert.NilError(t, err)
	assert.Assert(t, !res.IsError)
	assert.Assert(t, structured != nil)
	assert.Equal(t, len(structured.Files), 2)

	got := structured.Files[0]
	assert.Equal(t, got.Path, existing)
	assert.Equal(t, got.Type, "file")
	assert.Equal(t, got.Preview, "hello\nworld")
	assert.Equal(t, got.Error, "")

	assert.Equal(t, structured.Files[1].Path, missing)
	assert.Equal(t, structured.Files[1].Error, "File not found")
}

func TestCountStatsValidation(t *testing.T) {
	ts := unresolved()
	res, _, err := ts.CountStats(context.Background(), nil, esi.CountStatsParams{})
	assert.NilError(t, err)
	assert.Assert(t, res.IsError)
	assert.Assert(t, strings.Contains(textOf(t, res), "query must not be empty"))
}

type fakeSearcher struct {
	paths []string
	err   error
}

func (f *fakeSearcher) Search(_ context.Context, _ esquery.Options) ([]string, error) {
	return f.paths, f.err
}

func TestExtensionBreakdown(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.py", "b.py", "c.txt"} {
		p := filepath.Join(dir, name)
		assert.NilError(t, os.WriteFile(p, []byte("x"), 0o644))
		paths = append(paths, p)
	}

	ts := unresolved()
	res := &esi.CountStatsResult{Query: "ext:py;txt"}
	ts.extensionBreakdown(context.Background(), &fakeSearcher{paths: paths}, res.Query, res)

	assert.Equal(t, len(res.ExtensionBreakdown), 2)
	assert.Equal(t, res.ExtensionBreakdown[0].Extension, "py")
	assert.Equal(t, res.ExtensionBreakdown[0].Count, 2)
	assert.Equal(t, res.ExtensionBreakdown[1].Extension, "txt")
	assert.Assert(t, strings.Contains(res.BreakdownNote, "sample of 3"), "got %q", res.BreakdownNote)
}

func TestExtensionBreakdownBackendFailure(t *testing.T) {
	ts := unresolved()
	res := &esi.CountStatsResult{Query: "*"}
	ts.extensionBreakdown(context.Background(), &fakeSearcher{err: &es.Error{
		Kind: es.KindServiceUnavailable, Msg: "Everything IPC window not found",
	}}, res.Query, res)
	assert.Assert(t, strings.Contains(res.BreakdownNote, "breakdown unavailable"))
	assert.Assert(t, res.ExtensionBreakdown == nil)
}

func TestFormatSearchResult(t *testing.T) {
	empty := &esi.SearchResult{Query: "*.nope"}
	assert.Equal(t, formatSearchResult(empty), "No results found for: *.nope")

	size := int64(2048)
	res := &esi.SearchResult{
		Query:  "*.py",
		Count:  2,
		Offset: 50,
		Results: []fileinfo.Record{
			{Path: `C:\Projects\app.py`, Type: "file", Size: &size, SizeHuman: "2kB", DateModified: "2026-08-24 10:00:00"},
			{Path: `C:\Projects\tests`, Type: "folder"},
		},
		Note: "Showing first 50 results. Use 'offset' to paginate or refine the query.",
	}
	text := formatSearchResult(res)
	assert.Assert(t, strings.Contains(text, "Found 2 results for: *.py (offset: 50)"), "got %q", text)
	assert.Assert(t, strings.Contains(text, `[FILE] C:\Projects\app.py  (2kB, 2026-08-24 10:00:00)`), "got %q", text)
	assert.Assert(t, strings.Contains(text, `[DIR] C:\Projects\tests`), "got %q", text)
	assert.Assert(t, strings.Contains(text, "Showing first 50 results"), "got %q", text)
}

func TestErrorResult(t *testing.T) {
	res := errorResult(es.Validationf("everything_search", "query must not be empty"))
	assert.Assert(t, res.IsError)
	text := textOf(t, res)
	assert.Assert(t, strings.HasPrefix(text, "Error: "), "got %q", text)
}

func TestStatusResourceUninitialised(t *testing.T) {
	ts := New(nil)
	res, err := ts.Status(context.Background(), nil)
	assert.NilError(t, err)
	assert.Equal(t, len(res.Contents), 1)
	assert.Equal(t, res.Contents[0].URI, StatusResource.URI)
	assert.Assert(t, strings.Contains(res.Contents[0].Text, "not initialised"))
}

func TestRegisterServer(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	assert.NilError(t, unresolved().RegisterServer(server))
}
