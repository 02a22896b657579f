// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package fileinfo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/everything-search/everything-mcp/pkg/ptr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBaseName(t *testing.T) {
	tests := []struct{ in, want string }{
		{`C:\Users\alice\notes.txt`, "notes.txt"},
		{`C:\`, `C:\`},
		{`\\server\share\x.log`, "x.log"},
		{"/home/alice/x.log", "x.log"},
		{"plain", "plain"},
		{`C:\dir\`, "dir"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, baseName(tt.in), "baseName(%q)", tt.in)
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct{ in, want string }{
		{`C:\a\report.PDF`, "pdf"},
		{`C:\a\archive.tar.gz`, "gz"},
		{`C:\a\Makefile`, ""},
		{`C:\a\.gitignore`, ""},
		{`C:\a\noext.`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionOf(tt.in), "extensionOf(%q)", tt.in)
	}
}

func TestStatFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hello.txt", "hello world\n")

	rec := Stat(path)
	assert.Equal(t, "file", rec.Type)
	assert.Equal(t, "hello.txt", rec.Name)
	assert.Equal(t, "txt", rec.Extension)
	assert.Assert(t, rec.Size != nil)
	assert.Equal(t, int64(12), *rec.Size)
	assert.Assert(t, rec.SizeHuman != "")
	assert.Assert(t, rec.DateModified != "")
	assert.Equal(t, "", rec.MetadataError)
}

func TestStatMissingPathKeepsRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	rec := Stat(path)
	assert.Equal(t, path, rec.Path)
	assert.Assert(t, strings.Contains(rec.MetadataError, "metadata unavailable"))
	assert.Assert(t, rec.Size == nil)
}

func TestEnrichAllPartialFailure(t *testing.T) {
	dir := t.TempDir()
	ok1 := writeFile(t, dir, "a.txt", "a")
	missing := filepath.Join(dir, "missing.txt")
	ok2 := writeFile(t, dir, "b.txt", "b")

	recs := EnrichAll(context.Background(), []string{ok1, missing, ok2})
	assert.Equal(t, 3, len(recs))
	// Order preserved; the failed entry is flagged, neighbours unaffected.
	assert.Equal(t, ok1, recs[0].Path)
	assert.Equal(t, "", recs[0].MetadataError)
	assert.Assert(t, recs[1].MetadataError != "")
	assert.Equal(t, "", recs[2].MetadataError)
}

func TestDetailsMissingFile(t *testing.T) {
	rec := Details(filepath.Join(t.TempDir(), "nope.txt"), 0)
	assert.Equal(t, "File not found", rec.Error)
}

func TestDetailsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.txt", "1")
	writeFile(t, dir, "two.txt", "2")
	assert.NilError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	rec := Details(dir, 0)
	assert.Equal(t, "folder", rec.Type)
	assert.Assert(t, rec.ItemCount != nil)
	assert.Equal(t, 3, *rec.ItemCount)
	assert.DeepEqual(t, []string{"sub"}, rec.Subdirectories)
	assert.DeepEqual(t, []string{"one.txt", "two.txt"}, rec.FilesSample)
	assert.Equal(t, "", rec.Preview)
}

func TestDetailsPreview(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "code.py", "line1\nline2\nline3\n")

	rec := Details(path, 2)
	assert.Equal(t, "line1\nline2", rec.Preview)

	rec = Details(path, 200)
	assert.Equal(t, "line1\nline2\nline3", rec.Preview)

	// previews disabled
	rec = Details(path, 0)
	assert.Equal(t, "", rec.Preview)
}

func TestDetailsBinaryPreviewUnavailable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	assert.NilError(t, os.WriteFile(path, []byte{0x7f, 0x45, 0x00, 0x01, 0x02}, 0o644))

	rec := Details(path, 10)
	assert.Equal(t, PreviewUnavailable, rec.Preview)
}

func TestPreviewTruncatesLongLines(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("x", maxPreviewChars+100)
	path := writeFile(t, dir, "long.log", long+"\nnext\n")
	fi, err := os.Stat(path)
	assert.NilError(t, err)

	got := Preview(path, fi, 5)
	assert.Assert(t, strings.HasSuffix(got, previewTruncated))
	assert.Assert(t, len(got) <= maxPreviewChars+len(previewTruncated)+1)
}

func TestIsTextLike(t *testing.T) {
	assert.Assert(t, isTextLike(`C:\src\main.go`))
	assert.Assert(t, isTextLike(`C:\src\Makefile`))
	assert.Assert(t, isTextLike(`C:\home\.bashrc`))
	assert.Assert(t, !isTextLike(`C:\pics\photo.jpg`))
}

func TestBreakdown(t *testing.T) {
	size := func(n int64) *int64 { return ptr.Of(n) }
	records := []Record{
		{Type: "file", Extension: "py", Size: size(10)},
		{Type: "file", Extension: "py", Size: size(20)},
		{Type: "file", Extension: "js", Size: size(5)},
		{Type: "file", Size: size(1)},           // no extension
		{Type: "folder"},                        // excluded
		{Type: "file", MetadataError: "stat x"}, // excluded
	}

	stats, sampled := Breakdown(records, 30)
	assert.Equal(t, 4, sampled)
	assert.Equal(t, 3, len(stats))
	assert.Equal(t, "py", stats[0].Extension)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, int64(30), stats[0].TotalSize)
	// remaining single-count entries sort by extension name
	assert.Equal(t, NoExtension, stats[1].Extension)
	assert.Equal(t, "js", stats[2].Extension)

	top1, _ := Breakdown(records, 1)
	assert.Equal(t, 1, len(top1))
	assert.Equal(t, "py", top1[0].Extension)
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "unknown", HumanSize(-1))
	assert.Assert(t, strings.Contains(HumanSize(0), "B"))
}
