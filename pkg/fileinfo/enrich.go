// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package fileinfo

import (
	"context"
	"os"

	"github.com/everything-search/everything-mcp/pkg/ptr"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// enrichConcurrency bounds the number of concurrent stat calls when
// enriching a result batch.
const enrichConcurrency = 8

// Stat builds a Record for path with metadata from the filesystem.
// An inaccessible path yields a record flagged with MetadataError; the
// path itself is always reported.
func Stat(path string) Record {
	rec := Record{Path: path, Name: baseName(path)}
	fi, err := os.Stat(path)
	if err != nil {
		logrus.WithError(err).Debugf("failed to stat %q", path)
		rec.MetadataError = "metadata unavailable: " + err.Error()
		return rec
	}
	if fi.IsDir() {
		rec.Type = "folder"
	} else {
		rec.Type = "file"
		rec.Size = ptr.Of(fi.Size())
		rec.SizeHuman = HumanSize(fi.Size())
		rec.Extension = extensionOf(path)
	}
	rec.DateModified = formatTime(fi.ModTime())

	attrs := platformAttrs(fi, path)
	rec.DateCreated = formatTime(attrs.created)
	rec.Hidden = ptr.Of(attrs.hidden)
	if attrs.system {
		rec.System = ptr.Of(true)
	}
	return rec
}

// EnrichAll stats paths with bounded concurrency, preserving input
// order. Per-path failures are embedded in the corresponding record and
// never abort the batch.
func EnrichAll(ctx context.Context, paths []string) []Record {
	recs := make([]Record, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, p := range paths {
		g.Go(func() error {
			recs[i] = Stat(p)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return recs
}

// Details builds a full record for one inspected path: metadata plus a
// bounded directory listing for folders, or an optional content preview
// for text files. previewLines of 0 disables previews.
func Details(path string, previewLines int) Record {
	fi, err := os.Stat(path)
	if err != nil {
		rec := Record{Path: path}
		switch {
		case os.IsNotExist(err):
			rec.Error = "File not found"
		case os.IsPermission(err):
			rec.Error = "Permission denied"
		default:
			rec.Error = err.Error()
		}
		return rec
	}

	rec := Stat(path)
	attrs := platformAttrs(fi, path)
	rec.DateAccessed = formatTime(attrs.accessed)
	rec.ReadOnly = ptr.Of(attrs.readonly)

	if fi.IsDir() {
		if err := summarizeDirectory(path, &rec); err != nil {
			if os.IsPermission(err) {
				rec.ListingError = "Permission denied"
			} else {
				rec.ListingError = err.Error()
			}
		}
	} else if previewLines > 0 {
		rec.Preview = Preview(path, fi, previewLines)
	}
	return rec
}
