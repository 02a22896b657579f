// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package fileinfo turns filesystem paths into structured, optionally
// metadata-enriched records. es.exe output is deliberately kept to one
// path per line (see pkg/esquery), so everything beyond the path (sizes,
// timestamps, attributes, previews, directory listings) is derived here
// from the filesystem itself.
package fileinfo

import (
	"strings"
	"time"

	"github.com/docker/go-units"
)

const timeFormat = "2006-01-02 15:04:05"

// Record is one search result or inspected path. Optional fields are
// pointers or omitempty so that unknown metadata disappears from the
// JSON rendering instead of showing zero values.
type Record struct {
	Path      string `json:"path"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type,omitempty"` // "file" or "folder"
	Size      *int64 `json:"size,omitempty"`
	SizeHuman string `json:"size_human,omitempty"`
	Extension string `json:"extension,omitempty"`

	DateModified string `json:"date_modified,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
	DateAccessed string `json:"date_accessed,omitempty"`

	ReadOnly *bool `json:"read_only,omitempty"`
	Hidden   *bool `json:"hidden,omitempty"`
	System   *bool `json:"system,omitempty"`

	// Directory listings (folders only).
	ItemCount      *int     `json:"item_count,omitempty"`
	Subdirectories []string `json:"subdirectories,omitempty"`
	FilesSample    []string `json:"files_sample,omitempty"`
	ListingNote    string   `json:"listing_note,omitempty"`
	ListingError   string   `json:"listing_error,omitempty"`

	// Content preview (regular text files only).
	Preview string `json:"preview,omitempty"`

	// MetadataError marks a record whose path could not be stat'ed
	// (e.g. deleted between index query and enrichment). The record is
	// still returned; partial failure never aborts a batch.
	MetadataError string `json:"metadata_error,omitempty"`

	// Error marks a path that could not be inspected at all (file_details).
	Error string `json:"error,omitempty"`
}

func (r *Record) IsDir() bool {
	return r.Type == "folder"
}

// HumanSize renders a byte count for display; negative means unknown.
func HumanSize(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return units.HumanSize(float64(n))
}

// baseName returns the last path element, accepting both separator
// styles: es.exe always emits backslash paths, but forward slashes show
// up under WSL and in tests.
func baseName(path string) string {
	trimmed := strings.TrimRight(path, `\/`)
	if i := strings.LastIndexAny(trimmed, `\/`); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if trimmed == "" {
		return path // root drives have no base name
	}
	return trimmed
}

// extensionOf returns the lower-cased extension without the dot, or "".
func extensionOf(name string) string {
	base := baseName(name)
	i := strings.LastIndex(base, ".")
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeFormat)
}
