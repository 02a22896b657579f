// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package fileinfo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/everything-search/everything-mcp/pkg/ptr"
)

const (
	maxDirScanItems       = 10_000
	maxSubdirectorySample = 20
	maxFileSample         = 30
)

// summarizeDirectory fills rec with an item count and bounded name
// samples without loading the whole directory into memory.
func summarizeDirectory(path string, rec *Record) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var dirs, files []string
	scanned := 0
	truncated := false
scan:
	for {
		ents, err := f.ReadDir(256)
		for _, e := range ents {
			if scanned >= maxDirScanItems {
				truncated = true
				break scan
			}
			scanned++
			// DirEntry types do not follow symlinks.
			switch {
			case e.IsDir():
				if len(dirs) < maxSubdirectorySample {
					dirs = append(dirs, e.Name())
				}
			case e.Type().IsRegular():
				if len(files) < maxFileSample {
					files = append(files, e.Name())
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	rec.ItemCount = ptr.Of(scanned)
	rec.Subdirectories = dirs
	rec.FilesSample = files
	switch {
	case truncated:
		rec.ListingNote = fmt.Sprintf("directory scan capped at %d entries; samples may be incomplete", maxDirScanItems)
	case scanned > maxSubdirectorySample+maxFileSample:
		rec.ListingNote = fmt.Sprintf("showing first items of %d total", scanned)
	}
	return nil
}
