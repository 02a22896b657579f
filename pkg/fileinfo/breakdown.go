// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package fileinfo

import "sort"

// NoExtension is the breakdown bucket for files without an extension.
const NoExtension = "(no extension)"

// ExtStat aggregates count and size for one extension within a sample.
type ExtStat struct {
	Extension      string `json:"extension"`
	Count          int    `json:"count"`
	TotalSize      int64  `json:"total_size"`
	TotalSizeHuman string `json:"total_size_human"`
}

// Breakdown aggregates records per extension, most frequent first,
// keeping at most top entries. Directories and records without metadata
// are excluded. sampledFiles reports how many files contributed; because
// the input is itself a bounded sample of the match set, the returned
// counts are sampled estimates, not exact totals.
func Breakdown(records []Record, top int) (stats []ExtStat, sampledFiles int) {
	byExt := map[string]*ExtStat{}
	for i := range records {
		r := &records[i]
		if r.IsDir() || r.MetadataError != "" {
			continue
		}
		sampledFiles++
		ext := r.Extension
		if ext == "" {
			ext = NoExtension
		}
		entry, ok := byExt[ext]
		if !ok {
			entry = &ExtStat{Extension: ext}
			byExt[ext] = entry
		}
		entry.Count++
		if r.Size != nil {
			entry.TotalSize += *r.Size
		}
	}

	stats = make([]ExtStat, 0, len(byExt))
	for _, e := range byExt {
		e.TotalSizeHuman = HumanSize(e.TotalSize)
		stats = append(stats, *e)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Extension < stats[j].Extension
	})
	if top > 0 && len(stats) > top {
		stats = stats[:top]
	}
	return stats, sampledFiles
}
