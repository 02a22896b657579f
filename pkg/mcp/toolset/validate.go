// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"strings"

	"github.com/everything-search/everything-mcp/pkg/es"
	"github.com/everything-search/everything-mcp/pkg/esquery"
	"github.com/everything-search/everything-mcp/pkg/fileinfo"
	"github.com/everything-search/everything-mcp/pkg/mcp/esi"
)

const (
	defaultMaxResults = 50
	maxResults        = 500
	maxQueryLength    = 2000
	defaultSort       = "date-modified-desc"
	defaultPeriod     = "1hour"
	maxDetailPaths    = 20
)

// normalizeLimit applies the default and range-checks a max_results value.
func normalizeLimit(op string, n int) (int, error) {
	if n == 0 {
		return defaultMaxResults, nil
	}
	if n < 1 || n > maxResults {
		return 0, es.Validationf(op, "max_results must be between 1 and %d, got %d", maxResults, n)
	}
	return n, nil
}

// normalizeSort applies the default sort and rejects unknown sort keys
// before anything is spawned.
func normalizeSort(op, sort string) (string, error) {
	if sort == "" {
		return defaultSort, nil
	}
	if _, err := esquery.SortValue(sort); err != nil {
		return "", es.Validationf(op, "%s", err)
	}
	return sort, nil
}

func requireQuery(op, query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", es.Validationf(op, "query must not be empty")
	}
	if len(q) > maxQueryLength {
		return "", es.Validationf(op, "query exceeds %d characters", maxQueryLength)
	}
	return q, nil
}

func validateSearchParams(p *esi.SearchParams) error {
	const op = "everything_search"
	q, err := requireQuery(op, p.Query)
	if err != nil {
		return err
	}
	p.Query = q
	if p.MaxResults, err = normalizeLimit(op, p.MaxResults); err != nil {
		return err
	}
	if p.Sort, err = normalizeSort(op, p.Sort); err != nil {
		return err
	}
	if p.Offset < 0 {
		return es.Validationf(op, "offset must not be negative, got %d", p.Offset)
	}
	return nil
}

func validateSearchByTypeParams(p *esi.SearchByTypeParams) error {
	const op = "everything_search_by_type"
	// Membership in the category enum is checked here so that an unknown
	// category can never degrade into an unfiltered search.
	if _, err := esquery.CategoryFilter(p.FileType); err != nil {
		return es.Validationf(op, "%s", err)
	}
	var err error
	if p.MaxResults, err = normalizeLimit(op, p.MaxResults); err != nil {
		return err
	}
	if p.Sort, err = normalizeSort(op, p.Sort); err != nil {
		return err
	}
	return nil
}

func validateFindRecentParams(p *esi.FindRecentParams) error {
	const op = "everything_find_recent"
	if p.Period == "" {
		p.Period = defaultPeriod
	}
	var err error
	p.MaxResults, err = normalizeLimit(op, p.MaxResults)
	return err
}

func validateFileDetailsParams(p *esi.FileDetailsParams) error {
	const op = "everything_file_details"
	if len(p.Paths) < 1 || len(p.Paths) > maxDetailPaths {
		return es.Validationf(op, "paths must contain between 1 and %d entries, got %d", maxDetailPaths, len(p.Paths))
	}
	for _, path := range p.Paths {
		if strings.TrimSpace(path) == "" {
			return es.Validationf(op, "paths must not contain empty entries")
		}
	}
	if p.PreviewLines < 0 || p.PreviewLines > fileinfo.MaxPreviewLines {
		return es.Validationf(op, "preview_lines must be between 0 and %d, got %d", fileinfo.MaxPreviewLines, p.PreviewLines)
	}
	return nil
}

func validateCountStatsParams(p *esi.CountStatsParams) error {
	const op = "everything_count_stats"
	q, err := requireQuery(op, p.Query)
	if err != nil {
		return err
	}
	p.Query = q
	return nil
}
