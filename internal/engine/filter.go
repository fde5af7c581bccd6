package engine

import (
	"context"
	"fmt"
	"strings"

	"bioatlas/internal/models"
)

// Filter applies the optional predicates and returns one page. Total counts
// every match regardless of limit and offset.
func (e *Engine) Filter(ctx context.Context, p models.FilterPredicates, limit, offset int) (FilteredPage, error) {
	n, err := e.resultLimit(limit)
	if err != nil {
		return FilteredPage{}, err
	}
	if offset < 0 {
		return FilteredPage{}, invalidf("offset must not be negative, got %d", offset)
	}
	if p.DateFrom != nil && p.DateTo != nil && p.DateFrom.After(p.DateTo.Time) {
		return FilteredPage{}, invalidf("date_from %s is after date_to %s", p.DateFrom, p.DateTo)
	}
	p.Organisms = lowerAll(p.Organisms)

	total, page, err := e.store.FilterArticles(ctx, p, n, offset)
	if err != nil {
		return FilteredPage{}, fmt.Errorf("filter articles: %w", err)
	}
	if offset >= total {
		page = nil
	}
	if len(page) > n {
		page = page[:n]
	}
	if page == nil {
		page = make([]models.Article, 0)
	}
	return FilteredPage{Total: total, Limit: n, Offset: offset, Articles: page}, nil
}

// lowerAll trims, lowercases and drops blank names.
func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
