package engine

import (
	"context"
	"fmt"

	"bioatlas/internal/models"
)

// Gaps lists thinly covered keywords, most severe first.
func (e *Engine) Gaps(ctx context.Context) ([]Gap, error) {
	rows, err := e.store.KeywordStats(ctx, models.KeywordStatsQuery{
		Categories:  e.th.GapCategories,
		MaxArticles: e.th.GapMaxArticles,
		Order:       models.Ascending,
		Limit:       e.th.GapMax,
	})
	if err != nil {
		return nil, fmt.Errorf("keyword stats: %w", err)
	}
	rows = boundCounts(rows, 0, e.th.GapMaxArticles)
	sortCounts(rows, models.Ascending)
	if len(rows) > e.th.GapMax {
		rows = rows[:e.th.GapMax]
	}
	out := make([]Gap, 0, len(rows))
	for _, r := range rows {
		out = append(out, Gap{
			Area:             r.Keyword,
			Category:         r.Category,
			PublicationCount: r.ArticleCount,
			Severity:         e.th.Severity(r.ArticleCount),
			Progress:         e.th.Progress(r.ArticleCount),
		})
	}
	return out, nil
}

func (t Thresholds) Severity(count int) Severity {
	switch {
	case count < t.GapCriticalBelow:
		return SeverityCritical
	case count < t.GapHighBelow:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

// Progress is count as a whole percentage of the well-studied baseline, capped at 100.
func (t Thresholds) Progress(count int) int {
	if t.GapBaseline <= 0 {
		return 100
	}
	p := count * 100 / t.GapBaseline
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
