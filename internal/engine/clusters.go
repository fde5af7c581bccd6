package engine

import (
	"context"
	"fmt"
	"sort"

	"bioatlas/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Clusters returns well-supported keywords with their co-occurring topics.
func (e *Engine) Clusters(ctx context.Context) ([]Cluster, error) {
	rows, err := e.store.KeywordStats(ctx, models.KeywordStatsQuery{
		Categories:  e.th.ClusterCategories,
		MinArticles: e.th.ClusterMinArticles,
		Order:       models.Descending,
		Limit:       e.th.ClusterMax,
	})
	if err != nil {
		return nil, fmt.Errorf("keyword stats: %w", err)
	}
	rows = boundCounts(rows, e.th.ClusterMinArticles, 0)
	sortCounts(rows, models.Descending)
	if len(rows) > e.th.ClusterMax {
		rows = rows[:e.th.ClusterMax]
	}

	title := cases.Title(language.English)
	out := make([]Cluster, 0, len(rows))
	for _, r := range rows {
		related, err := e.store.RelatedKeywords(ctx, r.ID, e.th.ClusterRelatedTopics)
		if err != nil {
			return nil, fmt.Errorf("related keywords for %q: %w", r.Keyword, err)
		}
		out = append(out, Cluster{
			Name:          title.String(r.Keyword),
			Keyword:       r.Keyword,
			Category:      r.Category,
			ArticleCount:  r.ArticleCount,
			RelatedTopics: relatedTopics(related, r.Keyword, e.th.ClusterRelatedTopics),
		})
	}
	return out, nil
}

func relatedTopics(in []string, self string, n int) []string {
	seen := map[string]struct{}{self: {}}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// boundCounts keeps rows with lo <= count, and count < hi when hi > 0.
func boundCounts(rows []models.KeywordCount, lo, hi int) []models.KeywordCount {
	out := rows[:0:0]
	for _, r := range rows {
		if r.ArticleCount < lo {
			continue
		}
		if hi > 0 && r.ArticleCount >= hi {
			continue
		}
		out = append(out, r)
	}
	return out
}

func sortCounts(rows []models.KeywordCount, order models.SortOrder) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ArticleCount != rows[j].ArticleCount {
			if order == models.Ascending {
				return rows[i].ArticleCount < rows[j].ArticleCount
			}
			return rows[i].ArticleCount > rows[j].ArticleCount
		}
		return rows[i].Keyword < rows[j].Keyword
	})
}
