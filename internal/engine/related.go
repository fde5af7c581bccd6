package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bioatlas/internal/models"
)

// Related ranks articles sharing keywords with the seed article: shared
// keyword count first, then the average relevance of the shared keywords on
// the candidate. This is a fixed heuristic, reproducible for an unchanged
// corpus. An unknown seed yields an empty result.
func (e *Engine) Related(ctx context.Context, pmcid string, limit int) ([]RelatedResult, error) {
	n, err := e.resultLimit(limit)
	if err != nil {
		return nil, err
	}
	pmcid = strings.TrimSpace(pmcid)
	if pmcid == "" {
		return nil, invalidf("article id is required")
	}

	out := make([]RelatedResult, 0)
	seed, err := e.store.FindArticle(ctx, pmcid)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if seed == nil {
		return out, nil
	}
	ids, err := e.store.ArticleKeywordIDs(ctx, seed.ID)
	if err != nil {
		return nil, fmt.Errorf("article keyword ids: %w", err)
	}
	if len(ids) == 0 {
		return out, nil
	}
	hits, err := e.store.ArticlesForKeywords(ctx, models.KeywordHitQuery{KeywordIDs: ids})
	if err != nil {
		return nil, fmt.Errorf("articles for keywords: %w", err)
	}

	groups := groupHits(hits, seed.ID)
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].keywords) != len(groups[j].keywords) {
			return len(groups[i].keywords) > len(groups[j].keywords)
		}
		ai, aj := groups[i].avg(), groups[j].avg()
		if ai != aj {
			return ai > aj
		}
		return groups[i].article.ID < groups[j].article.ID
	})
	if len(groups) > n {
		groups = groups[:n]
	}
	for _, g := range groups {
		out = append(out, RelatedResult{
			ArticleID:       g.article.ID,
			PMCID:           g.article.PMCID,
			Title:           g.article.Title,
			PublicationDate: g.article.PublicationDate,
			SharedKeywords:  len(g.keywords),
			AvgRelevance:    g.avg(),
		})
	}
	return out, nil
}
