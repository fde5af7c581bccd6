package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bioatlas/internal/models"
	"bioatlas/internal/util"
)

// Search runs a ranked full-text query. Each article appears once, with its
// best-scoring section, ordered by score descending.
func (e *Engine) Search(ctx context.Context, query string, sections []string, limit int) ([]SearchResult, error) {
	n, err := e.resultLimit(limit)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	out := make([]SearchResult, 0)
	if query == "" {
		return out, nil
	}

	hits, err := e.store.FullTextQuery(ctx, models.FullTextQuery{
		Text:         query,
		SectionTypes: normalizeSections(sections),
		Limit:        n,
	})
	if err != nil {
		return nil, fmt.Errorf("full text query: %w", err)
	}
	best := bestSectionPerArticle(hits)
	if len(best) > n {
		best = best[:n]
	}
	if len(best) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(best))
	for _, h := range best {
		ids = append(ids, h.Article.ID)
	}
	keywords, err := e.store.KeywordsForArticles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("keywords for articles: %w", err)
	}

	for _, h := range best {
		kws := append([]string{}, keywords[h.Article.ID]...)
		sort.Strings(kws)
		out = append(out, SearchResult{
			ArticleID:       h.Article.ID,
			PMCID:           h.Article.PMCID,
			Title:           h.Article.Title,
			PublicationDate: h.Article.PublicationDate,
			Journal:         h.Article.Journal,
			DOI:             h.Article.DOI,
			SectionType:     h.SectionType,
			Score:           h.Score,
			Snippet:         util.Snippet(h.Content, query, e.th.SnippetMinWords, e.th.SnippetMaxWords),
			Keywords:        kws,
		})
	}
	return out, nil
}

// bestSectionPerArticle keeps the highest-scoring row per article (the first
// seen on ties) and sorts by score descending, then article id.
func bestSectionPerArticle(hits []models.SectionHit) []models.SectionHit {
	index := make(map[int64]int, len(hits))
	out := make([]models.SectionHit, 0, len(hits))
	for _, h := range hits {
		i, ok := index[h.Article.ID]
		if !ok {
			index[h.Article.ID] = len(out)
			out = append(out, h)
			continue
		}
		if h.Score > out[i].Score {
			out[i] = h
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Article.ID < out[j].Article.ID
	})
	return out
}

func normalizeSections(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
