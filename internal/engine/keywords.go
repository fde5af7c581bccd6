package engine

import (
	"context"
	"fmt"
	"math"
	"sort"

	"bioatlas/internal/graph"
	"bioatlas/internal/models"
)

// SearchByKeywords matches exact keyword names and ranks articles by the
// average relevance of the keywords they matched.
func (e *Engine) SearchByKeywords(ctx context.Context, keywords []string, minRelevance float64, limit int) ([]KeywordResult, error) {
	n, err := e.resultLimit(limit)
	if err != nil {
		return nil, err
	}
	names := graph.CanonicalNames(keywords)
	if len(names) == 0 {
		return nil, invalidf("at least one keyword is required")
	}
	if math.IsNaN(minRelevance) || math.IsInf(minRelevance, 0) {
		return nil, invalidf("min relevance must be a finite number")
	}

	out := make([]KeywordResult, 0)
	found, err := e.store.KeywordLookup(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("keyword lookup: %w", err)
	}
	if len(found) == 0 {
		return out, nil
	}
	ids := make([]int64, 0, len(found))
	for _, k := range found {
		ids = append(ids, k.ID)
	}
	hits, err := e.store.ArticlesForKeywords(ctx, models.KeywordHitQuery{KeywordIDs: ids, MinRelevance: &minRelevance})
	if err != nil {
		return nil, fmt.Errorf("articles for keywords: %w", err)
	}

	groups := groupHits(hits, 0)
	sort.SliceStable(groups, func(i, j int) bool {
		ai, aj := groups[i].avg(), groups[j].avg()
		if ai != aj {
			return ai > aj
		}
		if len(groups[i].keywords) != len(groups[j].keywords) {
			return len(groups[i].keywords) > len(groups[j].keywords)
		}
		return groups[i].article.ID < groups[j].article.ID
	})
	if len(groups) > n {
		groups = groups[:n]
	}
	for _, g := range groups {
		out = append(out, KeywordResult{
			ArticleID:       g.article.ID,
			PMCID:           g.article.PMCID,
			Title:           g.article.Title,
			PublicationDate: g.article.PublicationDate,
			AvgRelevance:    g.avg(),
			MatchedKeywords: g.keywords,
		})
	}
	return out, nil
}

type hitGroup struct {
	article  models.Article
	keywords []string
	sum      float64
}

func (g hitGroup) avg() float64 {
	if len(g.keywords) == 0 {
		return 0
	}
	return g.sum / float64(len(g.keywords))
}

// groupHits folds keyword hits into one group per article, counting each
// (article, keyword) link once. Hits for exclude are dropped. Groups come out
// in first-seen order with sorted keyword names.
func groupHits(hits []models.KeywordHit, exclude int64) []hitGroup {
	index := map[int64]int{}
	seen := map[[2]int64]struct{}{}
	groups := make([]hitGroup, 0)
	for _, h := range hits {
		if exclude != 0 && h.Article.ID == exclude {
			continue
		}
		k := [2]int64{h.Article.ID, h.KeywordID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		i, ok := index[h.Article.ID]
		if !ok {
			i = len(groups)
			index[h.Article.ID] = i
			groups = append(groups, hitGroup{article: h.Article})
		}
		groups[i].keywords = append(groups[i].keywords, h.Keyword)
		groups[i].sum += h.Relevance
	}
	for i := range groups {
		sort.Strings(groups[i].keywords)
	}
	return groups
}
