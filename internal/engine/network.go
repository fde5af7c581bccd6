package engine

import (
	"context"
	"fmt"

	"bioatlas/internal/graph"
	"bioatlas/internal/models"
)

// KeywordNetwork builds the keyword co-occurrence graph, capped at limit edges.
func (e *Engine) KeywordNetwork(ctx context.Context, limit int) (graph.Graph, error) {
	n, err := sized(limit, e.th.KeywordNetworkEdges, e.maxLimit)
	if err != nil {
		return graph.Graph{}, err
	}
	pairs, err := e.pairs(ctx, models.PairQuery{
		Entity:     models.EntityKeyword,
		Categories: e.th.KeywordNetworkCategories,
		MinCount:   e.th.KeywordNetworkMinCount,
		Limit:      n,
	})
	if err != nil {
		return graph.Graph{}, err
	}
	return graph.Build(pairs, string(models.EntityKeyword), n), nil
}

// AuthorNetwork builds the co-authorship graph keeping pairs with at least
// minCollab shared articles. Zero selects the default threshold.
func (e *Engine) AuthorNetwork(ctx context.Context, minCollab int) (graph.Graph, error) {
	if minCollab < 0 {
		return graph.Graph{}, invalidf("min collaborations must not be negative, got %d", minCollab)
	}
	if minCollab == 0 {
		minCollab = e.th.AuthorNetworkMinCount
	}
	pairs, err := e.pairs(ctx, models.PairQuery{
		Entity:   models.EntityAuthor,
		MinCount: minCollab,
		Limit:    e.th.AuthorNetworkEdges,
	})
	if err != nil {
		return graph.Graph{}, err
	}
	return graph.Build(pairs, string(models.EntityAuthor), e.th.AuthorNetworkEdges), nil
}

// ConceptRelationships lists the strongest keyword pairs across concept categories.
func (e *Engine) ConceptRelationships(ctx context.Context) ([]ConceptRelationship, error) {
	pairs, err := e.pairs(ctx, models.PairQuery{
		Entity:     models.EntityKeyword,
		Categories: e.th.ConceptCategories,
		MinCount:   e.th.ConceptMinCount,
		Limit:      e.th.ConceptEdges,
	})
	if err != nil {
		return nil, err
	}
	out := make([]ConceptRelationship, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, ConceptRelationship{
			From:     p.A.Label,
			To:       p.B.Label,
			Strength: p.Count,
			Type:     p.A.Category + "-" + p.B.Category,
		})
	}
	return out, nil
}

// pairs fetches co-occurrence pairs and re-applies threshold, ordering and
// cap so every store yields the same graph.
func (e *Engine) pairs(ctx context.Context, q models.PairQuery) ([]graph.Pair, error) {
	rows, err := e.store.CoOccurrencePairs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("co-occurrence pairs: %w", err)
	}
	out := make([]graph.Pair, 0, len(rows))
	for _, p := range rows {
		if p.Count < q.MinCount || p.A.ID == p.B.ID {
			continue
		}
		if p.B.ID < p.A.ID {
			p.A, p.B = p.B, p.A
		}
		out = append(out, p)
	}
	graph.SortPairs(out)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}
