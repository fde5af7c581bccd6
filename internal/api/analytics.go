package api

import (
	"context"
	"net/http"
	"strings"

	"bioatlas/internal/engine"
)

// GET /graph/{keywords|authors|concepts}
func (s *Server) handleGraphScoped(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	parts := scopedParts(r, "/graph/")
	if len(parts) != 1 {
		writeErr(w, http.StatusNotFound, errNotFound)
		return
	}
	var (
		out any
		err error
	)
	switch parts[0] {
	case "keywords":
		var limit int
		if limit, err = intParam(r, "limit"); err == nil {
			out, err = s.engine.KeywordNetwork(r.Context(), limit)
		}
	case "authors":
		var minCollab int
		if minCollab, err = intParam(r, "min_collaborations"); err == nil {
			out, err = s.engine.AuthorNetwork(r.Context(), minCollab)
		}
	case "concepts":
		var rels []engine.ConceptRelationship
		rels, err = s.engine.ConceptRelationships(r.Context())
		out = map[string]any{"relationships": rels}
	default:
		writeErr(w, http.StatusNotFound, errNotFound)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type analyticsFunc func(ctx context.Context, limit int) (any, error)

func (s *Server) analytics() map[string]analyticsFunc {
	e := s.engine
	return map[string]analyticsFunc{
		"overview": func(ctx context.Context, _ int) (any, error) { return e.Overview(ctx) },
		"trends":   func(ctx context.Context, _ int) (any, error) { return e.Trends(ctx) },
		"breakdown": func(ctx context.Context, _ int) (any, error) {
			return e.AnalyticsBreakdown(ctx)
		},
		"clusters": func(ctx context.Context, _ int) (any, error) {
			rows, err := e.Clusters(ctx)
			return listOf("clusters", rows, err)
		},
		"gaps": func(ctx context.Context, _ int) (any, error) {
			rows, err := e.Gaps(ctx)
			return listOf("gaps", rows, err)
		},
		"insights": func(ctx context.Context, _ int) (any, error) {
			rows, err := e.Insights(ctx)
			return listOf("insights", rows, err)
		},
		"areas": func(ctx context.Context, n int) (any, error) {
			rows, err := e.ResearchAreas(ctx, n)
			return listOf("areas", rows, err)
		},
		"authors": func(ctx context.Context, n int) (any, error) {
			rows, err := e.TopAuthors(ctx, n)
			return listOf("authors", rows, err)
		},
		"organisms": func(ctx context.Context, n int) (any, error) {
			rows, err := e.Organisms(ctx, n)
			return listOf("organisms", rows, err)
		},
		"cited": func(ctx context.Context, n int) (any, error) {
			rows, err := e.TopCited(ctx, n)
			return listOf("articles", rows, err)
		},
		"funders": func(ctx context.Context, n int) (any, error) {
			rows, err := e.TopFunders(ctx, n)
			return listOf("funders", rows, err)
		},
		"topics": func(ctx context.Context, n int) (any, error) {
			rows, err := e.Topics(ctx, n)
			return listOf("topics", rows, err)
		},
		"keywords": func(ctx context.Context, _ int) (any, error) {
			rows, err := e.KeywordDistribution(ctx)
			return listOf("categories", rows, err)
		},
	}
}

// listOf puts a list result under key so every analytics body is an object.
func listOf[T any](key string, rows []T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return map[string]any{key: rows, "count": len(rows)}, nil
}

// GET /analytics/{name}?limit=
func (s *Server) handleAnalyticsScoped(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/analytics/"), "/")
	fn, ok := s.analytics()[name]
	if !ok {
		writeErr(w, http.StatusNotFound, errNotFound)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := fn(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req askRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	answer, err := s.engine.QuickAnswer(r.Context(), req.Question)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"question":    req.Question,
		"answer":      answer,
		"suggestions": s.engine.Suggestions(req.Question),
	})
}
