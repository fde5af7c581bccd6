package api

import (
	"net/http"

	"bioatlas/internal/engine"
	"bioatlas/internal/models"
)

type keywordSearchRequest struct {
	Keywords     []string `json:"keywords" validate:"required,min=1"`
	MinRelevance *float64 `json:"min_relevance"`
	Limit        int      `json:"limit" validate:"gte=0"`
}

type filterRequest struct {
	models.FilterPredicates
	Limit  int `json:"limit" validate:"gte=0"`
	Offset int `json:"offset" validate:"gte=0"`
}

// GET /search?q=&sections=abstract,results&limit=
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	query := r.URL.Query().Get("q")
	results, err := s.engine.Search(r.Context(), query, listParam(r, "sections"), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": query, "count": len(results), "results": results})
}

func (s *Server) handleKeywordSearch(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req keywordSearchRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	minRel := engine.DefaultMinRelevance
	if req.MinRelevance != nil {
		minRel = *req.MinRelevance
	}
	results, err := s.engine.SearchByKeywords(r.Context(), req.Keywords, minRel, req.Limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"keywords": req.Keywords, "min_relevance": minRel, "count": len(results), "results": results})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req filterRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.engine.Filter(r.Context(), req.FilterPredicates, req.Limit, req.Offset)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// /articles/{pmcid} and /articles/{pmcid}/related
func (s *Server) handleArticlesScoped(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	parts := scopedParts(r, "/articles/")
	if parts[0] == "" || len(parts) > 2 {
		writeErr(w, http.StatusNotFound, errNotFound)
		return
	}
	pmcid := parts[0]
	if len(parts) == 1 {
		detail, err := s.engine.Article(r.Context(), pmcid)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if detail == nil {
			writeErr(w, http.StatusNotFound, errNotFound)
			return
		}
		writeJSON(w, http.StatusOK, detail)
		return
	}
	if parts[1] != "related" {
		writeErr(w, http.StatusNotFound, errNotFound)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	results, err := s.engine.Related(r.Context(), pmcid, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pmcid": pmcid, "count": len(results), "results": results})
}
